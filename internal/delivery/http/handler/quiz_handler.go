package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/domain"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/usecase"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/response"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	QuizHandler interface {
		Generate(ctx *fiber.Ctx) error
		GetSession(ctx *fiber.Ctx) error
		SelectAnswer(ctx *fiber.Ctx) error
		Next(ctx *fiber.Ctx) error
		Previous(ctx *fiber.Ctx) error
		Finish(ctx *fiber.Ctx) error
		Result(ctx *fiber.Ctx) error
		Abandon(ctx *fiber.Ctx) error
		History(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizSessionUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizSessionUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /quiz/:session_id/generate
func (h *quizHandler) Generate(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var cfg entity.QuizConfiguration
	if err := h.validator.ParseAndValidate(ctx, &cfg); err != nil {
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, err, h.logger).Send(ctx)
	}
	if msg := cfg.Check(); msg != "" {
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, msg), h.logger).Send(ctx)
	}

	view, err := h.usecase.Generate(ctx.UserContext(), sessionID, cfg)
	if err != nil {
		// No session exists; the client stays on the configuration step.
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_GENERATE_SUCCESS, view, nil).Send(ctx)
}

func (h *quizHandler) quizID(ctx *fiber.Ctx) string {
	return ctx.Params("quiz_id")
}

func (h *quizHandler) sendSessionError(ctx *fiber.Ctx, msg string, err error) error {
	code := fiber.StatusBadRequest
	if errors.Is(err, usecase.ErrQuizSessionNotFound) {
		code = fiber.StatusNotFound
	}
	if errors.Is(err, usecase.ErrQuizFinished) {
		code = fiber.StatusConflict
	}
	return response.NewFailed(msg, fiber.NewError(code, err.Error()), h.logger).Send(ctx)
}

// GET /quiz/sessions/:quiz_id
func (h *quizHandler) GetSession(ctx *fiber.Ctx) error {
	view, err := h.usecase.GetSession(h.quizID(ctx))
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_SESSION_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_SESSION_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:quiz_id/answer
func (h *quizHandler) SelectAnswer(ctx *fiber.Ctx) error {
	var req entity.SelectAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.SelectAnswer(h.quizID(ctx), req)
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_ANSWER_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:quiz_id/next
func (h *quizHandler) Next(ctx *fiber.Ctx) error {
	view, err := h.usecase.Next(h.quizID(ctx))
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_SESSION_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_SESSION_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:quiz_id/previous
func (h *quizHandler) Previous(ctx *fiber.Ctx) error {
	view, err := h.usecase.Previous(h.quizID(ctx))
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_SESSION_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_SESSION_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:quiz_id/finish
func (h *quizHandler) Finish(ctx *fiber.Ctx) error {
	result, err := h.usecase.Finish(ctx.UserContext(), h.quizID(ctx))
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_FINISH_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_FINISH_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/sessions/:quiz_id/result
func (h *quizHandler) Result(ctx *fiber.Ctx) error {
	result, err := h.usecase.Result(ctx.UserContext(), h.quizID(ctx))
	if err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_RESULT_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_RESULT_SUCCESS, result, nil).Send(ctx)
}

// DELETE /quiz/sessions/:quiz_id
func (h *quizHandler) Abandon(ctx *fiber.Ctx) error {
	if err := h.usecase.Abandon(h.quizID(ctx)); err != nil {
		return h.sendSessionError(ctx, domain.QUIZ_SESSION_FAILED, err)
	}
	return response.NewSuccess(domain.QUIZ_SESSION_SUCCESS, nil, nil).Send(ctx)
}

// GET /results/:session_id
func (h *quizHandler) History(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.RESULT_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	items, err := h.usecase.History(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.RESULT_HISTORY_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.RESULT_HISTORY_SUCCESS, items, nil).Send(ctx)
}
