package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/domain"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/entity"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/usecase"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

type (
	FlowHandler interface {
		SaveTopicSelection(ctx *fiber.Ctx) error
		EnterTopicSelection(ctx *fiber.Ctx) error
		SaveQuizConfiguration(ctx *fiber.Ctx) error
		EnterQuizConfiguration(ctx *fiber.Ctx) error
		BackToTopicSelection(ctx *fiber.Ctx) error
		Reset(ctx *fiber.Ctx) error
	}

	flowHandler struct {
		logger  *logrus.Logger
		usecase usecase.NavigationUsecase
	}
)

func NewFlowHandler(logger *logrus.Logger, usecase usecase.NavigationUsecase) FlowHandler {
	return &flowHandler{
		logger:  logger,
		usecase: usecase,
	}
}

func flowSessionID(ctx *fiber.Ctx) string {
	return ctx.Params("session_id")
}

func sendEntry(ctx *fiber.Ctx, entry *usecase.StepEntry) error {
	if entry.Redirected() {
		// A redirect is a recovered outcome, not a failure.
		return response.NewSuccess(domain.FLOW_STEP_REDIRECT, entry, nil).Send(ctx)
	}
	return response.NewSuccess(domain.FLOW_STEP_SUCCESS, entry, nil).Send(ctx)
}

// POST /flow/:session_id/topic-selection
func (h *flowHandler) SaveTopicSelection(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var state entity.TopicSelectionState
	if err := ctx.BodyParser(&state); err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	entry, err := h.usecase.SaveTopicSelection(ctx.UserContext(), sessionID, state)
	if err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}
	return sendEntry(ctx, entry)
}

// GET /flow/:session_id/topic-selection?course_id=mat-5
func (h *flowHandler) EnterTopicSelection(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	entry, err := h.usecase.EnterTopicSelection(ctx.UserContext(), sessionID, ctx.Query("course_id"), nil)
	if err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return sendEntry(ctx, entry)
}

// POST /flow/:session_id/quiz-configuration
func (h *flowHandler) SaveQuizConfiguration(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var state entity.QuizConfigurationState
	if err := ctx.BodyParser(&state); err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	entry, err := h.usecase.SaveQuizConfiguration(ctx.UserContext(), sessionID, state)
	if err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}
	return sendEntry(ctx, entry)
}

// GET /flow/:session_id/quiz-configuration?course_id=mat-5
func (h *flowHandler) EnterQuizConfiguration(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	entry, err := h.usecase.EnterQuizConfiguration(ctx.UserContext(), sessionID, ctx.Query("course_id"), nil)
	if err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return sendEntry(ctx, entry)
}

// GET /flow/:session_id/quiz-configuration/back
func (h *flowHandler) BackToTopicSelection(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	entry, err := h.usecase.BackToTopicSelection(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return sendEntry(ctx, entry)
}

// DELETE /flow/:session_id
func (h *flowHandler) Reset(ctx *fiber.Ctx) error {
	sessionID := flowSessionID(ctx)
	if sessionID == "" {
		return response.NewFailed(domain.FLOW_SAVE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	h.usecase.Reset(ctx.UserContext(), sessionID)
	return response.NewSuccess(domain.FLOW_RESET_SUCCESS, nil, nil).Send(ctx)
}
