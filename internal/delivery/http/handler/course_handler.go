package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/domain"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/usecase"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

type (
	CourseHandler interface {
		ListLevels(ctx *fiber.Ctx) error
		ListCourses(ctx *fiber.Ctx) error
		GetCourse(ctx *fiber.Ctx) error
		GetCourseTopics(ctx *fiber.Ctx) error
	}

	courseHandler struct {
		logger  *logrus.Logger
		usecase usecase.CourseUsecase
	}
)

func NewCourseHandler(logger *logrus.Logger, usecase usecase.CourseUsecase) CourseHandler {
	return &courseHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /levels
func (h *courseHandler) ListLevels(ctx *fiber.Ctx) error {
	levels, err := h.usecase.ListLevels(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.LEVEL_LIST_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.LEVEL_LIST_SUCCESS, levels, nil).Send(ctx)
}

// GET /courses?level_id=ilkokul
func (h *courseHandler) ListCourses(ctx *fiber.Ctx) error {
	courses, err := h.usecase.ListCourses(ctx.UserContext(), ctx.Query("level_id"))
	if err != nil {
		return response.NewFailed(domain.COURSE_LIST_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.COURSE_LIST_SUCCESS, courses, nil).Send(ctx)
}

// GET /courses/:course_id
func (h *courseHandler) GetCourse(ctx *fiber.Ctx) error {
	courseID := ctx.Params("course_id")
	if courseID == "" {
		return response.NewFailed(domain.COURSE_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "course_id is required"), h.logger).Send(ctx)
	}

	course, err := h.usecase.GetCourse(ctx.UserContext(), courseID)
	if err != nil {
		if errors.Is(err, usecase.ErrCourseNotFound) {
			return response.NewFailed(domain.COURSE_GET_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
		}
		return response.NewFailed(domain.COURSE_GET_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.COURSE_GET_SUCCESS, course, nil).Send(ctx)
}

// GET /courses/:course_id/topics
func (h *courseHandler) GetCourseTopics(ctx *fiber.Ctx) error {
	courseID := ctx.Params("course_id")
	if courseID == "" {
		return response.NewFailed(domain.TOPIC_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, "course_id is required"), h.logger).Send(ctx)
	}

	topics, err := h.usecase.GetCourseTopics(ctx.UserContext(), courseID)
	if err != nil {
		if errors.Is(err, usecase.ErrCourseNotFound) {
			return response.NewFailed(domain.TOPIC_LIST_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
		}
		return response.NewFailed(domain.TOPIC_LIST_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.TOPIC_LIST_SUCCESS, topics, nil).Send(ctx)
}
