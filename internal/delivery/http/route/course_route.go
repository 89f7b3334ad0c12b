package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/handler"
)

func SetupCourseRoute(api *fiber.App, handler handler.CourseHandler) {
	api.Get("/levels", handler.ListLevels)

	router := api.Group("/courses")
	{
		router.Get("/", handler.ListCourses)
		router.Get("/:course_id", handler.GetCourse)
		router.Get("/:course_id/topics", handler.GetCourseTopics)
	}
}
