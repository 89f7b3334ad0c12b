package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/handler"
)

func SetupQuizRoute(api *fiber.App, flow handler.FlowHandler, quiz handler.QuizHandler) {
	flowRouter := api.Group("/flow")
	{
		flowRouter.Post("/:session_id/topic-selection", flow.SaveTopicSelection)
		flowRouter.Get("/:session_id/topic-selection", flow.EnterTopicSelection)
		flowRouter.Post("/:session_id/quiz-configuration", flow.SaveQuizConfiguration)
		flowRouter.Get("/:session_id/quiz-configuration", flow.EnterQuizConfiguration)
		flowRouter.Get("/:session_id/quiz-configuration/back", flow.BackToTopicSelection)
		flowRouter.Delete("/:session_id", flow.Reset)
	}

	quizRouter := api.Group("/quiz")
	{
		quizRouter.Post("/:session_id/generate", quiz.Generate)
		quizRouter.Get("/sessions/:quiz_id", quiz.GetSession)
		quizRouter.Post("/sessions/:quiz_id/answer", quiz.SelectAnswer)
		quizRouter.Post("/sessions/:quiz_id/next", quiz.Next)
		quizRouter.Post("/sessions/:quiz_id/previous", quiz.Previous)
		quizRouter.Post("/sessions/:quiz_id/finish", quiz.Finish)
		quizRouter.Get("/sessions/:quiz_id/result", quiz.Result)
		quizRouter.Delete("/sessions/:quiz_id", quiz.Abandon)
	}

	resultRouter := api.Group("/results")
	{
		resultRouter.Get("/:session_id", quiz.History)
	}
}
