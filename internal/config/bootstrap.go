package config

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/handler"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/middleware"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/repository"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/route"
	"github.com/mehdiozdemir/EduAI-sub002/internal/delivery/http/usecase"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/llm"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/statestore"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/validate"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Redis     *redis.Client
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires the application graph and returns the quiz usecase so the
// caller can tear down running session timers on shutdown.
func Bootstrap(config *BootstrapConfig) usecase.QuizSessionUsecase {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	stateTTL := time.Duration(0)
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.gemini.api_key")
		model = config.Config.GetString("llm.gemini.model")
		baseURL = config.Config.GetString("llm.gemini.base_url")
		stateTTL = time.Duration(config.Config.GetInt("flow.state_ttl_minutes")) * time.Minute
	}

	gemini := llm.NewGeminiClient(apiKey, model, baseURL)
	store := statestore.New(config.Redis, config.Log, stateTTL)

	courseRepo := repository.NewCourseRepository(config.DB)
	resultRepo := repository.NewResultRepository(config.DB)

	courseUsecase := usecase.NewCourseUsecase(usecase.CourseConfig{
		DB:         config.DB,
		Repository: courseRepo,
	})
	navigationUsecase := usecase.NewNavigationUsecase(usecase.NavigationConfig{
		DB:      config.DB,
		Courses: courseRepo,
		Store:   store,
		Log:     config.Log,
	})
	quizUsecase := usecase.NewQuizSessionUsecase(usecase.QuizSessionConfig{
		DB:        config.DB,
		Generator: gemini,
		Courses:   courseRepo,
		Results:   resultRepo,
		Store:     store,
		Log:       config.Log,
	})

	courseHandler := handler.NewCourseHandler(config.Log, courseUsecase)
	flowHandler := handler.NewFlowHandler(config.Log, navigationUsecase)
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)

	route.Setup(&route.RouteConfig{
		Api:           config.Api,
		Middleware:    mid,
		CourseHandler: courseHandler,
		FlowHandler:   flowHandler,
		QuizHandler:   quizHandler,
	})

	return quizUsecase
}
