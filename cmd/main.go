package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/onepte/onepte-backend/config"
	"github.com/onepte/onepte-backend/database"
	_ "github.com/onepte/onepte-backend/docs" // Swagger docs - auto-generated
	"github.com/onepte/onepte-backend/internal/cache"
	adminctrl "github.com/onepte/onepte-backend/internal/controller/admin"
	userctrl "github.com/onepte/onepte-backend/internal/controller/user"
	"github.com/onepte/onepte-backend/internal/events"
	"github.com/onepte/onepte-backend/internal/logger"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/onepte/onepte-backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PTE Practice Exam API
// @version 1.0
// @description Backend for PTE practice: question catalog, answer submission with per-type scoring, and paginated score history.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,    // *gorm.DB
			database.NewRedisClient, // *redis.Client
			cache.NewQuestionCache,
			events.NewBus,
			events.NewScoringDispatcher,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// Services
		fx.Provide(
			service.NewQuestionService,
			service.NewAdminQuestionService,
			service.NewScoringService,
			service.NewSubmissionService,
			service.NewHistoryService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewQuestionController,
			userctrl.NewAnswerController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartScoringWorker),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *userctrl.QuestionController,
	answerCtrl *userctrl.AnswerController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/questions", adminQuestionCtrl.CreateQuestion)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/questions", questionCtrl.GetAllQuestions)
		userAPIGroup.GET("/questions/:question_id", questionCtrl.GetQuestionDetails)

		userAPIGroup.POST("/questions/:question_id/answers", answerCtrl.SubmitAnswer)
		userAPIGroup.GET("/users/:user_id/answer-history", answerCtrl.GetAnswerHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PTE practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartScoringWorker runs the async SST grading worker for the lifetime of
// the application. It subscribes before the HTTP server starts accepting
// submissions, so no scoring job can be published without a consumer.
func StartScoringWorker(lc fx.Lifecycle, bus *events.Bus, scoringSvc service.ScoringService) {
	worker := events.NewScoringWorker(bus, scoringSvc)
	workerCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := worker.Run(workerCtx); err != nil {
					log.Error().Err(err).Msg("Scoring worker exited with error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return bus.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.SummarizeSpokenTextDetail{},
		&model.AudioClip{},
		&model.ReorderParagraphDetail{},
		&model.Paragraph{},
		&model.ReadingChoiceDetail{},
		&model.Option{},
		&model.Answer{},
		&model.SummarizeSpokenTextAnswer{},
		&model.ReorderParagraphAnswer{},
		&model.ReadingChoiceAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}
