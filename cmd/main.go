package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/config"
	"github.com/lshigami/Lorikeets/database"
	_ "github.com/lshigami/Lorikeets/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Lorikeets/internal/controller/admin"
	userctrl "github.com/lshigami/Lorikeets/internal/controller/user"
	"github.com/lshigami/Lorikeets/internal/logger"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Voice Interview Practice API
// @version 1.0
// @description API for voice-answered mock interviews with AI grading and saved answer history.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewQuestionRepository,
			repository.NewUserAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewInterviewService,
			service.NewGeminiGraderService,
			service.NewAnswerService,
			service.NewRecordingService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminInterviewController,
			userctrl.NewRecordingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route request logs through Zerolog.
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
		AllowOrigins:     []string{"*"}, // Be more specific in production
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

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminInterviewCtrl *adminctrl.AdminInterviewController,
	recordingCtrl *userctrl.RecordingController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		interviewsAdminGroup := adminAPIGroup.Group("/interviews")
		interviewsAdminGroup.POST("", adminInterviewCtrl.CreateInterview)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Interview listing and details
		userAPIGroup.GET("/interviews", recordingCtrl.GetAllInterviews)
		userAPIGroup.GET("/interviews/:interview_id", recordingCtrl.GetInterviewDetails)
		userAPIGroup.GET("/interviews/:interview_id/answers", recordingCtrl.GetInterviewAnswers)

		// Recording sessions
		userAPIGroup.POST("/recordings", recordingCtrl.StartRecording)
		userAPIGroup.GET("/recordings/:session_id", recordingCtrl.GetSession)
		userAPIGroup.POST("/recordings/:session_id/fragments", recordingCtrl.PushFragment)
		userAPIGroup.POST("/recordings/:session_id/stop", recordingCtrl.StopRecording)
		userAPIGroup.POST("/recordings/:session_id/restart", recordingCtrl.RestartRecording)
		userAPIGroup.POST("/recordings/:session_id/save", recordingCtrl.SaveAnswer)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Voice Interview Practice API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Interview{},
		&model.Question{},
		&model.UserAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
