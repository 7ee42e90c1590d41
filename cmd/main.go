package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/config"
	"github.com/skillforge/skillforge/database"
	_ "github.com/skillforge/skillforge/docs" // Swagger docs - auto-generated
	adminctrl "github.com/skillforge/skillforge/internal/controller/admin"
	userctrl "github.com/skillforge/skillforge/internal/controller/user"
	"github.com/skillforge/skillforge/internal/logger"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
	"github.com/skillforge/skillforge/internal/service"
)

// @title SkillForge Verification API
// @version 1.0
// @description Candidate verification and scoring pipeline: evidence aggregation, personality assessment, AI-generated skill tests and proctoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStudentRepository,
			repository.NewReportRepository,
			repository.NewPersonalityAttemptRepository,
			repository.NewCategoryRepository,
			repository.NewSkillAttemptRepository,
			repository.NewSessionRepository,
			repository.NewVerificationRepository,
		),

		fx.Provide(
			service.NewGeminiAnalysisEngine,
			service.NewPDFTextExtractor,
			service.NewGithubProfileFetcher,
			service.NewStudentService,
			service.NewReportService,
			service.NewPersonalityService,
			service.NewSkillTestService,
			service.NewCategoryService,
			service.NewProctorService,
		),

		fx.Provide(
			userctrl.NewVerificationController,
			userctrl.NewProctorController,
			adminctrl.NewAdminController,
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

// RegisterRoutesAndStartServer mounts the API groups and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	verificationCtrl *userctrl.VerificationController,
	proctorCtrl *userctrl.ProctorController,
	adminCtrl *adminctrl.AdminController,
) {
	apiV1 := router.Group("/api/v1")
	verificationCtrl.RegisterRoutes(apiV1)
	proctorCtrl.RegisterRoutes(apiV1)
	adminCtrl.RegisterRoutes(apiV1)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SkillForge verification API starting on port %s", cfg.Server.Port)
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
		&model.Student{},
		&model.VerificationReport{},
		&model.PersonalityAttempt{},
		&model.SkillCategory{},
		&model.ExamSession{},
		&model.ProctorEvent{},
		&model.SkillTestAttempt{},
		&model.SkillVerification{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
