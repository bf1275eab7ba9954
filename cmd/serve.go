package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskforce.app/taskforce/internal/configs"
	httpapi "taskforce.app/taskforce/internal/http"
	"taskforce.app/taskforce/internal/logging"
	"taskforce.app/taskforce/internal/ratelimit"
	repository "taskforce.app/taskforce/internal/repositories"
	"taskforce.app/taskforce/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logging.Logger.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init(cfg.LogFile)

		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		respondRepo := repository.NewRespondRepository(database)
		reviewRepo := repository.NewReviewRepository(database)
		userRepo := repository.NewUserRepository(database)

		lifecycle := services.NewLifecycleService(database, taskRepo, respondRepo, reviewRepo, userRepo)
		taskService := services.NewTaskService(taskRepo, respondRepo)
		authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
		userService := services.NewUserService(userRepo, reviewRepo)

		var limiter ratelimit.Limiter
		if cfg.RateLimiterDriver == "redis" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit, time.Minute)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		}

		e := echo.New()
		handler := httpapi.NewHandler(authService, taskService, lifecycle, userService)
		httpapi.Register(e, handler, limiter, cfg.JWTSecret)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logging.Logger.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logging.Logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
