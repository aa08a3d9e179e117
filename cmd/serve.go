package cmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskboard.com/taskboard/internal/configs"
	httpapi "taskboard.com/taskboard/internal/http"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/ratelimit"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		if cfg.JWTSecret == "" {
			secret := make([]byte, 32)
			if _, err := rand.Read(secret); err != nil {
				log.Fatalf("failed to generate jwt secret: %v", err)
			}
			cfg.JWTSecret = hex.EncodeToString(secret)
			log.Println("JWT_SECRET not set, generated an ephemeral secret; tokens will not survive a restart")
		}

		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		teamRepo := repository.NewTeamRepository(database)

		authService := services.NewAuthService(
			userRepo,
			[]byte(cfg.JWTSecret),
			time.Duration(cfg.TokenTTLHours)*time.Hour,
		)
		taskService := services.NewTaskService(taskRepo, userRepo)
		teamService := services.NewTeamService(teamRepo, userRepo)

		var limiter ratelimit.Limiter
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, "ratelimit", cfg.RateLimit, time.Minute)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit)
		}

		e := echo.New()

		handler := httpapi.NewHandler(taskService, teamService, authService)
		httpapi.Register(e, handler, middleware.Authenticate(authService, userRepo), limiter)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
