package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/application/applicationapi"
	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/board/job/jobapi"
	"github.com/Abraxas-365/jobboard/pkg/errx/errxfiber"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load configuration and logger
	cfg := LoadConfig()
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.Info("Starting Job Board API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Close()

	// 3. Create Fiber App with Config
	app := newApp(container)

	// 4. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

func newApp(container *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Job Board API",
		DisableStartupMessage: true,
		ErrorHandler:          errxfiber.ErrorHandler,
		// a full size resume plus the other form fields
		BodyLimit:             application.MaxResumeSize + 1<<20,
		ReadTimeout:           container.Config.ReadTimeout,
		WriteTimeout:          container.Config.WriteTimeout,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		_, err := container.FileSystem.Exists(c.UserContext(), job.CatalogKey)
		return c.JSON(fiber.Map{
			"status": "ok",
			"store":  err == nil,
		})
	})

	// Catalog: /jobs
	jobapi.RegisterRoutes(app, container.JobHandlers, auth.RequireCredential(container.AdminCredential))

	// Applications: /apply
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers)

	return app
}
