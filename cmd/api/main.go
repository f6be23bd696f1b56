package main

import (
	"log"
	"time"

	"github.com/ancorzize0250/lokknowback/database"
	"github.com/ancorzize0250/lokknowback/handlers"
	"github.com/ancorzize0250/lokknowback/jobs"
	"github.com/ancorzize0250/lokknowback/repositories"
	"github.com/ancorzize0250/lokknowback/routes"
	"github.com/ancorzize0250/lokknowback/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

func main() {
	db := database.ConnectDB()
	database.Migrate(db)

	clientRepo := repositories.NewClientRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)

	authService := services.NewAuthService(clientRepo, businessRepo)
	clientService := services.NewClientService(clientRepo)
	businessService := services.NewBusinessService(businessRepo)
	testService := services.NewTestService(questionRepo)

	authHandler := handlers.NewAuthHandler(clientService, businessService, authService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	testHandler := handlers.NewTestHandler(testService)

	monitor := jobs.NewQuestionBankMonitor(questionRepo)
	c := cron.New()
	c.AddFunc("*/10 * * * *", monitor.Run)
	go c.Start()
	log.Println("✅ Cron job for question bank monitoring scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Lokknow API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, authHandler)
	routes.BusinessRoutes(app, businessHandler)
	routes.TestRoutes(app, testHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
