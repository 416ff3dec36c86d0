package config

import (
	"os"

	"daily-diet-api/internal/api/handlers"
	"daily-diet-api/internal/api/routes"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/utils"
	"daily-diet-api/pkg/meal"
	"daily-diet-api/pkg/session"
	"daily-diet-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	sessionService := session.NewSessionService(userRepository)
	mealService := meal.NewMealService(mealRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		MealHandler:    mealHandler,
		Middleware:     middlewares,
		SessionService: sessionService,
	}
	routesConfig.Setup()
	return app, nil
}
