package routes

import (
	"daily-diet-api/internal/api/handlers"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	MealHandler    handlers.MealHandler
	Middleware     middleware.Middleware
	SessionService session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Meals()
	c.GuestRoute()
}

func (c *Config) Users() {
	c.App.Post("/users", c.UserHandler.Register)
}

func (c *Config) Meals() {
	meals := c.App.Group("/meals", c.Middleware.SessionMiddleware(c.SessionService))

	// summary is registered before :id so it is not captured as a meal id
	meals.Get("/summary", c.MealHandler.GetMealSummary)

	meals.Post("", c.MealHandler.CreateMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Get("/:id", c.MealHandler.GetMealByID)
	meals.Put("/:id", c.MealHandler.UpdateMeal)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
