package api

import "github.com/gofiber/fiber/v2"

// NewApp wires the scheduler handler under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fifo", handler.FirstInFirstOut)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/generate", handler.GenerateWorkload)
		v1.Get("/simulate", handler.Simulate)
	}
	return app
}
