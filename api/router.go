package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
)

// NewApp wires the scheduler routes under /api/v1.
func NewApp(cfg *config.SchedulerConfig, log logrus.FieldLogger) *fiber.App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	handler := NewSchedulerHandlerImpl(cfg, log)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(log))
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/hrrn", handler.HighestResponseRatioNext)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:policy", handler.Schedule)
		v1.Get("/policies", handler.Policies)
	}
	return app
}

func requestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		log.WithFields(logrus.Fields{
			"method":   ctx.Method(),
			"path":     ctx.Path(),
			"status":   ctx.Response().StatusCode(),
			"duration": time.Since(start),
		}).Info("request")
		return err
	}
}
