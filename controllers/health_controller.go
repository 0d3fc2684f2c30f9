package controllers

import (
	"time"

	"chef-backend/scheduler"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	sched *scheduler.Scheduler
}

func NewHealthController(sched *scheduler.Scheduler) *HealthController {
	return &HealthController{sched: sched}
}

func (hc *HealthController) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"timestamp":         time.Now().Format(time.RFC3339),
		"scheduler_running": hc.sched.Running(),
	})
}
