package system

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "aletheia/internal/api/base/handler"
)

// HandleHealth trả về trạng thái server cho health check
func HandleHealth(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, 200, fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

// HandleMetricasFixture trả về fixture tĩnh cho /dashboard/metricas
func HandleMetricasFixture(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, 200, MetricasFixture)
}

// HandleCampanaFixture trả về fixture tĩnh cho /dashboard/campana
func HandleCampanaFixture(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, 200, CampanaFixture)
}

// HandleOperacionFixture trả về fixture tĩnh cho /dashboard/operacion
func HandleOperacionFixture(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, 200, OperacionFixture)
}

// Register đăng ký route hệ thống lên v1 (health không yêu cầu token)
func Register(v1 fiber.Router) error {
	v1.Get("/system/health", HandleHealth)
	return nil
}
