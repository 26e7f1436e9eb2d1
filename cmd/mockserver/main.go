// Server giả lập phục vụ dữ liệu fixture cho frontend khi chưa có backend:
// trả về metricas, campañas và operación tĩnh, không cần MongoDB hay đăng nhập.
package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"aletheia/internal/api/system"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "Aletheia Mock API",
	})

	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/health", system.HandleHealth)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/metricas", system.HandleMetricasFixture)
	dashboard.Get("/campana", system.HandleCampanaFixture)
	dashboard.Get("/operacion", system.HandleOperacionFixture)

	address := os.Getenv("MOCK_ADDRESS")
	if address == "" {
		address = "8081"
	}

	if err := app.Listen(":"+address, fiber.ListenConfig{}); err != nil {
		fmt.Printf("Error in Fiber Listen: %v\n", err)
		os.Exit(1)
	}
}
