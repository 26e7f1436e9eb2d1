// Package router - đăng ký route cho domain estrategia.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	esthdl "aletheia/internal/api/estrategia/handler"
	"aletheia/internal/api/middleware"
	apirouter "aletheia/internal/api/router"
	"aletheia/internal/global"
)

// Register đăng ký năm resource estrategia dưới /api/v1/estrategia/*.
// Calendario có thêm GET /agrupado trả về lịch nhóm theo ngày.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	resources := []struct {
		prefix  string
		colName string
	}{
		{"/estrategia/dia-d", global.MongoDB_ColNames.EstDiaD},
		{"/estrategia/debate", global.MongoDB_ColNames.EstDebate},
		{"/estrategia/precampana", global.MongoDB_ColNames.EstPrecampana},
		{"/estrategia/calendario", global.MongoDB_ColNames.EstCalendario},
		{"/estrategia/planeacion", global.MongoDB_ColNames.EstPlaneacion},
	}

	authMiddleware := []fiber.Handler{middleware.AuthMiddleware("")}

	for _, res := range resources {
		itemHandler, err := esthdl.NewEstItemHandler(res.colName)
		if err != nil {
			return fmt.Errorf("failed to create estrategia handler for %s: %v", res.prefix, err)
		}

		// Route tĩnh /agrupado đăng ký trước bộ CRUD để không bị /:id nuốt
		if res.colName == global.MongoDB_ColNames.EstCalendario {
			apirouter.RegisterRouteWithMiddleware(v1, res.prefix, "GET", "/agrupado", authMiddleware, itemHandler.HandleAgrupado)
		}
		r.RegisterCRUDRoutes(v1, res.prefix, itemHandler, apirouter.ReadWriteConfig)
	}
	return nil
}
