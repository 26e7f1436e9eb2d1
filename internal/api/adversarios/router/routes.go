// Package router - đăng ký route cho domain adversarios.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	advhdl "aletheia/internal/api/adversarios/handler"
	apirouter "aletheia/internal/api/router"
)

// Register đăng ký route cho /api/v1/adversarios và
// /api/v1/adversarios/actualizaciones.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	adversarioHandler, err := advhdl.NewAdversarioHandler()
	if err != nil {
		return fmt.Errorf("failed to create adversario handler: %v", err)
	}

	actualizacionHandler, err := advhdl.NewActualizacionHandler()
	if err != nil {
		return fmt.Errorf("failed to create actualizacion handler: %v", err)
	}

	// Sub-resource đăng ký trước để GET /adversarios/:id không nuốt path
	r.RegisterCRUDRoutes(v1, "/adversarios/actualizaciones", actualizacionHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/adversarios", adversarioHandler, apirouter.ReadWriteConfig)
	return nil
}
