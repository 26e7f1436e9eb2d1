// Package router - đăng ký route cho resource avisos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	avihdl "aletheia/internal/api/avisos/handler"
	apirouter "aletheia/internal/api/router"
)

// Register đăng ký bộ route CRUD cho avisos dưới /api/v1/avisos
func Register(v1 fiber.Router, r *apirouter.Router) error {
	avisoHandler, err := avihdl.NewAvisoHandler()
	if err != nil {
		return fmt.Errorf("failed to create aviso handler: %v", err)
	}

	r.RegisterCRUDRoutes(v1, "/avisos", avisoHandler, apirouter.ReadWriteConfig)
	return nil
}
