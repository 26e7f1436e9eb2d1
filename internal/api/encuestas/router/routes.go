// Package router - đăng ký route cho domain encuestas.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashstore "aletheia/internal/api/dashboard/store"
	enchdl "aletheia/internal/api/encuestas/handler"
	apirouter "aletheia/internal/api/router"
)

// Register trả về hàm đăng ký bộ route CRUD cho encuestas dưới
// /api/v1/encuestas, gắn với dashboard store để đẩy tactical tracking.
func Register(dashboard *dashstore.Store) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		encuestaHandler, err := enchdl.NewEncuestaHandler(dashboard)
		if err != nil {
			return fmt.Errorf("failed to create encuesta handler: %v", err)
		}

		r.RegisterCRUDRoutes(v1, "/encuestas", encuestaHandler, apirouter.ReadWriteConfig)
		return nil
	}
}
