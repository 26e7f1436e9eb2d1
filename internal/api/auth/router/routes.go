// Package router đăng ký các route domain auth (login, session).
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "aletheia/internal/api/auth/handler"
	"aletheia/internal/api/middleware"
	apirouter "aletheia/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authHandler := authhdl.NewAuthHandler()

	// POST /auth/login — không yêu cầu token
	v1.Post("/auth/login", authHandler.HandleLogin)

	// GET /auth/session — thông tin phiên hiện tại
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/session", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleSession)

	return nil
}
