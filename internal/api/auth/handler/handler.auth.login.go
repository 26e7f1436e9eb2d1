// Package authhdl - Handler đăng nhập phiên dashboard.
// Hệ thống không có quản lý user thật: chỉ hai user cố định (estratega,
// operador) đọc từ cấu hình, đăng nhập thành công nhận JWT phiên.
package authhdl

import (
	"crypto/subtle"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	authdto "aletheia/internal/api/auth/dto"
	basehdl "aletheia/internal/api/base/handler"
	"aletheia/internal/api/middleware"
	"aletheia/internal/common"
	"aletheia/internal/global"
	"aletheia/internal/logger"
)

// Role của hai user dashboard
const (
	RoleEstratega = "estratega"
	RoleOperador  = "operador"
)

// Thời gian sống của token phiên
const sessionTTL = 24 * time.Hour

// AuthHandler xử lý đăng nhập và thông tin phiên
type AuthHandler struct {
	*basehdl.BaseHandler[authdto.LoginResponse, authdto.LoginInput, authdto.LoginInput]
}

// NewAuthHandler tạo AuthHandler mới
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		BaseHandler: basehdl.NewBaseHandler[authdto.LoginResponse, authdto.LoginInput, authdto.LoginInput](nil),
	}
}

// resolveRole so sánh credentials với hai user cố định, trả về role nếu hợp lệ.
// So sánh constant-time để không lộ thông tin qua timing.
func resolveRole(username, password string) (string, bool) {
	cfg := global.ServerConfig

	matchUser1 := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.DashboardUser1)) == 1
	matchPass1 := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.DashboardPassword1)) == 1
	if matchUser1 && matchPass1 {
		return RoleEstratega, true
	}

	matchUser2 := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.DashboardUser2)) == 1
	matchPass2 := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.DashboardPassword2)) == 1
	if matchUser2 && matchPass2 {
		return RoleOperador, true
	}

	return "", false
}

// HandleLogin xử lý POST /auth/login: kiểm tra credentials và phát JWT phiên
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		role, ok := resolveRole(input.Username, input.Password)
		if !ok {
			logger.LogAuth("login_failed", c, map[string]interface{}{
				"username": input.Username,
			})
			h.HandleResponse(c, nil, common.ErrInvalidCredentials)
			return nil
		}

		expiresAt := time.Now().Add(sessionTTL)
		claims := middleware.SessionClaims{
			Username: input.Username,
			Role:     role,
			StandardClaims: jwt.StandardClaims{
				IssuedAt:  time.Now().Unix(),
				ExpiresAt: expiresAt.Unix(),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		logger.LogAuth("login", c, map[string]interface{}{
			"username": input.Username,
			"role":     role,
		})

		h.HandleResponse(c, authdto.LoginResponse{
			Token:     signed,
			Username:  input.Username,
			Role:      role,
			ExpiresAt: expiresAt.UnixMilli(),
		}, nil)
		return nil
	})
}

// HandleSession trả về thông tin phiên hiện tại từ token đã xác thực
func (h *AuthHandler) HandleSession(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		username, _ := c.Locals("username").(string)
		role, _ := c.Locals("role").(string)
		h.HandleResponse(c, fiber.Map{
			"username": username,
			"role":     role,
		}, nil)
		return nil
	})
}
