package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"aletheia/internal/common"
	"aletheia/internal/global"
	"aletheia/internal/logger"
)

// SessionClaims chứa data được mã hóa trong JWT token của phiên dashboard.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// AuthMiddleware xác thực JWT bearer token cho các route dashboard.
// requiredRole: role bắt buộc để truy cập route ("" = chỉ cần đăng nhập).
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("missing authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})

		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("token validation failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if !token.Valid || claims.Username == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin phiên vào context cho handler và audit log
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		if requiredRole != "" && claims.Role != requiredRole {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				common.MsgForbidden,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
