// Package dto - DTO cho domain auth (login phiên dashboard).
package dto

// LoginInput thông tin đăng nhập của hai user cố định của dashboard
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token phiên trả về sau khi đăng nhập thành công
type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expiresAt"` // Unix milliseconds
}
