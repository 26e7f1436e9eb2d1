// Package authhdl - Test resolve role cho hai user cố định.
package authhdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aletheia/config"
	"aletheia/internal/global"
)

func setupConfig(t *testing.T) {
	t.Helper()
	prev := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		DashboardUser1:     "estratega",
		DashboardPassword1: "clave-estratega",
		DashboardUser2:     "operador",
		DashboardPassword2: "clave-operador",
		JwtSecret:          "test-secret",
	}
	t.Cleanup(func() { global.ServerConfig = prev })
}

func TestResolveRole_ValidCredentials(t *testing.T) {
	setupConfig(t)

	role, ok := resolveRole("estratega", "clave-estratega")
	assert.True(t, ok, "user 1 với mật khẩu đúng phải đăng nhập được")
	assert.Equal(t, RoleEstratega, role)

	role, ok = resolveRole("operador", "clave-operador")
	assert.True(t, ok, "user 2 với mật khẩu đúng phải đăng nhập được")
	assert.Equal(t, RoleOperador, role)
}

func TestResolveRole_InvalidCredentials(t *testing.T) {
	setupConfig(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"sai mật khẩu", "estratega", "incorrecta"},
		{"user không tồn tại", "admin", "clave-estratega"},
		{"tráo mật khẩu giữa hai user", "estratega", "clave-operador"},
		{"rỗng", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			role, ok := resolveRole(tc.username, tc.password)
			assert.False(t, ok)
			assert.Empty(t, role)
		})
	}
}
