package global

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegionKeys là danh sách 9 khu vực cố định của dashboard (9 tỉnh của Bolivia).
// Mọi thao tác theo khu vực phải dùng một trong các key này.
var RegionKeys = []string{
	"la-paz",
	"santa-cruz",
	"cochabamba",
	"oruro",
	"potosi",
	"chuquisaca",
	"tarija",
	"beni",
	"pando",
}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("percentage", validatePercentage)
	_ = Validate.RegisterValidation("region", validateRegion)
	_ = Validate.RegisterValidation("future_date", validateFutureDate)
	_ = Validate.RegisterValidation("tendencia", validateTendencia)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validatePercentage kiểm tra giá trị phần trăm nằm trong khoảng [0, 100]
func validatePercentage(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind().String() {
	case "int", "int8", "int16", "int32", "int64":
		v := field.Int()
		return v >= 0 && v <= 100
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return field.Uint() <= 100
	case "float32", "float64":
		v := field.Float()
		return v >= 0 && v <= 100
	}
	return false
}

// validateRegion kiểm tra key khu vực thuộc enum 9 khu vực cố định
func validateRegion(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, key := range RegionKeys {
		if value == key {
			return true
		}
	}
	return false
}

// validateFutureDate kiểm tra ngày (định dạng YYYY-MM-DD) không nằm trong quá khứ.
// Ngày hôm nay vẫn hợp lệ.
func validateFutureDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // để "required" xử lý trường hợp rỗng
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return !parsed.Before(today)
}

// validateTendencia kiểm tra giá trị xu hướng hợp lệ
func validateTendencia(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "up" || value == "down"
}

// validateNoXSS kiểm tra XSS trong các trường văn bản tự do
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
