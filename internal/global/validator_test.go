package global

import (
	"testing"
	"time"
)

func setupValidator(t *testing.T) {
	t.Helper()
	InitValidator()
}

func TestValidatePercentage(t *testing.T) {
	setupValidator(t)

	type input struct {
		Value float64 `validate:"percentage"`
	}

	for _, v := range []float64{0, 50, 100} {
		if err := Validate.Struct(input{Value: v}); err != nil {
			t.Errorf("percentage %v phải hợp lệ, lỗi: %v", v, err)
		}
	}
	for _, v := range []float64{-1, 100.5, 200} {
		if err := Validate.Struct(input{Value: v}); err == nil {
			t.Errorf("percentage %v phải bị từ chối", v)
		}
	}
}

func TestValidateRegion(t *testing.T) {
	setupValidator(t)

	type input struct {
		Region string `validate:"region"`
	}

	for _, region := range RegionKeys {
		if err := Validate.Struct(input{Region: region}); err != nil {
			t.Errorf("region %q phải hợp lệ, lỗi: %v", region, err)
		}
	}
	for _, region := range []string{"", "la_paz", "LA-PAZ", "madrid"} {
		if err := Validate.Struct(input{Region: region}); err == nil {
			t.Errorf("region %q phải bị từ chối", region)
		}
	}
}

func TestValidateFutureDate(t *testing.T) {
	setupValidator(t)

	type input struct {
		Fecha string `validate:"future_date"`
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	yesterday := time.Now().Add(-24 * time.Hour).Format("2006-01-02")

	if err := Validate.Struct(input{Fecha: today}); err != nil {
		t.Errorf("ngày hôm nay %s phải hợp lệ, lỗi: %v", today, err)
	}
	if err := Validate.Struct(input{Fecha: tomorrow}); err != nil {
		t.Errorf("ngày mai %s phải hợp lệ, lỗi: %v", tomorrow, err)
	}
	if err := Validate.Struct(input{Fecha: yesterday}); err == nil {
		t.Errorf("ngày quá khứ %s phải bị từ chối", yesterday)
	}
	if err := Validate.Struct(input{Fecha: "10/04/2025"}); err == nil {
		t.Error("định dạng sai phải bị từ chối")
	}
}

func TestValidateTendencia(t *testing.T) {
	setupValidator(t)

	type input struct {
		Trend string `validate:"tendencia"`
	}

	for _, trend := range []string{"up", "down"} {
		if err := Validate.Struct(input{Trend: trend}); err != nil {
			t.Errorf("tendencia %q phải hợp lệ, lỗi: %v", trend, err)
		}
	}
	for _, trend := range []string{"", "UP", "flat", "subiendo"} {
		if err := Validate.Struct(input{Trend: trend}); err == nil {
			t.Errorf("tendencia %q phải bị từ chối", trend)
		}
	}
}

func TestValidateNoXSS(t *testing.T) {
	setupValidator(t)

	type input struct {
		Text string `validate:"no_xss"`
	}

	for _, text := range []string{"Reunión en la sede norte", "50% de avance", ""} {
		if err := Validate.Struct(input{Text: text}); err != nil {
			t.Errorf("văn bản %q phải hợp lệ, lỗi: %v", text, err)
		}
	}
	for _, text := range []string{
		"<script>alert(1)</script>",
		"hola <IFRAME src=x>",
		"javascript:void(0)",
		"x onerror=alert(1)",
	} {
		if err := Validate.Struct(input{Text: text}); err == nil {
			t.Errorf("văn bản %q phải bị từ chối (XSS)", text)
		}
	}
}
