// Package dto - input cho domain encuestas.
package dto

// EncuestaCreateInput dữ liệu tạo mới một kết quả khảo sát
type EncuestaCreateInput struct {
	Region     string  `json:"region" validate:"required,region"`
	Candidato  string  `json:"candidato" validate:"required,no_xss"`
	Fecha      string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Porcentaje float64 `json:"porcentaje" validate:"percentage"`
	Encuestera string  `json:"encuestera,omitempty" validate:"omitempty,no_xss"`
	Muestra    int     `json:"muestra,omitempty" validate:"omitempty,min=1"`
}

// EncuestaUpdateInput dữ liệu cập nhật một kết quả khảo sát
type EncuestaUpdateInput struct {
	Region     string  `json:"region,omitempty" validate:"omitempty,region"`
	Candidato  string  `json:"candidato,omitempty" validate:"omitempty,no_xss"`
	Fecha      string  `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Porcentaje float64 `json:"porcentaje,omitempty" validate:"omitempty,percentage"`
	Encuestera string  `json:"encuestera,omitempty" validate:"omitempty,no_xss"`
	Muestra    int     `json:"muestra,omitempty" validate:"omitempty,min=1"`
}
