// Package dto - input cho domain estrategia.
package dto

// EstItemCreateInput dữ liệu tạo mới một item estrategia
type EstItemCreateInput struct {
	Titulo      string `json:"titulo" validate:"required,min=3,no_xss"`
	Descripcion string `json:"descripcion,omitempty" validate:"omitempty,no_xss"`
	Fecha       string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Lugar       string `json:"lugar,omitempty" validate:"omitempty,no_xss"`
	Responsable string `json:"responsable,omitempty" validate:"omitempty,no_xss"`
	Completado  bool   `json:"completado"`
}

// EstItemUpdateInput dữ liệu cập nhật một item estrategia
type EstItemUpdateInput struct {
	Titulo      string `json:"titulo,omitempty" validate:"omitempty,min=3,no_xss"`
	Descripcion string `json:"descripcion,omitempty" validate:"omitempty,no_xss"`
	Fecha       string `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Lugar       string `json:"lugar,omitempty" validate:"omitempty,no_xss"`
	Responsable string `json:"responsable,omitempty" validate:"omitempty,no_xss"`
	Completado  bool   `json:"completado,omitempty"`
}
