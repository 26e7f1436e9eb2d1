// Package dto - input cho domain comunicación.
package dto

// ComItemCreateInput dữ liệu tạo mới một item comunicación
type ComItemCreateInput struct {
	Titulo      string `json:"titulo" validate:"required,min=3,no_xss"`
	Descripcion string `json:"descripcion,omitempty" validate:"omitempty,no_xss"`
	Fecha       string `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Estado      string `json:"estado" validate:"required,oneof=pendiente en-proceso completado"`
	Responsable string `json:"responsable,omitempty" validate:"omitempty,no_xss"`
	Enlace      string `json:"enlace,omitempty" validate:"omitempty,url"`
}

// ComItemUpdateInput dữ liệu cập nhật một item comunicación
type ComItemUpdateInput struct {
	Titulo      string `json:"titulo,omitempty" validate:"omitempty,min=3,no_xss"`
	Descripcion string `json:"descripcion,omitempty" validate:"omitempty,no_xss"`
	Fecha       string `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Estado      string `json:"estado,omitempty" validate:"omitempty,oneof=pendiente en-proceso completado"`
	Responsable string `json:"responsable,omitempty" validate:"omitempty,no_xss"`
	Enlace      string `json:"enlace,omitempty" validate:"omitempty,url"`
}
