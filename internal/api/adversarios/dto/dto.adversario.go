// Package dto - input cho domain adversarios.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdversarioCreateInput dữ liệu tạo mới một đối thủ
type AdversarioCreateInput struct {
	Nombre  string `json:"nombre" validate:"required,min=2,no_xss"`
	Partido string `json:"partido" validate:"required,no_xss"`
	Cargo   string `json:"cargo,omitempty" validate:"omitempty,no_xss"`
	Region  string `json:"region,omitempty" validate:"omitempty,region"`

	Fortalezas  []string `json:"fortalezas,omitempty" validate:"omitempty,dive,no_xss"`
	Debilidades []string `json:"debilidades,omitempty" validate:"omitempty,dive,no_xss"`

	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// AdversarioUpdateInput dữ liệu cập nhật một đối thủ
type AdversarioUpdateInput struct {
	Nombre  string `json:"nombre,omitempty" validate:"omitempty,min=2,no_xss"`
	Partido string `json:"partido,omitempty" validate:"omitempty,no_xss"`
	Cargo   string `json:"cargo,omitempty" validate:"omitempty,no_xss"`
	Region  string `json:"region,omitempty" validate:"omitempty,region"`

	Fortalezas  []string `json:"fortalezas,omitempty" validate:"omitempty,dive,no_xss"`
	Debilidades []string `json:"debilidades,omitempty" validate:"omitempty,dive,no_xss"`

	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ActualizacionCreateInput dữ liệu tạo mới một cập nhật về đối thủ
type ActualizacionCreateInput struct {
	AdversarioID primitive.ObjectID `json:"adversarioId" validate:"required"`

	Titulo    string `json:"titulo" validate:"required,min=3,no_xss"`
	Contenido string `json:"contenido" validate:"required,no_xss"`
	Fecha     string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Fuente    string `json:"fuente,omitempty" validate:"omitempty,no_xss"`
}

// ActualizacionUpdateInput dữ liệu cập nhật một cập nhật về đối thủ
type ActualizacionUpdateInput struct {
	Titulo    string `json:"titulo,omitempty" validate:"omitempty,min=3,no_xss"`
	Contenido string `json:"contenido,omitempty" validate:"omitempty,no_xss"`
	Fecha     string `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Fuente    string `json:"fuente,omitempty" validate:"omitempty,no_xss"`
}
