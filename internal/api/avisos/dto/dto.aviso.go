// Package dto - input cho resource avisos.
package dto

// AvisoCreateInput dữ liệu tạo mới một aviso
type AvisoCreateInput struct {
	Titulo    string `json:"titulo" validate:"required,min=3,no_xss"`
	Contenido string `json:"contenido" validate:"required,no_xss"`
	Autor     string `json:"autor,omitempty" validate:"omitempty,no_xss"`
	Categoria string `json:"categoria,omitempty" validate:"omitempty,no_xss"`
}

// AvisoUpdateInput dữ liệu cập nhật một aviso, mọi trường đều tùy chọn
type AvisoUpdateInput struct {
	Titulo    string `json:"titulo,omitempty" validate:"omitempty,min=3,no_xss"`
	Contenido string `json:"contenido,omitempty" validate:"omitempty,no_xss"`
	Autor     string `json:"autor,omitempty" validate:"omitempty,no_xss"`
	Categoria string `json:"categoria,omitempty" validate:"omitempty,no_xss"`
}
