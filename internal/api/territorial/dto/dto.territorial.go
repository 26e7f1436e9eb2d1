// Package dto - DTO cho domain territorial.
package dto

// RegionParams param URI cho các route theo vùng (enum 9 departamentos)
type RegionParams struct {
	Region string `uri:"region" validate:"required,region"`
}

// DefenderInput dữ liệu thêm defensor del voto (id sinh phía server)
type DefenderInput struct {
	Nombre   string `json:"nombre" validate:"required,no_xss"`
	Telefono string `json:"telefono,omitempty"`
	Recinto  string `json:"recinto,omitempty" validate:"omitempty,no_xss"`
}

// EventInput dữ liệu thêm sự kiện vận động (id sinh phía server).
// Sự kiện lên lịch không được nằm trong quá khứ.
type EventInput struct {
	Titulo string `json:"titulo" validate:"required,no_xss"`
	Fecha  string `json:"fecha" validate:"required,datetime=2006-01-02,future_date"`
	Lugar  string `json:"lugar,omitempty" validate:"omitempty,no_xss"`
}

// SegmentInput dữ liệu thêm phân khúc cử tri (id sinh phía server)
type SegmentInput struct {
	Nombre   string `json:"nombre" validate:"required,no_xss"`
	Cantidad int    `json:"cantidad" validate:"min=0"`
}

// PromotedCountInput dữ liệu ghi số promotores đã vận động
type PromotedCountInput struct {
	Count int `json:"count" validate:"min=0"`
}

// TargetPromotersInput dữ liệu ghi mục tiêu promotores
type TargetPromotersInput struct {
	Target int `json:"target" validate:"required,min=1"`
}

// ElectionConfigInput dữ liệu cấu hình bầu cử của vùng
type ElectionConfigInput struct {
	ElectionDate    string `json:"electionDate" validate:"required,datetime=2006-01-02"`
	TargetDefenders int    `json:"targetDefenders" validate:"required,min=1"`
}
