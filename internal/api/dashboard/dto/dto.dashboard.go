// Package dto - DTO cho domain dashboard (params và input của các route mutation).
package dto

// WeekParams param URI cho upsert timeline
type WeekParams struct {
	Week string `uri:"week" validate:"required"`
}

// CampaignParams param URI cho upsert tiến độ campaña
type CampaignParams struct {
	Campaign string `uri:"campaign" validate:"required"`
}

// IndicatorParams param URI cho upsert chỉ số
type IndicatorParams struct {
	Type string `uri:"type" validate:"required"`
}

// AreaParams param URI cho upsert operation metric
type AreaParams struct {
	Area string `uri:"area" validate:"required"`
}

// OperationParams param URI cho upsert operation progress (campaña 1..12)
type OperationParams struct {
	Campaign int `uri:"campaign" validate:"required,min=1,max=12"`
}

// TacticalPointInput dữ liệu thêm một điểm tactical tracking.
// Trend không nhận từ client, luôn được suy ra phía store.
type TacticalPointInput struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Candidate  string  `json:"candidate" validate:"required,no_xss"`
	Percentage float64 `json:"percentage" validate:"percentage"`
}

// CurrentUserInput dữ liệu ghi user hiện tại của phiên
type CurrentUserInput struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// AvisoCreateInput dữ liệu tạo aviso trong store
type AvisoCreateInput struct {
	Titulo    string `json:"titulo" validate:"required,min=3,no_xss"`
	Contenido string `json:"contenido" validate:"required,no_xss"`
}
