// Package models - Các patch struct cho dashboard store.
// Mỗi patch chỉ ghi đè các field non-nil; field nested (Content, Impressions,
// Testigos) luôn được thay nguyên khối.
package models

// ProfilePatch partial update cho Profile
type ProfilePatch struct {
	Name       *string  `json:"name,omitempty"`
	Compliance *float64 `json:"compliance,omitempty" validate:"omitempty,percentage"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
}

// TimelinePatch partial update cho một TimelineEntry theo week
type TimelinePatch struct {
	Planned  *float64 `json:"planned,omitempty"`
	Executed *float64 `json:"executed,omitempty"`
}

// CampaignProgressPatch partial update cho một CampaignProgressEntry theo campaign
type CampaignProgressPatch struct {
	Progress *float64 `json:"progress,omitempty" validate:"omitempty,percentage"`
	Trend    *Trend   `json:"trend,omitempty" validate:"omitempty,tendencia"`
}

// IndicatorPatch partial update cho một Indicator theo type
type IndicatorPatch struct {
	Value *float64 `json:"value,omitempty"`
}

// FinancePatch partial update cho FinanceStatus
type FinancePatch struct {
	ExercisedBudget *float64 `json:"exercisedBudget,omitempty" validate:"omitempty,percentage"`
	AccruedBudget   *float64 `json:"accruedBudget,omitempty" validate:"omitempty,percentage"`
	ScheduleDelay   *float64 `json:"scheduleDelay,omitempty" validate:"omitempty,percentage"`
}

// SocialListeningPatch partial update cho SocialListening.
// Testigos thay nguyên khối danh sách, không merge từng phần tử.
type SocialListeningPatch struct {
	Mentions    *float64   `json:"mentions,omitempty"`
	Impressions *float64   `json:"impressions,omitempty"`
	Testigos    *[]Testigo `json:"testigos,omitempty"`
}

// OperationProgressPatch partial update cho một OperationProgressEntry theo campaign id
type OperationProgressPatch struct {
	Progress *float64 `json:"progress,omitempty" validate:"omitempty,percentage"`
	Delay    *float64 `json:"delay,omitempty" validate:"omitempty,percentage"`
}

// OperationMetricPatch partial update cho một OperationMetric theo área.
// Content và Impressions thay nguyên khối cặp current/target.
type OperationMetricPatch struct {
	Progress    *float64    `json:"progress,omitempty" validate:"omitempty,percentage"`
	Content     *MetricGoal `json:"content,omitempty"`
	Impressions *MetricGoal `json:"impressions,omitempty"`
}
