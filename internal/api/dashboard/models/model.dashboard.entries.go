// Package models - Các entity của dashboard store (timeline, campañas, chỉ số,
// tài chính, tactical tracking, social listening, operación).
package models

import "time"

// Trend hướng biến động của một chỉ số
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Tên các campaña cố định được seed lúc khởi tạo store
const (
	CampanaGeneral    = "GENERAL"
	CampanaTerritorio = "TERRITORIO"
	CampanaDigital    = "DIGITAL"
	CampanaAire       = "AIRE"
	CampanaTelefonia  = "TELEFONÍA"
)

// CampanaKeys thứ tự enumeration gốc của các campaña
var CampanaKeys = []string{
	CampanaGeneral,
	CampanaTerritorio,
	CampanaDigital,
	CampanaAire,
	CampanaTelefonia,
}

// AreaKeys thứ tự enumeration gốc của các área de operación
var AreaKeys = []string{
	CampanaTerritorio,
	CampanaDigital,
	CampanaAire,
	CampanaTelefonia,
}

// TimelineWeeks số tuần trong timeline (S1..S24)
const TimelineWeeks = 24

// OperationRows số dòng operation progress (campaña 1..12)
const OperationRows = 12

// Profile hồ sơ ứng viên. Singleton, cập nhật bằng partial merge.
type Profile struct {
	Name       string  `json:"name" bson:"name"`
	Compliance float64 `json:"compliance" bson:"compliance" validate:"percentage"` // % tuân thủ kế hoạch
	ImageURL   string  `json:"imageUrl" bson:"imageUrl"`
}

// User người dùng hiện tại của phiên dashboard
type User struct {
	Username string `json:"username" bson:"username"`
	Role     string `json:"role" bson:"role"`
}

// TimelineEntry một tuần trong timeline kế hoạch/thực hiện. Key: Week.
type TimelineEntry struct {
	Week     string  `json:"week" bson:"week"` // "S1".."S24"
	Planned  float64 `json:"planned" bson:"planned"`
	Executed float64 `json:"executed" bson:"executed"`
}

// CampaignProgressEntry tiến độ của một campaña. Key: Campaign.
type CampaignProgressEntry struct {
	Campaign string  `json:"campaign" bson:"campaign"`
	Progress float64 `json:"progress" bson:"progress" validate:"percentage"`
	Trend    Trend   `json:"trend" bson:"trend" validate:"tendencia"`
}

// Indicator chỉ số tổng hợp. Key: Type.
type Indicator struct {
	Type  string  `json:"type" bson:"type"`
	Value float64 `json:"value" bson:"value"`
}

// FinanceStatus trạng thái ngân sách. Singleton.
type FinanceStatus struct {
	ExercisedBudget float64 `json:"exercisedBudget" bson:"exercisedBudget" validate:"percentage"`
	AccruedBudget   float64 `json:"accruedBudget" bson:"accruedBudget" validate:"percentage"`
	ScheduleDelay   float64 `json:"scheduleDelay" bson:"scheduleDelay" validate:"percentage"`
}

// TacticalDataPoint một điểm dữ liệu tracking theo ứng viên.
// Key composite: (Candidate, Date). Trend được suy ra lúc thêm điểm.
type TacticalDataPoint struct {
	Date       string  `json:"date" bson:"date"` // ISO date string "2006-01-02"
	Candidate  string  `json:"candidate" bson:"candidate"`
	Percentage float64 `json:"percentage" bson:"percentage" validate:"percentage"`
	Trend      Trend   `json:"trend" bson:"trend"`
}

// Testigo một lời chứng trong social listening
type Testigo struct {
	Username string `json:"username" bson:"username"`
	Content  string `json:"content" bson:"content"`
}

// SocialListening chỉ số mạng xã hội. Singleton với danh sách testigos có thứ tự.
type SocialListening struct {
	Mentions    float64   `json:"mentions" bson:"mentions"`       // nghìn lượt nhắc
	Impressions float64   `json:"impressions" bson:"impressions"` // triệu impressions
	Testigos    []Testigo `json:"testigos" bson:"testigos"`
}

// OperationProgressEntry tiến độ operación theo campaña 1..12.
// Ràng buộc: Progress + Delay <= 100, kiểm tra lúc ghi.
type OperationProgressEntry struct {
	Campaign int     `json:"campaign" bson:"campaign"` // 1..12
	Progress float64 `json:"progress" bson:"progress" validate:"percentage"`
	Delay    float64 `json:"delay" bson:"delay" validate:"percentage"`
}

// Aviso thông báo chiến dịch giữ trong store (bản sao client của resource avisos).
// CreatedAt là time.Time thật, được khôi phục đúng kiểu khi rehydrate snapshot.
type Aviso struct {
	ID        string    `json:"id" bson:"id"`
	Titulo    string    `json:"titulo" bson:"titulo"`
	Contenido string    `json:"contenido" bson:"contenido"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// MetricGoal cặp giá trị hiện tại / mục tiêu. Luôn được thay nguyên khối, không merge.
type MetricGoal struct {
	Current float64 `json:"current" bson:"current"`
	Target  float64 `json:"target" bson:"target"`
}

// OperationMetric chỉ số operación theo área. Key: Area.
type OperationMetric struct {
	Area        string     `json:"area" bson:"area"`
	Progress    float64    `json:"progress" bson:"progress" validate:"percentage"`
	Content     MetricGoal `json:"content" bson:"content"`
	Impressions MetricGoal `json:"impressions" bson:"impressions"`
}
