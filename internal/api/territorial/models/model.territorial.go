// Package models - Dữ liệu lãnh thổ theo vùng (9 departamentos).
package models

// Defender defensor del voto của một vùng
type Defender struct {
	ID       string `json:"id" bson:"id"`
	Nombre   string `json:"nombre" bson:"nombre"`
	Telefono string `json:"telefono,omitempty" bson:"telefono,omitempty"`
	Recinto  string `json:"recinto,omitempty" bson:"recinto,omitempty"`
}

// Event sự kiện vận động tại một vùng
type Event struct {
	ID     string `json:"id" bson:"id"`
	Titulo string `json:"titulo" bson:"titulo"`
	Fecha  string `json:"fecha" bson:"fecha"` // ISO date string "2006-01-02"
	Lugar  string `json:"lugar,omitempty" bson:"lugar,omitempty"`
}

// Segment phân khúc cử tri của một vùng
type Segment struct {
	ID       string `json:"id" bson:"id"`
	Nombre   string `json:"nombre" bson:"nombre"`
	Cantidad int    `json:"cantidad" bson:"cantidad"`
}

// RegionTerritorialData aggregate theo vùng, được materialize lười với
// template mặc định khi ghi lần đầu.
type RegionTerritorialData struct {
	Defenders       []Defender `json:"defenders" bson:"defenders"`
	Events          []Event    `json:"events" bson:"events"`
	PromotedCount   int        `json:"promotedCount" bson:"promotedCount"`
	TargetPromoters int        `json:"targetPromoters" bson:"targetPromoters"`
	Segments        []Segment  `json:"segments" bson:"segments"`
	TargetDefenders int        `json:"targetDefenders" bson:"targetDefenders"`
	ElectionDate    string     `json:"electionDate" bson:"electionDate"`
}

// Giá trị mặc định của template vùng
const (
	DefaultTargetPromoters = 500
	DefaultTargetDefenders = 1000
	DefaultElectionDate    = "2025-05-01"
)

// DefaultRegionData trả về template mặc định cho vùng chưa có dữ liệu
func DefaultRegionData() RegionTerritorialData {
	return RegionTerritorialData{
		Defenders:       []Defender{},
		Events:          []Event{},
		PromotedCount:   0,
		TargetPromoters: DefaultTargetPromoters,
		Segments:        []Segment{},
		TargetDefenders: DefaultTargetDefenders,
		ElectionDate:    DefaultElectionDate,
	}
}
