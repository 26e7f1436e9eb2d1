// Package metrics - Các hàm thuần tính toán chỉ số dẫn xuất cho dashboard:
// phần trăm tiến độ, phần còn lại của thanh operación, suy luận trend,
// xếp hạng vùng và grouping sự kiện theo ngày.
// Tất cả hàm đều deterministic, không side effect.
package metrics

import (
	"sort"

	dashmodels "aletheia/internal/api/dashboard/models"
)

// ProgressPercent tính current/target*100.
// Target bằng 0 trả về 0, không bao giờ NaN hay Infinity.
func ProgressPercent(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	return current / target * 100
}

// RemainderSplit tính phần chưa phân bổ của thanh operación: 100 - progress - delay.
// Input không nhất quán (progress + delay > 100) được clamp về 0 và gắn cờ.
func RemainderSplit(progress, delay float64) (remaining float64, inconsistent bool) {
	remaining = 100 - progress - delay
	if remaining < 0 {
		return 0, true
	}
	return remaining, false
}

// InferTrend suy luận trend cho một điểm tracking mới của candidate.
// Điểm so sánh là điểm có ngày lớn nhất trong các điểm trước newDate của cùng
// candidate (strict max theo giá trị ngày, không theo thứ tự insert).
// Không có điểm trước đó thì trend mặc định là "up".
func InferTrend(points []dashmodels.TacticalDataPoint, candidate, newDate string, newPercentage float64) dashmodels.Trend {
	var prior *dashmodels.TacticalDataPoint
	for i := range points {
		p := &points[i]
		if p.Candidate != candidate || p.Date >= newDate {
			continue
		}
		if prior == nil || p.Date > prior.Date {
			prior = p
		}
	}

	if prior == nil {
		return dashmodels.TrendUp
	}
	if newPercentage > prior.Percentage {
		return dashmodels.TrendUp
	}
	return dashmodels.TrendDown
}

// RegionStanding tiến độ của một vùng dùng cho xếp hạng
type RegionStanding struct {
	Region  string  `json:"region"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
	Rank    int     `json:"rank"`
}

// RankRegions xếp hạng các vùng theo phần trăm tiến độ giảm dần.
// Sort ổn định: vùng bằng điểm giữ nguyên thứ tự enumeration gốc của input.
func RankRegions(entries []RegionStanding) []RegionStanding {
	ranked := make([]RegionStanding, len(entries))
	copy(ranked, entries)
	for i := range ranked {
		ranked[i].Percent = ProgressPercent(ranked[i].Current, ranked[i].Target)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// GroupByDate nhóm các item theo ngày (so sánh chuỗi chính xác, không
// normalize timezone) và trả về danh sách ngày sắp xếp giảm dần.
// Các item cùng ngày giữ nguyên thứ tự tương đối của input.
func GroupByDate[T any](items []T, dateOf func(T) string) (map[string][]T, []string) {
	groups := make(map[string][]T)
	dates := make([]string, 0)
	for _, item := range items {
		date := dateOf(item)
		if _, exists := groups[date]; !exists {
			dates = append(dates, date)
		}
		groups[date] = append(groups[date], item)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return groups, dates
}
