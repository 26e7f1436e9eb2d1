// Package metrics - Test các hàm tính chỉ số dẫn xuất.
package metrics

import (
	"testing"

	dashmodels "aletheia/internal/api/dashboard/models"
)

func TestProgressPercent(t *testing.T) {
	if got := ProgressPercent(50, 200); got != 25 {
		t.Errorf("ProgressPercent(50, 200) = %v, muốn 25", got)
	}
	if got := ProgressPercent(300, 200); got != 150 {
		t.Errorf("ProgressPercent(300, 200) = %v, muốn 150 (cho phép vượt 100)", got)
	}
}

func TestProgressPercent_TargetZero(t *testing.T) {
	// Target 0 phải trả về 0, không được NaN hay Inf
	if got := ProgressPercent(50, 0); got != 0 {
		t.Errorf("ProgressPercent(50, 0) = %v, muốn 0", got)
	}
	if got := ProgressPercent(0, 0); got != 0 {
		t.Errorf("ProgressPercent(0, 0) = %v, muốn 0", got)
	}
}

func TestRemainderSplit(t *testing.T) {
	remaining, inconsistent := RemainderSplit(50, 30)
	if remaining != 20 || inconsistent {
		t.Errorf("RemainderSplit(50, 30) = (%v, %v), muốn (20, false)", remaining, inconsistent)
	}

	remaining, inconsistent = RemainderSplit(70, 30)
	if remaining != 0 || inconsistent {
		t.Errorf("RemainderSplit(70, 30) = (%v, %v), muốn (0, false)", remaining, inconsistent)
	}
}

func TestRemainderSplit_Inconsistent(t *testing.T) {
	// Tổng vượt 100 phải clamp về 0 và gắn cờ inconsistent
	remaining, inconsistent := RemainderSplit(80, 30)
	if remaining != 0 {
		t.Errorf("RemainderSplit(80, 30) remaining = %v, muốn 0 (không được âm)", remaining)
	}
	if !inconsistent {
		t.Error("RemainderSplit(80, 30) phải gắn cờ inconsistent")
	}
}

func TestInferTrend_FirstPoint(t *testing.T) {
	// Candidate chưa có điểm nào thì trend mặc định là up
	got := InferTrend(nil, "Reyes Villa", "2025-03-01", 40)
	if got != dashmodels.TrendUp {
		t.Errorf("InferTrend điểm đầu tiên = %v, muốn %v", got, dashmodels.TrendUp)
	}
}

func TestInferTrend_ComparesAgainstLatestPrior(t *testing.T) {
	// Điểm so sánh là điểm có ngày LỚN NHẤT trước newDate,
	// không phụ thuộc thứ tự insert
	points := []dashmodels.TacticalDataPoint{
		{Date: "2025-02-15", Candidate: "Reyes Villa", Percentage: 45},
		{Date: "2025-01-01", Candidate: "Reyes Villa", Percentage: 30},
		{Date: "2025-02-20", Candidate: "Otro", Percentage: 90},
	}

	// 40 < 45 (điểm 2025-02-15, không phải 30 của 2025-01-01) => down
	got := InferTrend(points, "Reyes Villa", "2025-03-01", 40)
	if got != dashmodels.TrendDown {
		t.Errorf("InferTrend = %v, muốn %v (so với điểm 2025-02-15)", got, dashmodels.TrendDown)
	}

	// 50 > 45 => up
	got = InferTrend(points, "Reyes Villa", "2025-03-01", 50)
	if got != dashmodels.TrendUp {
		t.Errorf("InferTrend = %v, muốn %v", got, dashmodels.TrendUp)
	}
}

func TestInferTrend_IgnoresSameAndFutureDates(t *testing.T) {
	// Điểm cùng ngày hoặc sau newDate không được dùng làm điểm so sánh
	points := []dashmodels.TacticalDataPoint{
		{Date: "2025-03-01", Candidate: "Reyes Villa", Percentage: 60},
		{Date: "2025-04-01", Candidate: "Reyes Villa", Percentage: 70},
	}
	got := InferTrend(points, "Reyes Villa", "2025-03-01", 10)
	if got != dashmodels.TrendUp {
		t.Errorf("InferTrend không có điểm trước đó = %v, muốn %v", got, dashmodels.TrendUp)
	}
}

func TestInferTrend_EqualPercentageIsDown(t *testing.T) {
	points := []dashmodels.TacticalDataPoint{
		{Date: "2025-02-01", Candidate: "Reyes Villa", Percentage: 40},
	}
	got := InferTrend(points, "Reyes Villa", "2025-03-01", 40)
	if got != dashmodels.TrendDown {
		t.Errorf("InferTrend bằng điểm trước = %v, muốn %v (chỉ tăng mới là up)", got, dashmodels.TrendDown)
	}
}

func TestRankRegions(t *testing.T) {
	entries := []RegionStanding{
		{Region: "la-paz", Current: 100, Target: 1000},
		{Region: "cochabamba", Current: 500, Target: 1000},
		{Region: "santa-cruz", Current: 300, Target: 1000},
	}

	ranked := RankRegions(entries)
	if len(ranked) != 3 {
		t.Fatalf("RankRegions trả về %d phần tử, muốn 3", len(ranked))
	}
	if ranked[0].Region != "cochabamba" || ranked[0].Rank != 1 {
		t.Errorf("hạng 1 = %s (rank %d), muốn cochabamba rank 1", ranked[0].Region, ranked[0].Rank)
	}
	if ranked[1].Region != "santa-cruz" || ranked[1].Rank != 2 {
		t.Errorf("hạng 2 = %s (rank %d), muốn santa-cruz rank 2", ranked[1].Region, ranked[1].Rank)
	}
	if ranked[2].Region != "la-paz" || ranked[2].Rank != 3 {
		t.Errorf("hạng 3 = %s (rank %d), muốn la-paz rank 3", ranked[2].Region, ranked[2].Rank)
	}
	if ranked[0].Percent != 50 {
		t.Errorf("percent hạng 1 = %v, muốn 50", ranked[0].Percent)
	}

	// Input không được thay đổi
	if entries[0].Rank != 0 || entries[0].Percent != 0 {
		t.Error("RankRegions không được sửa slice input")
	}
}

func TestRankRegions_StableTies(t *testing.T) {
	// Vùng bằng điểm giữ nguyên thứ tự enumeration gốc của input
	entries := []RegionStanding{
		{Region: "beni", Current: 50, Target: 100},
		{Region: "pando", Current: 50, Target: 100},
		{Region: "tarija", Current: 50, Target: 100},
	}
	ranked := RankRegions(entries)
	want := []string{"beni", "pando", "tarija"}
	for i, region := range want {
		if ranked[i].Region != region {
			t.Errorf("vị trí %d = %s, muốn %s (sort phải ổn định khi bằng điểm)", i, ranked[i].Region, region)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("rank của %s = %d, muốn %d", ranked[i].Region, ranked[i].Rank, i+1)
		}
	}
}

func TestGroupByDate(t *testing.T) {
	type evt struct {
		Fecha  string
		Titulo string
	}
	items := []evt{
		{Fecha: "2025-03-10", Titulo: "a"},
		{Fecha: "2025-04-01", Titulo: "b"},
		{Fecha: "2025-03-10", Titulo: "c"},
	}

	groups, dates := GroupByDate(items, func(e evt) string { return e.Fecha })

	if len(groups) != 2 {
		t.Fatalf("GroupByDate trả về %d nhóm, muốn 2", len(groups))
	}
	// Ngày mới nhất đứng trước
	if len(dates) != 2 || dates[0] != "2025-04-01" || dates[1] != "2025-03-10" {
		t.Errorf("dates = %v, muốn [2025-04-01 2025-03-10] (giảm dần)", dates)
	}
	// Item cùng ngày giữ nguyên thứ tự input
	g := groups["2025-03-10"]
	if len(g) != 2 || g[0].Titulo != "a" || g[1].Titulo != "c" {
		t.Errorf("nhóm 2025-03-10 = %+v, muốn [a c] theo thứ tự input", g)
	}
}

func TestGroupByDate_ExactStringKeys(t *testing.T) {
	// So sánh chuỗi chính xác: ngày có timezone khác nhau là key khác nhau
	type evt struct{ Fecha string }
	items := []evt{
		{Fecha: "2025-03-10T00:00:00Z"},
		{Fecha: "2025-03-10T00:00:00-04:00"},
	}
	groups, _ := GroupByDate(items, func(e evt) string { return e.Fecha })
	if len(groups) != 2 {
		t.Errorf("GroupByDate trả về %d nhóm, muốn 2 (không normalize timezone)", len(groups))
	}
}
