// Package system - Health check và fixture tĩnh của mock server.
package system

// Fixture tĩnh mô phỏng dữ liệu mẫu của dashboard, phục vụ mock server và demo.
// Không phải contract của core, chỉ minh họa shape dữ liệu.

// MetricasFixture dữ liệu mẫu cho /dashboard/metricas
var MetricasFixture = []map[string]interface{}{
	{"area": "TERRITORIO", "progress": 72, "content": map[string]interface{}{"current": 18, "target": 25}, "impressions": map[string]interface{}{"current": 1.2, "target": 2.0}},
	{"area": "DIGITAL", "progress": 64, "content": map[string]interface{}{"current": 32, "target": 50}, "impressions": map[string]interface{}{"current": 3.4, "target": 5.0}},
	{"area": "AIRE", "progress": 55, "content": map[string]interface{}{"current": 11, "target": 20}, "impressions": map[string]interface{}{"current": 0.8, "target": 1.5}},
	{"area": "TELEFONÍA", "progress": 48, "content": map[string]interface{}{"current": 2400, "target": 5000}, "impressions": map[string]interface{}{"current": 0.3, "target": 0.6}},
}

// CampanaFixture dữ liệu mẫu cho /dashboard/campana
var CampanaFixture = []map[string]interface{}{
	{"campaign": "GENERAL", "progress": 68, "trend": "up"},
	{"campaign": "TERRITORIO", "progress": 72, "trend": "up"},
	{"campaign": "DIGITAL", "progress": 64, "trend": "down"},
	{"campaign": "AIRE", "progress": 55, "trend": "up"},
	{"campaign": "TELEFONÍA", "progress": 48, "trend": "down"},
}

// OperacionFixture dữ liệu mẫu cho /dashboard/operacion
var OperacionFixture = []map[string]interface{}{
	{"campaign": 1, "progress": 65, "delay": 15},
	{"campaign": 2, "progress": 40, "delay": 25},
	{"campaign": 3, "progress": 80, "delay": 5},
	{"campaign": 4, "progress": 55, "delay": 20},
	{"campaign": 5, "progress": 30, "delay": 10},
	{"campaign": 6, "progress": 90, "delay": 0},
	{"campaign": 7, "progress": 25, "delay": 35},
	{"campaign": 8, "progress": 70, "delay": 10},
	{"campaign": 9, "progress": 45, "delay": 30},
	{"campaign": 10, "progress": 60, "delay": 15},
	{"campaign": 11, "progress": 35, "delay": 20},
	{"campaign": 12, "progress": 50, "delay": 25},
}
