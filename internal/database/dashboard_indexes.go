// Package database - Index bổ sung cho các collection nghiệp vụ (compound, unique)
// không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"aletheia/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDashboardIndexes tạo các index cho các collection của dashboard.
// Gọi một lần lúc khởi động server, bỏ qua lỗi index đã tồn tại.
func CreateDashboardIndexes(ctx context.Context, db *mongo.Database) error {
	// dashboard_snapshots: key unique — mỗi snapshot được định danh bằng storage key
	snapshots := db.Collection(global.MongoDB_ColNames.DashboardSnapshots)
	if _, err := snapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "key", Value: 1},
		},
		Options: options.Index().SetName("dashboard_snapshot_key").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// avisos: createdAt desc — danh sách avisos luôn trả về mới nhất trước
	avisos := db.Collection(global.MongoDB_ColNames.Avisos)
	if _, err := avisos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("aviso_created_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// adversario_actualizaciones: (adversarioId, fecha) — timeline cập nhật theo đối thủ
	actualizaciones := db.Collection(global.MongoDB_ColNames.AdversarioActualizaciones)
	if _, err := actualizaciones.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "adversarioId", Value: 1},
			{Key: "fecha", Value: -1},
		},
		Options: options.Index().SetName("adversario_act_adversario_fecha"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// encuestas: (region, fecha) — lookup khảo sát theo vùng và thời gian
	encuestas := db.Collection(global.MongoDB_ColNames.Encuestas)
	if _, err := encuestas.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "region", Value: 1},
			{Key: "fecha", Value: -1},
		},
		Options: options.Index().SetName("encuesta_region_fecha"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// estrategia_calendario: fecha — grouping sự kiện theo ngày
	calendario := db.Collection(global.MongoDB_ColNames.EstCalendario)
	if _, err := calendario.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "fecha", Value: -1},
		},
		Options: options.Index().SetName("est_calendario_fecha"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
