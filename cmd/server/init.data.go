package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aletheia/internal/api/dashboard/persist"
	dashstore "aletheia/internal/api/dashboard/store"
	terrstore "aletheia/internal/api/territorial/store"
	"aletheia/internal/logger"
)

// Hai store in-memory của dashboard, dùng chung cho router và persist adapter
var (
	dashboardStore   *dashstore.Store
	territorialStore *terrstore.Store
)

// InitStores khởi tạo store in-memory, nạp lại snapshot đã lưu từ MongoDB
// và đăng ký ghi snapshot tự động mỗi khi dữ liệu thay đổi.
func InitStores() {
	log := logger.GetAppLogger()

	dashboardStore = dashstore.NewStore(uuid.NewString)
	territorialStore = terrstore.NewStore(uuid.NewString)

	adapter, err := persist.NewAdapter(dashboardStore, territorialStore)
	if err != nil {
		log.Fatalf("Failed to create persistence adapter: %v", err)
	}

	// Nạp snapshot đã lưu trước khi nhận request, store chưa hydrate sẽ
	// từ chối các request đọc dữ liệu dẫn xuất
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := adapter.Hydrate(ctx); err != nil {
		log.Fatalf("Failed to hydrate dashboard state: %v", err)
	}
	log.Info("Dashboard state hydrated")

	// Mỗi thay đổi trên store sẽ ghi lại snapshot xuống MongoDB
	adapter.Subscribe()
	log.Info("Snapshot persistence subscribed")
}
