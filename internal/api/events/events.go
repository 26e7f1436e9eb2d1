// Package events cung cấp cơ chế event trung tâm khi dữ liệu dashboard thay đổi.
// Store và các service CRUD không cần gọi trực tiếp persist — mutation tự động phát event.
// Logic phản ứng (lưu snapshot, cache invalidation, ...) đăng ký qua OnDataChanged.
package events

import (
	"context"
	"sync"
)

// OpInsert, OpUpdate, OpUpsert, OpDelete là các loại thao tác thay đổi dữ liệu.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent mô tả sự kiện thay đổi dữ liệu.
// Section là phần của dashboard bị ảnh hưởng (ví dụ "timeline", "territorial").
// Document là bản ghi sau khi thay đổi (nil nếu delete).
type DataChangeEvent struct {
	Section   string
	Operation string
	Document  interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged đăng ký handler. Gọi khi init (ví dụ từ persist adapter).
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged phát sự kiện sau mỗi mutation thành công.
// Mỗi handler chạy trong goroutine riêng, panic được recover để không ảnh hưởng handler khác.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					// Log panic nhưng không làm sập app
					// Logger có thể chưa init khi event chạy sớm
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}

// ResetHandlers xóa toàn bộ handlers đã đăng ký (dùng trong test)
func ResetHandlers() {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = nil
}
