// Package persist - Persistence Adapter: serialize subset trạng thái dashboard
// (bao gồm dữ liệu lãnh thổ) dưới storage key "dashboard-storage" vào MongoDB,
// và rehydrate store lúc khởi động với decode có kiểu, fail to tiếng khi
// snapshot hỏng.
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "aletheia/internal/api/base/service"
	dashstore "aletheia/internal/api/dashboard/store"
	"aletheia/internal/api/events"
	terrmodels "aletheia/internal/api/territorial/models"
	terrstore "aletheia/internal/api/territorial/store"
	"aletheia/internal/common"
	"aletheia/internal/global"
	"aletheia/internal/logger"
)

// StorageKey là key định danh snapshot duy nhất của dashboard
const StorageKey = "dashboard-storage"

// DashboardSnapshot document lưu snapshot trong collection dashboard_snapshots.
// Data là JSON-serialized PersistedState, mô phỏng đúng format chuỗi của
// storage phía client.
type DashboardSnapshot struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key"`
	Data      string             `json:"data" bson:"data"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// PersistedState là subset được persist của trạng thái dashboard
type PersistedState struct {
	dashstore.DashboardState
	TerritorialData map[string]terrmodels.RegionTerritorialData `json:"territorialData"`
}

// Adapter kết nối hai store với collection snapshot.
// Đăng ký vào event bus để lưu fire-and-forget sau mỗi mutation.
type Adapter struct {
	snapshots   *basesvc.BaseServiceMongoImpl[DashboardSnapshot]
	dashboard   *dashstore.Store
	territorial *terrstore.Store
	timeout     time.Duration
}

// NewAdapter tạo adapter với collection lấy từ registry
func NewAdapter(dashboard *dashstore.Store, territorial *terrstore.Store) (*Adapter, error) {
	coll, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.DashboardSnapshots)
	if !exists {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DashboardSnapshots, common.ErrNotFound)
	}

	timeout := 5 * time.Second
	if global.ServerConfig != nil && global.ServerConfig.SnapshotTimeout > 0 {
		timeout = time.Duration(global.ServerConfig.SnapshotTimeout) * time.Second
	}

	return &Adapter{
		snapshots:   basesvc.NewBaseServiceMongo[DashboardSnapshot](coll),
		dashboard:   dashboard,
		territorial: territorial,
		timeout:     timeout,
	}, nil
}

// Encode serialize subset persist hiện tại thành chuỗi JSON
func (a *Adapter) Encode() (string, error) {
	state := PersistedState{
		DashboardState:  a.dashboard.Snapshot(),
		TerritorialData: a.territorial.Export(),
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			"No se pudo serializar el estado del tablero",
			common.StatusInternalServerError,
			err,
		)
	}
	return string(raw), nil
}

// Decode parse chuỗi snapshot thành PersistedState có kiểu.
// Field date (aviso createdAt) được khôi phục thành time.Time thật qua decode
// có kiểu; dữ liệu hỏng trả về lỗi, không bao giờ im lặng sinh kiểu sai.
func Decode(data string) (PersistedState, error) {
	var state PersistedState
	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	if err := decoder.Decode(&state); err != nil {
		return PersistedState{}, common.NewError(
			common.ErrCodeValidationFormat,
			"El snapshot persistido del tablero está corrupto y no se puede restaurar",
			common.StatusInternalServerError,
			err,
		)
	}
	return state, nil
}

// Save upsert snapshot hiện tại dưới StorageKey
func (a *Adapter) Save(ctx context.Context) error {
	data, err := a.Encode()
	if err != nil {
		return err
	}

	_, err = a.snapshots.Upsert(ctx, bson.M{"key": StorageKey}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":  StorageKey,
			"data": data,
		},
	})
	return err
}

// Hydrate load snapshot từ Mongo và rehydrate cả hai store, sau đó bật cờ
// hydrated. Chưa có snapshot (lần chạy đầu) thì giữ nguyên state đã seed.
// Snapshot hỏng là lỗi fatal của quá trình khởi động.
func (a *Adapter) Hydrate(ctx context.Context) error {
	snapshot, err := a.snapshots.FindOne(ctx, bson.M{"key": StorageKey}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.dashboard.MarkHydrated()
			logger.GetAppLogger().Info("no persisted snapshot found, starting with seeded state")
			return nil
		}
		return err
	}

	state, err := Decode(snapshot.Data)
	if err != nil {
		return err
	}

	a.dashboard.LoadState(state.DashboardState)
	a.territorial.Load(state.TerritorialData)
	a.dashboard.MarkHydrated()

	logger.GetAppLogger().WithField("key", StorageKey).Info("dashboard state rehydrated from snapshot")
	return nil
}

// Subscribe đăng ký adapter vào event bus: mỗi mutation của dashboard hoặc
// territorial store kích hoạt một lần lưu snapshot fire-and-forget.
// Dùng context riêng với timeout thay vì context của request (request có thể
// đã bị hủy sau khi response trả về).
func (a *Adapter) Subscribe() {
	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		if e.Section != dashstore.Section && e.Section != terrstore.Section {
			return
		}

		saveCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.Save(saveCtx); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("section", e.Section).Error("failed to persist dashboard snapshot")
		}
	})
}
