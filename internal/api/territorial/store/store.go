// Package store - Region Aggregate Store: mapping vùng → aggregate lãnh thổ,
// materialize lười với template mặc định. Đọc không có side effect, chỉ ghi
// mới tạo aggregate.
package store

import (
	"context"
	"sync"

	dashmetrics "aletheia/internal/api/dashboard/metrics"
	"aletheia/internal/api/events"
	terrmodels "aletheia/internal/api/territorial/models"
	"aletheia/internal/global"
)

// Section định danh nguồn event phát ra từ store này
const Section = "territorial"

// IDGenerator sinh id duy nhất cho defender/event/segment.
// Inject từ ngoài (uuid trong production) thay cho id theo timestamp.
type IDGenerator func() string

// Store chứa aggregate lãnh thổ theo vùng. Vùng hợp lệ là 9 departamentos
// trong global.RegionKeys, nhưng store chấp nhận và default đúng mọi
// identifier chưa có mặt.
type Store struct {
	mu      sync.RWMutex
	regions map[string]terrmodels.RegionTerritorialData
	idGen   IDGenerator
}

// NewStore tạo store rỗng, không pre-seed vùng nào
func NewStore(idGen IDGenerator) *Store {
	return &Store{
		regions: make(map[string]terrmodels.RegionTerritorialData),
		idGen:   idGen,
	}
}

// copyRegion trả về deep copy để caller không mutate được state bên trong
func copyRegion(data terrmodels.RegionTerritorialData) terrmodels.RegionTerritorialData {
	out := data
	out.Defenders = append([]terrmodels.Defender{}, data.Defenders...)
	out.Events = append([]terrmodels.Event{}, data.Events...)
	out.Segments = append([]terrmodels.Segment{}, data.Segments...)
	return out
}

// GetOrDefault trả về aggregate của vùng, hoặc template mặc định nếu vùng
// chưa có dữ liệu. Đọc không bao giờ materialize vùng vào store.
func (s *Store) GetOrDefault(regionID string) terrmodels.RegionTerritorialData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if data, exists := s.regions[regionID]; exists {
		return copyRegion(data)
	}
	return terrmodels.DefaultRegionData()
}

// ensureLocked materialize vùng với template mặc định nếu chưa có.
// Caller phải giữ write lock.
func (s *Store) ensureLocked(regionID string) terrmodels.RegionTerritorialData {
	if data, exists := s.regions[regionID]; exists {
		return data
	}
	data := terrmodels.DefaultRegionData()
	s.regions[regionID] = data
	return data
}

// emit phát event để persistence adapter lưu snapshot
func (s *Store) emit(ctx context.Context, operation string, document interface{}) {
	events.EmitDataChanged(ctx, events.DataChangeEvent{
		Section:   Section,
		Operation: operation,
		Document:  document,
	})
}

func cancelled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}

// AppendDefender sinh id và thêm defender vào vùng, materialize nếu cần
func (s *Store) AppendDefender(ctx context.Context, regionID string, defender terrmodels.Defender) (terrmodels.Defender, bool) {
	if cancelled(ctx) {
		return terrmodels.Defender{}, false
	}
	defender.ID = s.idGen()

	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.Defenders = append(data.Defenders, defender)
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpInsert, defender)
	return defender, true
}

// AppendEvent sinh id và thêm sự kiện vào vùng, materialize nếu cần
func (s *Store) AppendEvent(ctx context.Context, regionID string, event terrmodels.Event) (terrmodels.Event, bool) {
	if cancelled(ctx) {
		return terrmodels.Event{}, false
	}
	event.ID = s.idGen()

	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.Events = append(data.Events, event)
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpInsert, event)
	return event, true
}

// AppendSegment sinh id và thêm phân khúc vào vùng, materialize nếu cần
func (s *Store) AppendSegment(ctx context.Context, regionID string, segment terrmodels.Segment) (terrmodels.Segment, bool) {
	if cancelled(ctx) {
		return terrmodels.Segment{}, false
	}
	segment.ID = s.idGen()

	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.Segments = append(data.Segments, segment)
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpInsert, segment)
	return segment, true
}

// SetPromotedCount ghi số promotores đã vận động của vùng
func (s *Store) SetPromotedCount(ctx context.Context, regionID string, count int) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.PromotedCount = count
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpUpdate, regionID)
}

// SetTargetPromoters ghi mục tiêu promotores của vùng
func (s *Store) SetTargetPromoters(ctx context.Context, regionID string, target int) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.TargetPromoters = target
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpUpdate, regionID)
}

// SetElectionConfig ghi cấu hình bầu cử (ngày bầu cử, mục tiêu defensores) của vùng
func (s *Store) SetElectionConfig(ctx context.Context, regionID string, electionDate string, targetDefenders int) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	data := s.ensureLocked(regionID)
	data.ElectionDate = electionDate
	data.TargetDefenders = targetDefenders
	s.regions[regionID] = data
	s.mu.Unlock()

	s.emit(ctx, events.OpUpdate, regionID)
}

// Export trả về copy toàn bộ các vùng đã materialize, dùng cho snapshot
func (s *Store) Export() map[string]terrmodels.RegionTerritorialData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]terrmodels.RegionTerritorialData, len(s.regions))
	for regionID, data := range s.regions {
		out[regionID] = copyRegion(data)
	}
	return out
}

// Load thay toàn bộ state bằng dữ liệu rehydrate từ snapshot
func (s *Store) Load(regions map[string]terrmodels.RegionTerritorialData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = make(map[string]terrmodels.RegionTerritorialData, len(regions))
	for regionID, data := range regions {
		s.regions[regionID] = copyRegion(data)
	}
}

// Standings trả về tiến độ promoción của cả 9 vùng theo thứ tự enumeration
// gốc, vùng chưa materialize dùng template mặc định. Input cho RankRegions.
func (s *Store) Standings() []dashmetrics.RegionStanding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	standings := make([]dashmetrics.RegionStanding, 0, len(global.RegionKeys))
	for _, regionID := range global.RegionKeys {
		data, exists := s.regions[regionID]
		if !exists {
			data = terrmodels.DefaultRegionData()
		}
		standings = append(standings, dashmetrics.RegionStanding{
			Region:  regionID,
			Current: float64(data.PromotedCount),
			Target:  float64(data.TargetPromoters),
		})
	}
	return standings
}
