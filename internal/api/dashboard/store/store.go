// Package store - Keyed Collection Store của dashboard: container trạng thái
// injectable giữ các collection theo key (timeline, campañas, chỉ số, tactical,
// operación) và các singleton (profile, finance, social listening, user).
//
// Các collection enumeration cố định được seed đủ key lúc khởi tạo; upsert theo
// key không bao giờ insert — key không tồn tại là no-op im lặng.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	dashmetrics "aletheia/internal/api/dashboard/metrics"
	dashmodels "aletheia/internal/api/dashboard/models"
	"aletheia/internal/api/events"
	"aletheia/internal/common"
)

// Section định danh nguồn event phát ra từ store này
const Section = "dashboard"

// IDGenerator sinh id duy nhất cho các bản ghi tạo phía store.
// Inject từ ngoài (uuid trong production) để test kiểm soát được giá trị.
type IDGenerator func() string

// DashboardState bản chụp đầy đủ trạng thái dashboard, dùng cho snapshot và API đọc
type DashboardState struct {
	CurrentUser       dashmodels.User                     `json:"currentUser"`
	Profile           dashmodels.Profile                  `json:"profile"`
	Timeline          []dashmodels.TimelineEntry          `json:"timeline"`
	CampaignProgress  []dashmodels.CampaignProgressEntry  `json:"campaignProgress"`
	Indicators        []dashmodels.Indicator              `json:"indicators"`
	Finance           dashmodels.FinanceStatus            `json:"finance"`
	TacticalData      []dashmodels.TacticalDataPoint      `json:"tacticalData"`
	SocialListening   dashmodels.SocialListening          `json:"socialListening"`
	OperationProgress []dashmodels.OperationProgressEntry `json:"operationProgress"`
	OperationMetrics  []dashmodels.OperationMetric        `json:"operationMetrics"`
	AvisosCochabamba  []dashmodels.Aviso                  `json:"avisosCochabamba"`
}

// Store container trạng thái dashboard. Mọi truy cập qua mutex, mutation là
// last-writer-wins trên key mà nó nhắm tới.
type Store struct {
	mu       sync.RWMutex
	hydrated bool
	idGen    IDGenerator

	currentUser       dashmodels.User
	profile           dashmodels.Profile
	timeline          []dashmodels.TimelineEntry
	campaignProgress  []dashmodels.CampaignProgressEntry
	indicators        []dashmodels.Indicator
	finance           dashmodels.FinanceStatus
	tacticalData      []dashmodels.TacticalDataPoint
	socialListening   dashmodels.SocialListening
	operationProgress []dashmodels.OperationProgressEntry
	operationMetrics  []dashmodels.OperationMetric
	avisosCochabamba  []dashmodels.Aviso
}

// NewStore tạo store mới với các collection enumeration đã seed đủ key:
// 24 tuần timeline, 5 campañas, 4 áreas de operación, 12 dòng operation progress.
func NewStore(idGen IDGenerator) *Store {
	s := &Store{idGen: idGen}

	s.timeline = make([]dashmodels.TimelineEntry, 0, dashmodels.TimelineWeeks)
	for i := 1; i <= dashmodels.TimelineWeeks; i++ {
		s.timeline = append(s.timeline, dashmodels.TimelineEntry{Week: fmt.Sprintf("S%d", i)})
	}

	s.campaignProgress = make([]dashmodels.CampaignProgressEntry, 0, len(dashmodels.CampanaKeys))
	for _, campana := range dashmodels.CampanaKeys {
		s.campaignProgress = append(s.campaignProgress, dashmodels.CampaignProgressEntry{
			Campaign: campana,
			Trend:    dashmodels.TrendUp,
		})
	}

	s.operationMetrics = make([]dashmodels.OperationMetric, 0, len(dashmodels.AreaKeys))
	for _, area := range dashmodels.AreaKeys {
		s.operationMetrics = append(s.operationMetrics, dashmodels.OperationMetric{Area: area})
	}

	s.operationProgress = make([]dashmodels.OperationProgressEntry, 0, dashmodels.OperationRows)
	for i := 1; i <= dashmodels.OperationRows; i++ {
		s.operationProgress = append(s.operationProgress, dashmodels.OperationProgressEntry{Campaign: i})
	}

	s.indicators = []dashmodels.Indicator{}
	s.tacticalData = []dashmodels.TacticalDataPoint{}
	s.avisosCochabamba = []dashmodels.Aviso{}
	s.socialListening.Testigos = []dashmodels.Testigo{}

	return s
}

// Hydrated cho biết store đã được rehydrate từ snapshot chưa
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// MarkHydrated đánh dấu store đã sẵn sàng cho các phép đọc dẫn xuất
func (s *Store) MarkHydrated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true
}

// RequireHydrated trả về lỗi nếu store chưa hydrate.
// Các phép đọc chỉ số dẫn xuất phải gọi trước khi tính toán, nếu không
// sẽ tính trên collection default/rỗng.
func (s *Store) RequireHydrated() error {
	if !s.Hydrated() {
		return common.ErrNotHydrated
	}
	return nil
}

// Snapshot trả về bản chụp đầy đủ (copy) của trạng thái hiện tại
func (s *Store) Snapshot() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return DashboardState{
		CurrentUser:       s.currentUser,
		Profile:           s.profile,
		Timeline:          append([]dashmodels.TimelineEntry{}, s.timeline...),
		CampaignProgress:  append([]dashmodels.CampaignProgressEntry{}, s.campaignProgress...),
		Indicators:        append([]dashmodels.Indicator{}, s.indicators...),
		Finance:           s.finance,
		TacticalData:      append([]dashmodels.TacticalDataPoint{}, s.tacticalData...),
		SocialListening:   s.copySocialListeningLocked(),
		OperationProgress: append([]dashmodels.OperationProgressEntry{}, s.operationProgress...),
		OperationMetrics:  append([]dashmodels.OperationMetric{}, s.operationMetrics...),
		AvisosCochabamba:  append([]dashmodels.Aviso{}, s.avisosCochabamba...),
	}
}

func (s *Store) copySocialListeningLocked() dashmodels.SocialListening {
	sl := s.socialListening
	sl.Testigos = append([]dashmodels.Testigo{}, s.socialListening.Testigos...)
	return sl
}

// LoadState thay toàn bộ trạng thái bằng state đã rehydrate từ snapshot.
// Collection nil trong state giữ nguyên giá trị seed hiện tại, để snapshot
// cũ thiếu section không xóa mất enumeration đã seed.
func (s *Store) LoadState(state DashboardState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = state.CurrentUser
	s.profile = state.Profile
	s.finance = state.Finance
	if state.Timeline != nil {
		s.timeline = state.Timeline
	}
	if state.CampaignProgress != nil {
		s.campaignProgress = state.CampaignProgress
	}
	if state.Indicators != nil {
		s.indicators = state.Indicators
	}
	if state.TacticalData != nil {
		s.tacticalData = state.TacticalData
	}
	if state.SocialListening.Testigos != nil {
		s.socialListening = state.SocialListening
	} else {
		s.socialListening.Mentions = state.SocialListening.Mentions
		s.socialListening.Impressions = state.SocialListening.Impressions
	}
	if state.OperationProgress != nil {
		s.operationProgress = state.OperationProgress
	}
	if state.OperationMetrics != nil {
		s.operationMetrics = state.OperationMetrics
	}
	if state.AvisosCochabamba != nil {
		s.avisosCochabamba = state.AvisosCochabamba
	}
}

// emit phát event thay đổi dữ liệu để persistence adapter lưu snapshot fire-and-forget
func (s *Store) emit(ctx context.Context, operation string, document interface{}) {
	events.EmitDataChanged(ctx, events.DataChangeEvent{
		Section:   Section,
		Operation: operation,
		Document:  document,
	})
}

// cancelled kiểm tra context đã bị hủy chưa. Fetch resolve sau khi view đã
// unmount (context hủy) phải là no-op an toàn, không mutate store.
func cancelled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}

// ==========================
// SINGLETON MUTATIONS
// ==========================

// SetCurrentUser ghi user hiện tại của phiên dashboard
func (s *Store) SetCurrentUser(ctx context.Context, user dashmodels.User) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, user)
}

// CurrentUser trả về user hiện tại
func (s *Store) CurrentUser() dashmodels.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// PatchProfile merge nông patch vào profile singleton
func (s *Store) PatchProfile(ctx context.Context, patch dashmodels.ProfilePatch) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Compliance != nil {
		s.profile.Compliance = *patch.Compliance
	}
	if patch.ImageURL != nil {
		s.profile.ImageURL = *patch.ImageURL
	}
	updated := s.profile
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, updated)
}

// Profile trả về profile hiện tại
func (s *Store) Profile() dashmodels.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// PatchFinance merge nông patch vào finance singleton
func (s *Store) PatchFinance(ctx context.Context, patch dashmodels.FinancePatch) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	if patch.ExercisedBudget != nil {
		s.finance.ExercisedBudget = *patch.ExercisedBudget
	}
	if patch.AccruedBudget != nil {
		s.finance.AccruedBudget = *patch.AccruedBudget
	}
	if patch.ScheduleDelay != nil {
		s.finance.ScheduleDelay = *patch.ScheduleDelay
	}
	updated := s.finance
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, updated)
}

// Finance trả về trạng thái ngân sách hiện tại
func (s *Store) Finance() dashmodels.FinanceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finance
}

// PatchSocialListening merge nông patch vào social listening.
// Testigos (nếu có trong patch) thay nguyên khối danh sách.
func (s *Store) PatchSocialListening(ctx context.Context, patch dashmodels.SocialListeningPatch) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	if patch.Mentions != nil {
		s.socialListening.Mentions = *patch.Mentions
	}
	if patch.Impressions != nil {
		s.socialListening.Impressions = *patch.Impressions
	}
	if patch.Testigos != nil {
		s.socialListening.Testigos = append([]dashmodels.Testigo{}, (*patch.Testigos)...)
	}
	updated := s.copySocialListeningLocked()
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, updated)
}

// SocialListening trả về trạng thái social listening hiện tại
func (s *Store) SocialListening() dashmodels.SocialListening {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySocialListeningLocked()
}

// ==========================
// KEYED COLLECTION UPSERTS
// ==========================

// UpsertTimeline merge patch vào tuần có key tương ứng.
// Tuần không tồn tại: no-op im lặng, trả về false.
func (s *Store) UpsertTimeline(ctx context.Context, week string, patch dashmodels.TimelinePatch) bool {
	if cancelled(ctx) {
		return false
	}
	s.mu.Lock()
	matched := false
	for i := range s.timeline {
		if s.timeline[i].Week != week {
			continue
		}
		if patch.Planned != nil {
			s.timeline[i].Planned = *patch.Planned
		}
		if patch.Executed != nil {
			s.timeline[i].Executed = *patch.Executed
		}
		matched = true
	}
	s.mu.Unlock()
	if matched {
		s.emit(ctx, events.OpUpdate, week)
	}
	return matched
}

// Timeline trả về copy của timeline
func (s *Store) Timeline() []dashmodels.TimelineEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.TimelineEntry{}, s.timeline...)
}

// UpsertCampaignProgress merge patch vào campaña có key tương ứng
func (s *Store) UpsertCampaignProgress(ctx context.Context, campaign string, patch dashmodels.CampaignProgressPatch) bool {
	if cancelled(ctx) {
		return false
	}
	s.mu.Lock()
	matched := false
	for i := range s.campaignProgress {
		if s.campaignProgress[i].Campaign != campaign {
			continue
		}
		if patch.Progress != nil {
			s.campaignProgress[i].Progress = *patch.Progress
		}
		if patch.Trend != nil {
			s.campaignProgress[i].Trend = *patch.Trend
		}
		matched = true
	}
	s.mu.Unlock()
	if matched {
		s.emit(ctx, events.OpUpdate, campaign)
	}
	return matched
}

// CampaignProgress trả về copy của danh sách tiến độ campaña
func (s *Store) CampaignProgress() []dashmodels.CampaignProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.CampaignProgressEntry{}, s.campaignProgress...)
}

// SetIndicators thay nguyên danh sách chỉ số (load từ server)
func (s *Store) SetIndicators(ctx context.Context, indicators []dashmodels.Indicator) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	s.indicators = append([]dashmodels.Indicator{}, indicators...)
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, "indicators")
}

// UpsertIndicator merge patch vào chỉ số có type tương ứng
func (s *Store) UpsertIndicator(ctx context.Context, indicatorType string, patch dashmodels.IndicatorPatch) bool {
	if cancelled(ctx) {
		return false
	}
	s.mu.Lock()
	matched := false
	for i := range s.indicators {
		if s.indicators[i].Type != indicatorType {
			continue
		}
		if patch.Value != nil {
			s.indicators[i].Value = *patch.Value
		}
		matched = true
	}
	s.mu.Unlock()
	if matched {
		s.emit(ctx, events.OpUpdate, indicatorType)
	}
	return matched
}

// Indicators trả về copy của danh sách chỉ số
func (s *Store) Indicators() []dashmodels.Indicator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.Indicator{}, s.indicators...)
}

// UpsertOperationProgress merge patch vào dòng operación theo campaign id.
// Ràng buộc progress + delay <= 100 được kiểm tra trên giá trị sau merge,
// vi phạm bị từ chối là lỗi validation, không ghi.
func (s *Store) UpsertOperationProgress(ctx context.Context, campaign int, patch dashmodels.OperationProgressPatch) (bool, error) {
	if cancelled(ctx) {
		return false, nil
	}
	s.mu.Lock()
	matched := false
	for i := range s.operationProgress {
		if s.operationProgress[i].Campaign != campaign {
			continue
		}
		merged := s.operationProgress[i]
		if patch.Progress != nil {
			merged.Progress = *patch.Progress
		}
		if patch.Delay != nil {
			merged.Delay = *patch.Delay
		}
		if merged.Progress+merged.Delay > 100 {
			s.mu.Unlock()
			return false, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("La suma de avance (%.0f%%) y retraso (%.0f%%) no puede superar el 100%%", merged.Progress, merged.Delay),
				common.StatusBadRequest,
				nil,
			)
		}
		s.operationProgress[i] = merged
		matched = true
	}
	s.mu.Unlock()
	if matched {
		s.emit(ctx, events.OpUpdate, campaign)
	}
	return matched, nil
}

// OperationProgress trả về copy của danh sách operation progress
func (s *Store) OperationProgress() []dashmodels.OperationProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.OperationProgressEntry{}, s.operationProgress...)
}

// UpsertOperationMetric merge patch vào metric theo área.
// Content và Impressions thay nguyên khối, không deep-merge.
func (s *Store) UpsertOperationMetric(ctx context.Context, area string, patch dashmodels.OperationMetricPatch) bool {
	if cancelled(ctx) {
		return false
	}
	s.mu.Lock()
	matched := false
	for i := range s.operationMetrics {
		if s.operationMetrics[i].Area != area {
			continue
		}
		if patch.Progress != nil {
			s.operationMetrics[i].Progress = *patch.Progress
		}
		if patch.Content != nil {
			s.operationMetrics[i].Content = *patch.Content
		}
		if patch.Impressions != nil {
			s.operationMetrics[i].Impressions = *patch.Impressions
		}
		matched = true
	}
	s.mu.Unlock()
	if matched {
		s.emit(ctx, events.OpUpdate, area)
	}
	return matched
}

// OperationMetrics trả về copy của danh sách operation metrics
func (s *Store) OperationMetrics() []dashmodels.OperationMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.OperationMetric{}, s.operationMetrics...)
}

// ==========================
// TACTICAL TRACKING
// ==========================

// AddTacticalPoint thêm (hoặc cập nhật theo key composite candidate+date) một
// điểm tracking. Trend được suy ra từ điểm gần nhất trước đó của cùng candidate.
func (s *Store) AddTacticalPoint(ctx context.Context, date, candidate string, percentage float64) (dashmodels.TacticalDataPoint, bool) {
	if cancelled(ctx) {
		return dashmodels.TacticalDataPoint{}, false
	}
	s.mu.Lock()
	trend := dashmetrics.InferTrend(s.tacticalData, candidate, date, percentage)
	point := dashmodels.TacticalDataPoint{
		Date:       date,
		Candidate:  candidate,
		Percentage: percentage,
		Trend:      trend,
	}

	replaced := false
	for i := range s.tacticalData {
		if s.tacticalData[i].Candidate == candidate && s.tacticalData[i].Date == date {
			s.tacticalData[i] = point
			replaced = true
			break
		}
	}
	if !replaced {
		s.tacticalData = append(s.tacticalData, point)
	}
	s.mu.Unlock()

	s.emit(ctx, events.OpUpsert, point)
	return point, true
}

// TacticalData trả về copy của danh sách điểm tracking
func (s *Store) TacticalData() []dashmodels.TacticalDataPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.TacticalDataPoint{}, s.tacticalData...)
}

// ==========================
// AVISOS
// ==========================

// SetAvisos thay nguyên danh sách avisos (load từ server)
func (s *Store) SetAvisos(ctx context.Context, avisos []dashmodels.Aviso) {
	if cancelled(ctx) {
		return
	}
	s.mu.Lock()
	s.avisosCochabamba = append([]dashmodels.Aviso{}, avisos...)
	s.mu.Unlock()
	s.emit(ctx, events.OpUpdate, "avisos")
}

// AddAviso tạo aviso mới với id từ generator được inject và timestamp hiện tại
func (s *Store) AddAviso(ctx context.Context, titulo, contenido string) (dashmodels.Aviso, bool) {
	if cancelled(ctx) {
		return dashmodels.Aviso{}, false
	}
	aviso := dashmodels.Aviso{
		ID:        s.idGen(),
		Titulo:    titulo,
		Contenido: contenido,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.avisosCochabamba = append(s.avisosCochabamba, aviso)
	s.mu.Unlock()
	s.emit(ctx, events.OpInsert, aviso)
	return aviso, true
}

// RemoveAviso xóa aviso theo id, trả về false nếu không tìm thấy
func (s *Store) RemoveAviso(ctx context.Context, id string) bool {
	if cancelled(ctx) {
		return false
	}
	s.mu.Lock()
	removed := false
	for i := range s.avisosCochabamba {
		if s.avisosCochabamba[i].ID == id {
			s.avisosCochabamba = append(s.avisosCochabamba[:i], s.avisosCochabamba[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.emit(ctx, events.OpDelete, id)
	}
	return removed
}

// Avisos trả về copy của danh sách avisos
func (s *Store) Avisos() []dashmodels.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dashmodels.Aviso{}, s.avisosCochabamba...)
}
