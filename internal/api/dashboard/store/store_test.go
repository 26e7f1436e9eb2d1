// Package store - Test seed, upsert theo key và các mutation của dashboard store.
package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	dashmodels "aletheia/internal/api/dashboard/models"
	"aletheia/internal/common"
)

func fakeIDGen() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func TestNewStore_SeedsEnumerations(t *testing.T) {
	s := NewStore(fakeIDGen())

	timeline := s.Timeline()
	if len(timeline) != dashmodels.TimelineWeeks {
		t.Fatalf("timeline có %d tuần, muốn %d", len(timeline), dashmodels.TimelineWeeks)
	}
	if timeline[0].Week != "S1" || timeline[23].Week != "S24" {
		t.Errorf("timeline seed sai key: đầu %s, cuối %s", timeline[0].Week, timeline[23].Week)
	}

	campaigns := s.CampaignProgress()
	if len(campaigns) != len(dashmodels.CampanaKeys) {
		t.Fatalf("campaignProgress có %d campaña, muốn %d", len(campaigns), len(dashmodels.CampanaKeys))
	}
	for _, c := range campaigns {
		if c.Trend != dashmodels.TrendUp {
			t.Errorf("campaña %s seed trend = %v, muốn %v", c.Campaign, c.Trend, dashmodels.TrendUp)
		}
	}

	metrics := s.OperationMetrics()
	if len(metrics) != len(dashmodels.AreaKeys) {
		t.Fatalf("operationMetrics có %d área, muốn %d", len(metrics), len(dashmodels.AreaKeys))
	}

	rows := s.OperationProgress()
	if len(rows) != dashmodels.OperationRows {
		t.Fatalf("operationProgress có %d dòng, muốn %d", len(rows), dashmodels.OperationRows)
	}
	if rows[0].Campaign != 1 || rows[11].Campaign != 12 {
		t.Errorf("operationProgress seed sai id: đầu %d, cuối %d", rows[0].Campaign, rows[11].Campaign)
	}
}

func TestUpsertTimeline_MergesPartialPatch(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	if !s.UpsertTimeline(ctx, "S3", dashmodels.TimelinePatch{Planned: f64(10), Executed: f64(4)}) {
		t.Fatal("UpsertTimeline S3 phải matched")
	}
	// Patch chỉ có Executed: Planned phải giữ nguyên
	if !s.UpsertTimeline(ctx, "S3", dashmodels.TimelinePatch{Executed: f64(7)}) {
		t.Fatal("UpsertTimeline S3 lần 2 phải matched")
	}

	for _, entry := range s.Timeline() {
		if entry.Week != "S3" {
			continue
		}
		if entry.Planned != 10 {
			t.Errorf("S3 planned = %v, muốn 10 (merge nông phải giữ field không có trong patch)", entry.Planned)
		}
		if entry.Executed != 7 {
			t.Errorf("S3 executed = %v, muốn 7", entry.Executed)
		}
	}
}

func TestUpsertTimeline_UnknownKeyIsNoOp(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	before := s.Timeline()
	if s.UpsertTimeline(ctx, "S99", dashmodels.TimelinePatch{Planned: f64(50)}) {
		t.Error("UpsertTimeline với tuần không tồn tại phải trả về false")
	}
	after := s.Timeline()
	if len(after) != len(before) {
		t.Errorf("upsert key lạ không được insert: %d tuần -> %d tuần", len(before), len(after))
	}
}

func TestUpsertCampaignProgress_UnknownKeyIsNoOp(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	if s.UpsertCampaignProgress(ctx, "inexistente", dashmodels.CampaignProgressPatch{Progress: f64(10)}) {
		t.Error("UpsertCampaignProgress với campaña không tồn tại phải trả về false")
	}
	if len(s.CampaignProgress()) != len(dashmodels.CampanaKeys) {
		t.Error("upsert key lạ không được thêm campaña mới")
	}
}

func TestUpsertOperationProgress_RejectsOverflow(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	matched, err := s.UpsertOperationProgress(ctx, 1, dashmodels.OperationProgressPatch{Progress: f64(60), Delay: f64(30)})
	if err != nil || !matched {
		t.Fatalf("upsert hợp lệ thất bại: matched=%v, err=%v", matched, err)
	}

	// Merge 80 progress với delay 30 đã có => 110 > 100, phải từ chối
	_, err = s.UpsertOperationProgress(ctx, 1, dashmodels.OperationProgressPatch{Progress: f64(80)})
	if err == nil {
		t.Fatal("progress+delay vượt 100 phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeValidationInput {
		t.Errorf("lỗi trả về = %v, muốn *common.Error với code %v", err, common.ErrCodeValidationInput)
	}

	// Giá trị cũ phải còn nguyên sau khi từ chối
	for _, row := range s.OperationProgress() {
		if row.Campaign == 1 && (row.Progress != 60 || row.Delay != 30) {
			t.Errorf("dòng 1 sau khi từ chối = (%v, %v), muốn (60, 30)", row.Progress, row.Delay)
		}
	}
}

func TestPatchSocialListening_TestigosReplacedWholesale(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	s.PatchSocialListening(ctx, dashmodels.SocialListeningPatch{
		Mentions: f64(1200),
		Testigos: &[]dashmodels.Testigo{
			{Username: "user1", Content: "a"},
			{Username: "user2", Content: "b"},
		},
	})
	s.PatchSocialListening(ctx, dashmodels.SocialListeningPatch{
		Testigos: &[]dashmodels.Testigo{
			{Username: "user3", Content: "c"},
		},
	})

	sl := s.SocialListening()
	if sl.Mentions != 1200 {
		t.Errorf("mentions = %v, muốn 1200 (patch sau không có Mentions phải giữ nguyên)", sl.Mentions)
	}
	if len(sl.Testigos) != 1 || sl.Testigos[0].Username != "user3" {
		t.Errorf("testigos = %+v, muốn thay nguyên khối thành [user3]", sl.Testigos)
	}
}

func TestAddTacticalPoint_InfersTrendAndReplacesByCompositeKey(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	p1, ok := s.AddTacticalPoint(ctx, "2025-01-01", "Reyes Villa", 30)
	if !ok || p1.Trend != dashmodels.TrendUp {
		t.Errorf("điểm đầu tiên trend = %v, muốn %v", p1.Trend, dashmodels.TrendUp)
	}

	p2, _ := s.AddTacticalPoint(ctx, "2025-02-01", "Reyes Villa", 25)
	if p2.Trend != dashmodels.TrendDown {
		t.Errorf("điểm giảm trend = %v, muốn %v", p2.Trend, dashmodels.TrendDown)
	}

	// Cùng candidate + date: thay thế chứ không thêm điểm mới
	s.AddTacticalPoint(ctx, "2025-02-01", "Reyes Villa", 35)
	points := s.TacticalData()
	if len(points) != 2 {
		t.Fatalf("có %d điểm, muốn 2 (cùng key composite phải thay thế)", len(points))
	}
}

func TestAddAviso_UsesInjectedIDGenerator(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	aviso, ok := s.AddAviso(ctx, "Reunión", "Sede norte 18:00")
	if !ok {
		t.Fatal("AddAviso thất bại")
	}
	if aviso.ID != "id-1" {
		t.Errorf("aviso.ID = %q, muốn id-1 từ generator được inject", aviso.ID)
	}
	if aviso.CreatedAt.IsZero() {
		t.Error("aviso.CreatedAt phải là timestamp thật, không được zero")
	}

	if !s.RemoveAviso(ctx, "id-1") {
		t.Error("RemoveAviso id tồn tại phải trả về true")
	}
	if s.RemoveAviso(ctx, "id-1") {
		t.Error("RemoveAviso id đã xóa phải trả về false")
	}
	if len(s.Avisos()) != 0 {
		t.Errorf("còn %d aviso sau khi xóa, muốn 0", len(s.Avisos()))
	}
}

func TestMutations_CancelledContextIsNoOp(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if s.UpsertTimeline(ctx, "S1", dashmodels.TimelinePatch{Planned: f64(5)}) {
		t.Error("UpsertTimeline với context đã hủy phải là no-op")
	}
	s.PatchProfile(ctx, dashmodels.ProfilePatch{Name: str("Nuevo")})
	if s.Profile().Name != "" {
		t.Error("PatchProfile với context đã hủy không được mutate store")
	}
	if _, ok := s.AddAviso(ctx, "t", "c"); ok {
		t.Error("AddAviso với context đã hủy phải trả về false")
	}
}

func TestRequireHydrated(t *testing.T) {
	s := NewStore(fakeIDGen())

	if err := s.RequireHydrated(); !errors.Is(err, common.ErrNotHydrated) {
		t.Errorf("store mới RequireHydrated = %v, muốn ErrNotHydrated", err)
	}

	s.MarkHydrated()
	if err := s.RequireHydrated(); err != nil {
		t.Errorf("sau MarkHydrated RequireHydrated = %v, muốn nil", err)
	}
}

func TestLoadState_NilCollectionsKeepSeeds(t *testing.T) {
	s := NewStore(fakeIDGen())

	// Snapshot cũ thiếu section: collection nil không được xóa seed
	s.LoadState(DashboardState{
		Profile: dashmodels.Profile{Name: "Manfred Reyes Villa"},
	})

	if s.Profile().Name != "Manfred Reyes Villa" {
		t.Errorf("profile.Name = %q sau LoadState", s.Profile().Name)
	}
	if len(s.Timeline()) != dashmodels.TimelineWeeks {
		t.Errorf("timeline sau LoadState có %d tuần, muốn giữ nguyên %d tuần seed", len(s.Timeline()), dashmodels.TimelineWeeks)
	}
	if len(s.OperationProgress()) != dashmodels.OperationRows {
		t.Error("operationProgress seed bị mất sau LoadState với state thiếu section")
	}
}

func TestSnapshot_ReturnsCopies(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()
	s.UpsertTimeline(ctx, "S1", dashmodels.TimelinePatch{Planned: f64(3)})

	snap := s.Snapshot()
	snap.Timeline[0].Planned = 999

	if s.Timeline()[0].Planned != 3 {
		t.Error("sửa snapshot không được ảnh hưởng store (Snapshot phải trả về copy)")
	}
}
