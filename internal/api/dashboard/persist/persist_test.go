// Package persist - Test serialize/decode snapshot không cần MongoDB.
package persist

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	dashmodels "aletheia/internal/api/dashboard/models"
	dashstore "aletheia/internal/api/dashboard/store"
	terrmodels "aletheia/internal/api/territorial/models"
	terrstore "aletheia/internal/api/territorial/store"
	"aletheia/internal/common"
)

func fakeIDGen() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestAdapter() (*Adapter, *dashstore.Store, *terrstore.Store) {
	dashboard := dashstore.NewStore(fakeIDGen())
	territorial := terrstore.NewStore(fakeIDGen())
	// snapshots để nil: Encode/Decode không đụng tới MongoDB
	return &Adapter{
		dashboard:   dashboard,
		territorial: territorial,
		timeout:     time.Second,
	}, dashboard, territorial
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	adapter, dashboard, territorial := newTestAdapter()
	ctx := context.Background()

	planned := 8.0
	dashboard.UpsertTimeline(ctx, "S2", dashmodels.TimelinePatch{Planned: &planned})
	dashboard.AddTacticalPoint(ctx, "2025-02-01", "Reyes Villa", 42)
	territorial.AppendDefender(ctx, "cochabamba", terrmodels.Defender{Nombre: "Juan", Telefono: "700", Recinto: "U.E. Central"})

	data, err := adapter.Encode()
	if err != nil {
		t.Fatalf("Encode thất bại: %v", err)
	}

	state, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode thất bại: %v", err)
	}

	if state.Timeline[1].Planned != 8 {
		t.Errorf("S2 planned sau round-trip = %v, muốn 8", state.Timeline[1].Planned)
	}
	if len(state.TacticalData) != 1 || state.TacticalData[0].Candidate != "Reyes Villa" {
		t.Errorf("tacticalData sau round-trip = %+v", state.TacticalData)
	}
	region, exists := state.TerritorialData["cochabamba"]
	if !exists || len(region.Defenders) != 1 || region.Defenders[0].Nombre != "Juan" {
		t.Errorf("territorialData sau round-trip = %+v", state.TerritorialData)
	}
}

func TestEncodeDecode_AvisoCreatedAtSurvivesAsTime(t *testing.T) {
	adapter, dashboard, _ := newTestAdapter()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	dashboard.AddAviso(ctx, "Reunión", "Sede norte 18:00")

	data, err := adapter.Encode()
	if err != nil {
		t.Fatalf("Encode thất bại: %v", err)
	}
	state, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode thất bại: %v", err)
	}

	if len(state.AvisosCochabamba) != 1 {
		t.Fatalf("có %d aviso sau round-trip, muốn 1", len(state.AvisosCochabamba))
	}
	createdAt := state.AvisosCochabamba[0].CreatedAt
	if createdAt.IsZero() {
		t.Error("createdAt sau round-trip không được zero")
	}
	if createdAt.Before(before) || createdAt.After(time.Now().Add(time.Second)) {
		t.Errorf("createdAt sau round-trip = %v, ngoài khoảng hợp lý", createdAt)
	}
}

func TestDecode_CorruptDataFailsLoudly(t *testing.T) {
	_, err := Decode("{not valid json")
	if err == nil {
		t.Fatal("Decode dữ liệu hỏng phải trả về lỗi, không được im lặng")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeValidationFormat {
		t.Errorf("lỗi decode = %v, muốn *common.Error với code %v", err, common.ErrCodeValidationFormat)
	}
}

func TestDecode_WrongTypeFailsLoudly(t *testing.T) {
	// createdAt không phải timestamp hợp lệ: decode có kiểu phải fail,
	// không bao giờ sinh giá trị kiểu sai
	data := `{"avisosCochabamba":[{"id":"x","titulo":"t","contenido":"c","createdAt":"no-es-fecha"}]}`
	if _, err := Decode(data); err == nil {
		t.Error("Decode createdAt sai kiểu phải trả về lỗi")
	}
}

func TestLoadDecodedState_RestoresStores(t *testing.T) {
	adapter, dashboard, territorial := newTestAdapter()
	ctx := context.Background()
	dashboard.PatchProfile(ctx, dashmodels.ProfilePatch{Name: strPtr("Manfred Reyes Villa")})
	territorial.SetPromotedCount(ctx, "la-paz", 77)

	data, err := adapter.Encode()
	if err != nil {
		t.Fatalf("Encode thất bại: %v", err)
	}
	state, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode thất bại: %v", err)
	}

	restoredDash := dashstore.NewStore(fakeIDGen())
	restoredTerr := terrstore.NewStore(fakeIDGen())
	restoredDash.LoadState(state.DashboardState)
	restoredTerr.Load(state.TerritorialData)

	if restoredDash.Profile().Name != "Manfred Reyes Villa" {
		t.Errorf("profile.Name sau restore = %q", restoredDash.Profile().Name)
	}
	if got := restoredTerr.GetOrDefault("la-paz").PromotedCount; got != 77 {
		t.Errorf("la-paz promotedCount sau restore = %d, muốn 77", got)
	}
}

func strPtr(v string) *string { return &v }
