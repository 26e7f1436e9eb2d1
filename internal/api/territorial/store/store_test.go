// Package store - Test materialize lười và default của Region Aggregate Store.
package store

import (
	"context"
	"fmt"
	"testing"

	terrmodels "aletheia/internal/api/territorial/models"
	"aletheia/internal/global"
)

func fakeIDGen() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestGetOrDefault_ReturnsTemplateWithoutMaterializing(t *testing.T) {
	s := NewStore(fakeIDGen())

	data := s.GetOrDefault("cochabamba")
	if data.TargetPromoters != terrmodels.DefaultTargetPromoters {
		t.Errorf("targetPromoters = %d, muốn %d", data.TargetPromoters, terrmodels.DefaultTargetPromoters)
	}
	if data.TargetDefenders != terrmodels.DefaultTargetDefenders {
		t.Errorf("targetDefenders = %d, muốn %d", data.TargetDefenders, terrmodels.DefaultTargetDefenders)
	}
	if data.ElectionDate != terrmodels.DefaultElectionDate {
		t.Errorf("electionDate = %q, muốn %q", data.ElectionDate, terrmodels.DefaultElectionDate)
	}
	if data.Defenders == nil || len(data.Defenders) != 0 {
		t.Errorf("defenders mặc định = %v, muốn slice rỗng", data.Defenders)
	}

	// Đọc không được materialize vùng vào store
	if len(s.Export()) != 0 {
		t.Error("GetOrDefault không được tạo vùng trong store (đọc phải không có side effect)")
	}
}

func TestAppendDefender_MaterializesAndAssignsID(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	defender, ok := s.AppendDefender(ctx, "cochabamba", terrmodels.Defender{
		Nombre:   "Juan Pérez",
		Telefono: "70000000",
		Recinto:  "U.E. Simón Bolívar",
	})
	if !ok {
		t.Fatal("AppendDefender thất bại")
	}
	if defender.ID != "id-1" {
		t.Errorf("defender.ID = %q, muốn id-1 từ generator được inject", defender.ID)
	}

	data := s.GetOrDefault("cochabamba")
	if len(data.Defenders) != 1 || data.Defenders[0].Nombre != "Juan Pérez" {
		t.Errorf("defenders sau append = %+v", data.Defenders)
	}
	// Các field khác giữ giá trị template
	if data.TargetPromoters != terrmodels.DefaultTargetPromoters {
		t.Errorf("materialize phải dùng template mặc định, targetPromoters = %d", data.TargetPromoters)
	}

	if len(s.Export()) != 1 {
		t.Errorf("store có %d vùng sau khi ghi, muốn 1", len(s.Export()))
	}
}

func TestSetPromotedCount_IndependentPerRegion(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()

	s.SetPromotedCount(ctx, "la-paz", 120)
	s.SetPromotedCount(ctx, "cochabamba", 350)

	if got := s.GetOrDefault("la-paz").PromotedCount; got != 120 {
		t.Errorf("la-paz promotedCount = %d, muốn 120", got)
	}
	if got := s.GetOrDefault("cochabamba").PromotedCount; got != 350 {
		t.Errorf("cochabamba promotedCount = %d, muốn 350", got)
	}
	if got := s.GetOrDefault("santa-cruz").PromotedCount; got != 0 {
		t.Errorf("santa-cruz chưa ghi promotedCount = %d, muốn 0", got)
	}
}

func TestStandings_CoversAllRegionsInOrder(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()
	s.SetPromotedCount(ctx, "cochabamba", 250)

	standings := s.Standings()
	if len(standings) != len(global.RegionKeys) {
		t.Fatalf("standings có %d vùng, muốn %d (đủ cả 9 vùng kể cả chưa materialize)", len(standings), len(global.RegionKeys))
	}
	for i, regionID := range global.RegionKeys {
		if standings[i].Region != regionID {
			t.Errorf("vị trí %d = %s, muốn %s (giữ thứ tự enumeration)", i, standings[i].Region, regionID)
		}
	}
	for _, st := range standings {
		if st.Region == "cochabamba" {
			if st.Current != 250 || st.Target != float64(terrmodels.DefaultTargetPromoters) {
				t.Errorf("cochabamba standing = %+v", st)
			}
		} else if st.Current != 0 {
			t.Errorf("vùng %s chưa ghi phải có current 0, được %v", st.Region, st.Current)
		}
	}
}

func TestExportLoad_RoundTrip(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx := context.Background()
	s.AppendEvent(ctx, "tarija", terrmodels.Event{Titulo: "Caravana", Fecha: "2025-04-10", Lugar: "Plaza principal"})
	s.SetElectionConfig(ctx, "tarija", "2025-05-18", 1500)

	exported := s.Export()

	restored := NewStore(fakeIDGen())
	restored.Load(exported)

	data := restored.GetOrDefault("tarija")
	if len(data.Events) != 1 || data.Events[0].Titulo != "Caravana" {
		t.Errorf("events sau round-trip = %+v", data.Events)
	}
	if data.ElectionDate != "2025-05-18" || data.TargetDefenders != 1500 {
		t.Errorf("election config sau round-trip = (%q, %d)", data.ElectionDate, data.TargetDefenders)
	}
}

func TestMutations_CancelledContextIsNoOp(t *testing.T) {
	s := NewStore(fakeIDGen())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := s.AppendDefender(ctx, "beni", terrmodels.Defender{Nombre: "x"}); ok {
		t.Error("AppendDefender với context đã hủy phải trả về false")
	}
	s.SetPromotedCount(ctx, "beni", 99)
	if len(s.Export()) != 0 {
		t.Error("mutation với context đã hủy không được materialize vùng")
	}
}
