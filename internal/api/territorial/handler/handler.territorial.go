// Package terrhdl - Handler các route dữ liệu lãnh thổ theo vùng.
package terrhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "aletheia/internal/api/base/handler"
	dashmetrics "aletheia/internal/api/dashboard/metrics"
	dashstore "aletheia/internal/api/dashboard/store"
	terrdto "aletheia/internal/api/territorial/dto"
	terrmodels "aletheia/internal/api/territorial/models"
	terrstore "aletheia/internal/api/territorial/store"
	"aletheia/internal/logger"
)

// TerritorialHandler xử lý API dữ liệu lãnh thổ.
// Dashboard store chỉ dùng để kiểm tra cờ hydrated cho các phép đọc dẫn xuất.
type TerritorialHandler struct {
	*basehdl.BaseHandler[terrmodels.RegionTerritorialData, terrdto.DefenderInput, terrdto.DefenderInput]
	Store     *terrstore.Store
	Dashboard *dashstore.Store
}

// NewTerritorialHandler tạo TerritorialHandler với các store được inject
func NewTerritorialHandler(store *terrstore.Store, dashboard *dashstore.Store) *TerritorialHandler {
	return &TerritorialHandler{
		BaseHandler: basehdl.NewBaseHandler[terrmodels.RegionTerritorialData, terrdto.DefenderInput, terrdto.DefenderInput](nil),
		Store:       store,
		Dashboard:   dashboard,
	}
}

// parseRegion parse và validate param vùng theo enum 9 departamentos
func (h *TerritorialHandler) parseRegion(c fiber.Ctx) (string, error) {
	var params terrdto.RegionParams
	if err := h.ParseRequestParams(c, &params); err != nil {
		return "", err
	}
	return params.Region, nil
}

// HandleGetRegion trả về aggregate của vùng hoặc template mặc định.
// Đọc không materialize vùng vào store.
func (h *TerritorialHandler) HandleGetRegion(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, h.Store.GetOrDefault(region), nil)
		return nil
	})
}

// HandleAppendDefender thêm defensor vào vùng
func (h *TerritorialHandler) HandleAppendDefender(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.DefenderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		defender, _ := h.Store.AppendDefender(c.Context(), region, terrmodels.Defender{
			Nombre:   input.Nombre,
			Telefono: input.Telefono,
			Recinto:  input.Recinto,
		})
		logger.LogCRUD("create", "defender", defender.ID, c, map[string]interface{}{"region": region})
		h.HandleResponse(c, defender, nil)
		return nil
	})
}

// HandleAppendEvent thêm sự kiện vận động vào vùng
func (h *TerritorialHandler) HandleAppendEvent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.EventInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		event, _ := h.Store.AppendEvent(c.Context(), region, terrmodels.Event{
			Titulo: input.Titulo,
			Fecha:  input.Fecha,
			Lugar:  input.Lugar,
		})
		logger.LogCRUD("create", "event", event.ID, c, map[string]interface{}{"region": region})
		h.HandleResponse(c, event, nil)
		return nil
	})
}

// HandleAppendSegment thêm phân khúc cử tri vào vùng
func (h *TerritorialHandler) HandleAppendSegment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.SegmentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		segment, _ := h.Store.AppendSegment(c.Context(), region, terrmodels.Segment{
			Nombre:   input.Nombre,
			Cantidad: input.Cantidad,
		})
		h.HandleResponse(c, segment, nil)
		return nil
	})
}

// HandleSetPromotedCount ghi số promotores đã vận động của vùng
func (h *TerritorialHandler) HandleSetPromotedCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.PromotedCountInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.SetPromotedCount(c.Context(), region, input.Count)
		h.HandleResponse(c, h.Store.GetOrDefault(region), nil)
		return nil
	})
}

// HandleSetTargetPromoters ghi mục tiêu promotores của vùng
func (h *TerritorialHandler) HandleSetTargetPromoters(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.TargetPromotersInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.SetTargetPromoters(c.Context(), region, input.Target)
		h.HandleResponse(c, h.Store.GetOrDefault(region), nil)
		return nil
	})
}

// HandleSetElectionConfig ghi cấu hình bầu cử của vùng
func (h *TerritorialHandler) HandleSetElectionConfig(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		region, err := h.parseRegion(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input terrdto.ElectionConfigInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.SetElectionConfig(c.Context(), region, input.ElectionDate, input.TargetDefenders)
		h.HandleResponse(c, h.Store.GetOrDefault(region), nil)
		return nil
	})
}

// HandleGetRanking trả về 9 vùng xếp hạng theo phần trăm promoción giảm dần,
// vùng bằng điểm giữ nguyên thứ tự enumeration gốc
func (h *TerritorialHandler) HandleGetRanking(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.Dashboard.RequireHydrated(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, dashmetrics.RankRegions(h.Store.Standings()), nil)
		return nil
	})
}
