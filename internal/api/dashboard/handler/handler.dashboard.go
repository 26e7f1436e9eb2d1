// Package dashhdl - Handler các route trạng thái dashboard: đọc state, các
// mutation theo key và các chỉ số dẫn xuất.
package dashhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "aletheia/internal/api/base/handler"
	dashdto "aletheia/internal/api/dashboard/dto"
	dashmetrics "aletheia/internal/api/dashboard/metrics"
	dashmodels "aletheia/internal/api/dashboard/models"
	dashstore "aletheia/internal/api/dashboard/store"
	"aletheia/internal/logger"
)

// DashboardHandler xử lý API trạng thái dashboard
type DashboardHandler struct {
	*basehdl.BaseHandler[dashstore.DashboardState, dashdto.TacticalPointInput, dashdto.TacticalPointInput]
	Store *dashstore.Store
}

// NewDashboardHandler tạo DashboardHandler với store được inject
func NewDashboardHandler(store *dashstore.Store) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: basehdl.NewBaseHandler[dashstore.DashboardState, dashdto.TacticalPointInput, dashdto.TacticalPointInput](nil),
		Store:       store,
	}
}

// HandleGetState trả về bản chụp đầy đủ trạng thái dashboard.
// Chặn đọc khi store chưa hydrate để client không nhận collection default.
func (h *DashboardHandler) HandleGetState(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.Store.RequireHydrated(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, h.Store.Snapshot(), nil)
		return nil
	})
}

// HandleSetCurrentUser ghi user hiện tại của phiên dashboard
func (h *DashboardHandler) HandleSetCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dashdto.CurrentUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user := dashmodels.User{Username: input.Username, Role: input.Role}
		h.Store.SetCurrentUser(c.Context(), user)
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandlePatchProfile merge nông patch vào profile
func (h *DashboardHandler) HandlePatchProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var patch dashmodels.ProfilePatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.PatchProfile(c.Context(), patch)
		h.HandleResponse(c, h.Store.Profile(), nil)
		return nil
	})
}

// HandlePatchFinance merge nông patch vào trạng thái ngân sách
func (h *DashboardHandler) HandlePatchFinance(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var patch dashmodels.FinancePatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.PatchFinance(c.Context(), patch)
		h.HandleResponse(c, h.Store.Finance(), nil)
		return nil
	})
}

// HandlePatchSocialListening merge patch vào social listening.
// Danh sách testigos (nếu gửi lên) thay nguyên khối.
func (h *DashboardHandler) HandlePatchSocialListening(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var patch dashmodels.SocialListeningPatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.PatchSocialListening(c.Context(), patch)
		h.HandleResponse(c, h.Store.SocialListening(), nil)
		return nil
	})
}

// HandleUpsertTimeline merge patch vào tuần timeline theo key.
// Key không tồn tại là no-op im lặng: vẫn trả về success, matched=false.
func (h *DashboardHandler) HandleUpsertTimeline(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params dashdto.WeekParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var patch dashmodels.TimelinePatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched := h.Store.UpsertTimeline(c.Context(), params.Week, patch)
		if !matched {
			logger.GetAppLogger().WithField("week", params.Week).Debug("timeline upsert skipped, unknown week key")
		}
		h.HandleResponse(c, fiber.Map{"week": params.Week, "matched": matched}, nil)
		return nil
	})
}

// HandleUpsertCampaignProgress merge patch vào tiến độ campaña theo key
func (h *DashboardHandler) HandleUpsertCampaignProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params dashdto.CampaignParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var patch dashmodels.CampaignProgressPatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched := h.Store.UpsertCampaignProgress(c.Context(), params.Campaign, patch)
		h.HandleResponse(c, fiber.Map{"campaign": params.Campaign, "matched": matched}, nil)
		return nil
	})
}

// HandleSetIndicators thay nguyên danh sách chỉ số
func (h *DashboardHandler) HandleSetIndicators(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var indicators []dashmodels.Indicator
		if err := h.ParseRequestBody(c, &indicators); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.Store.SetIndicators(c.Context(), indicators)
		h.HandleResponse(c, h.Store.Indicators(), nil)
		return nil
	})
}

// HandleUpsertIndicator merge patch vào chỉ số theo type
func (h *DashboardHandler) HandleUpsertIndicator(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params dashdto.IndicatorParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var patch dashmodels.IndicatorPatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched := h.Store.UpsertIndicator(c.Context(), params.Type, patch)
		h.HandleResponse(c, fiber.Map{"type": params.Type, "matched": matched}, nil)
		return nil
	})
}

// HandleUpsertOperationProgress merge patch vào dòng operación theo campaña id.
// Vi phạm ràng buộc progress + delay <= 100 trả về lỗi validation.
func (h *DashboardHandler) HandleUpsertOperationProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params dashdto.OperationParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var patch dashmodels.OperationProgressPatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched, err := h.Store.UpsertOperationProgress(c.Context(), params.Campaign, patch)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"campaign": params.Campaign, "matched": matched}, nil)
		return nil
	})
}

// HandleUpsertOperationMetric merge patch vào metric theo área.
// Content và Impressions gửi nguyên khối cặp current/target.
func (h *DashboardHandler) HandleUpsertOperationMetric(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params dashdto.AreaParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var patch dashmodels.OperationMetricPatch
		if err := h.ParseRequestBody(c, &patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&patch); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		matched := h.Store.UpsertOperationMetric(c.Context(), params.Area, patch)
		h.HandleResponse(c, fiber.Map{"area": params.Area, "matched": matched}, nil)
		return nil
	})
}

// HandleAddTacticalPoint thêm điểm tactical tracking, trend suy ra phía server
func (h *DashboardHandler) HandleAddTacticalPoint(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dashdto.TacticalPointInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		point, _ := h.Store.AddTacticalPoint(c.Context(), input.Date, input.Candidate, input.Percentage)
		h.HandleResponse(c, point, nil)
		return nil
	})
}

// HandleAddAviso tạo aviso mới trong store
func (h *DashboardHandler) HandleAddAviso(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dashdto.AvisoCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		aviso, _ := h.Store.AddAviso(c.Context(), input.Titulo, input.Contenido)
		logger.LogCRUD("create", "aviso", aviso.ID, c, nil)
		h.HandleResponse(c, aviso, nil)
		return nil
	})
}

// HandleRemoveAviso xóa aviso theo id trong store
func (h *DashboardHandler) HandleRemoveAviso(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		removed := h.Store.RemoveAviso(c.Context(), id)
		h.HandleResponse(c, fiber.Map{"id": id, "removed": removed}, nil)
		return nil
	})
}

// HandleGetOperacionResumen trả về operation progress kèm phần chưa phân bổ
// (clamp về 0 và gắn cờ khi input không nhất quán)
func (h *DashboardHandler) HandleGetOperacionResumen(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.Store.RequireHydrated(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rows := h.Store.OperationProgress()
		resumen := make([]fiber.Map, 0, len(rows))
		for _, row := range rows {
			remaining, inconsistent := dashmetrics.RemainderSplit(row.Progress, row.Delay)
			resumen = append(resumen, fiber.Map{
				"campaign":     row.Campaign,
				"progress":     row.Progress,
				"delay":        row.Delay,
				"remaining":    remaining,
				"inconsistent": inconsistent,
			})
		}
		h.HandleResponse(c, resumen, nil)
		return nil
	})
}

// HandleGetMetricasResumen trả về operation metrics kèm phần trăm tiến độ
// content/impressions (target 0 trả về 0)
func (h *DashboardHandler) HandleGetMetricasResumen(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.Store.RequireHydrated(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		metricsRows := h.Store.OperationMetrics()
		resumen := make([]fiber.Map, 0, len(metricsRows))
		for _, row := range metricsRows {
			resumen = append(resumen, fiber.Map{
				"area":               row.Area,
				"progress":           row.Progress,
				"content":            row.Content,
				"impressions":        row.Impressions,
				"contentPercent":     dashmetrics.ProgressPercent(row.Content.Current, row.Content.Target),
				"impressionsPercent": dashmetrics.ProgressPercent(row.Impressions.Current, row.Impressions.Target),
			})
		}
		h.HandleResponse(c, resumen, nil)
		return nil
	})
}
