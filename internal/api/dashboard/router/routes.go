// Package router đăng ký các route domain dashboard (state, mutations, resumen).
package router

import (
	"github.com/gofiber/fiber/v3"

	dashhdl "aletheia/internal/api/dashboard/handler"
	dashstore "aletheia/internal/api/dashboard/store"
	"aletheia/internal/api/middleware"
	apirouter "aletheia/internal/api/router"
)

// Register trả về hàm đăng ký route dashboard với store được inject.
func Register(store *dashstore.Store) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := dashhdl.NewDashboardHandler(store)

		authMiddleware := middleware.AuthMiddleware("")
		middlewares := []fiber.Handler{authMiddleware}

		// Trạng thái đầy đủ
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/state", middlewares, h.HandleGetState)

		// Singleton
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PUT", "/current-user", middlewares, h.HandleSetCurrentUser)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/profile", middlewares, h.HandlePatchProfile)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/finance", middlewares, h.HandlePatchFinance)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/social-listening", middlewares, h.HandlePatchSocialListening)

		// Collection theo key
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/timeline/:week", middlewares, h.HandleUpsertTimeline)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/campana/:campaign", middlewares, h.HandleUpsertCampaignProgress)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PUT", "/indicators", middlewares, h.HandleSetIndicators)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/indicators/:type", middlewares, h.HandleUpsertIndicator)

		// Operación: resumen đăng ký trước route có param
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/operacion/resumen", middlewares, h.HandleGetOperacionResumen)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/operacion/:campaign", middlewares, h.HandleUpsertOperationProgress)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/metricas/resumen", middlewares, h.HandleGetMetricasResumen)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "PATCH", "/metricas/:area", middlewares, h.HandleUpsertOperationMetric)

		// Tactical tracking
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "POST", "/tactical", middlewares, h.HandleAddTacticalPoint)

		// Avisos trong store (bản sao client, khác resource /avisos)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "POST", "/avisos", middlewares, h.HandleAddAviso)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "DELETE", "/avisos/:id", middlewares, h.HandleRemoveAviso)

		return nil
	}
}
