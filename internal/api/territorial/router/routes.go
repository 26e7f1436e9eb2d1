// Package router đăng ký các route domain territorial.
package router

import (
	"github.com/gofiber/fiber/v3"

	dashstore "aletheia/internal/api/dashboard/store"
	"aletheia/internal/api/middleware"
	apirouter "aletheia/internal/api/router"
	terrhdl "aletheia/internal/api/territorial/handler"
	terrstore "aletheia/internal/api/territorial/store"
)

// Register trả về hàm đăng ký route territorial với các store được inject.
func Register(store *terrstore.Store, dashboard *dashstore.Store) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := terrhdl.NewTerritorialHandler(store, dashboard)

		authMiddleware := middleware.AuthMiddleware("")
		middlewares := []fiber.Handler{authMiddleware}

		// Ranking đăng ký trước route có param vùng
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "GET", "/ranking", middlewares, h.HandleGetRanking)

		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "GET", "/:region", middlewares, h.HandleGetRegion)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "POST", "/:region/defenders", middlewares, h.HandleAppendDefender)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "POST", "/:region/events", middlewares, h.HandleAppendEvent)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "POST", "/:region/segments", middlewares, h.HandleAppendSegment)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "PUT", "/:region/promoted-count", middlewares, h.HandleSetPromotedCount)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "PUT", "/:region/target-promoters", middlewares, h.HandleSetTargetPromoters)
		apirouter.RegisterRouteWithMiddleware(v1, "/territorial", "PUT", "/:region/election-config", middlewares, h.HandleSetElectionConfig)

		return nil
	}
}
