// Package router - Router dùng chung: đăng ký route với middleware theo cách
// .Use() (Fiber v3 không gọi middleware khi truyền trực tiếp vào route) và
// đăng ký bộ route CRUD REST cho một resource.
package router

import (
	"github.com/gofiber/fiber/v3"

	"aletheia/internal/api/middleware"
)

// CRUDHandler định nghĩa interface các handler CRUD mà một resource cung cấp
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi resource
type CRUDConfig struct {
	InsOne   bool // POST /
	InsMany  bool // POST /batch
	Find     bool // GET /
	FindOne  bool // GET /find-one
	FindById bool // GET /:id
	FindIds  bool // POST /find-by-ids
	Paginate bool // GET /paginate
	UpdById  bool // PATCH /:id
	DelById  bool // DELETE /:id
	Count    bool // GET /count
	Upsert   bool // POST /upsert
}

// Config dùng chung cho các resource
var (
	// ReadOnlyConfig chỉ cho phép đọc
	ReadOnlyConfig = CRUDConfig{
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		Count: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdById: true, DelById: true,
		Count: true, Upsert: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() method.
// Fiber v3 bỏ qua middleware khi truyền trực tiếp router.Get(path, mw, handler),
// nên mọi route có middleware phải đi qua hàm này.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký bộ route CRUD REST cho một resource:
// GET / , POST / , GET /:id , PATCH /:id , DELETE /:id cùng các route phụ.
// Mọi route đều yêu cầu phiên đăng nhập hợp lệ.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	authMiddleware := middleware.AuthMiddleware("")
	middlewares := []fiber.Handler{authMiddleware}

	// Các route tĩnh đăng ký trước route có param để không bị /:id nuốt path
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", middlewares, h.FindOne)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/paginate", middlewares, h.FindWithPagination)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", middlewares, h.CountDocuments)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", middlewares, h.FindManyByIds)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/batch", middlewares, h.InsertMany)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert", middlewares, h.Upsert)
	}

	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/", middlewares, h.Find)
	}
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", middlewares, h.InsertOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", middlewares, h.FindOneById)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PATCH", "/:id", middlewares, h.UpdateById)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", middlewares, h.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
