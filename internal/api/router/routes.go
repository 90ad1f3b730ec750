// Package router cung cấp tiện ích đăng ký route cho các domain.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error
}

// CRUDConfig xác định nhóm route CRUD nào được đăng ký cho một resource
type CRUDConfig struct {
	EnableCreate bool // Đăng ký POST /
	EnableRead   bool // Đăng ký GET /, GET /paginate, GET /:id
	EnableUpdate bool // Đăng ký PUT /:id
	EnableDelete bool // Đăng ký DELETE /:id
}

// Các cấu hình CRUD dùng sẵn
var (
	FullConfig     = CRUDConfig{EnableCreate: true, EnableRead: true, EnableUpdate: true, EnableDelete: true}
	ReadOnlyConfig = CRUDConfig{EnableRead: true}
)

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware đăng ký một route với danh sách middleware qua group riêng.
// Fiber v3 không gọi middleware khi truyền trực tiếp vào router.Get/Post/...;
// phải gắn middleware bằng .Use() trên group con.
func RegisterRouteWithMiddleware(parent fiber.Router, prefix, method, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	group := parent.Group(prefix)
	for _, m := range middlewares {
		group.Use(m)
	}
	switch method {
	case "GET":
		group.Get(path, handler)
	case "POST":
		group.Post(path, handler)
	case "PUT":
		group.Put(path, handler)
	case "DELETE":
		group.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD chuẩn cho một resource.
// prefix ví dụ "/sales-records"; cfg xác định nhóm route nào được bật.
func (r *Router) RegisterCRUDRoutes(parent fiber.Router, prefix string, handler CRUDHandler, cfg CRUDConfig) {
	group := parent.Group(prefix)

	if cfg.EnableCreate {
		group.Post("/", handler.InsertOne)
	}
	if cfg.EnableRead {
		group.Get("/", handler.Find)
		group.Get("/paginate", handler.FindWithPagination)
		group.Get("/:id", handler.FindOneById)
	}
	if cfg.EnableUpdate {
		group.Put("/:id", handler.UpdateById)
	}
	if cfg.EnableDelete {
		group.Delete("/:id", handler.DeleteById)
	}
}
