// Package router đăng ký các route thuộc domain staff.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/Wupani/satis-crm-sub001/internal/api/router"
	staffhdl "github.com/Wupani/satis-crm-sub001/internal/api/staff/handler"
)

// Register đăng ký CRUD staff-users lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	staffUserHandler, err := staffhdl.NewStaffUserHandler()
	if err != nil {
		return fmt.Errorf("create staff user handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/staff-users", staffUserHandler, apirouter.FullConfig)
	return nil
}
