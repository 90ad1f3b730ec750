// Package router đăng ký các route thuộc domain salescall.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/Wupani/satis-crm-sub001/internal/api/router"
	salescallhdl "github.com/Wupani/satis-crm-sub001/internal/api/salescall/handler"
)

// Register đăng ký CRUD sales-records lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	salesCallHandler, err := salescallhdl.NewSalesCallHandler()
	if err != nil {
		return fmt.Errorf("create sales call handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/sales-records", salesCallHandler, apirouter.FullConfig)
	return nil
}
