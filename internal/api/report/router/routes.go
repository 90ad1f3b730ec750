// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "github.com/Wupani/satis-crm-sub001/internal/api/report/handler"
)

// Register đăng ký các endpoint báo cáo lên v1.
func Register(v1 fiber.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}

	reports := v1.Group("/reports")
	reports.Get("/summary", reportHandler.HandleSummary)
	reports.Get("/export/csv", reportHandler.HandleExportCSV)
	return nil
}
