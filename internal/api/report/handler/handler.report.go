// Package reporthdl - handler cho các endpoint báo cáo.
package reporthdl

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Wupani/satis-crm-sub001/internal/api/base/handler"
	reportdto "github.com/Wupani/satis-crm-sub001/internal/api/report/dto"
	reportsvc "github.com/Wupani/satis-crm-sub001/internal/api/report/service"
	"github.com/Wupani/satis-crm-sub001/internal/common"
	"github.com/Wupani/satis-crm-sub001/internal/global"
)

// ReportHandler xử lý request báo cáo tổng hợp và export.
type ReportHandler struct {
	service *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	service, err := reportsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	return &ReportHandler{service: service}, nil
}

// HandleSummary GET /reports/summary?period=...&startDate=...&endDate=...
func (h *ReportHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		period, custom, err := h.parseQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.service.Summary(c.Context(), period, custom, time.Now().UTC())
		basehdl.HandleResponse(c, summary, err)
		return nil
	})
}

// HandleExportCSV GET /reports/export/csv?period=...
// Trả về file CSV attachment thay vì envelope JSON.
func (h *ReportHandler) HandleExportCSV(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		period, custom, err := h.parseQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.service.Summary(c.Context(), period, custom, time.Now().UTC())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var buf bytes.Buffer
		if err := reportsvc.WriteSummaryCSV(&buf, summary); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		filename := fmt.Sprintf("rapor-%s-%s.csv", period, time.Now().UTC().Format("20060102"))
		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	})
}

// parseQuery đọc và validate tham số kỳ báo cáo từ query string.
func (h *ReportHandler) parseQuery(c fiber.Ctx) (reportsvc.Period, *reportsvc.CustomRange, error) {
	input := reportdto.ReportQueryInput{
		Period:    c.Query("period", string(reportsvc.PeriodThisMonth)),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if err := global.Validate.Struct(&input); err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	period, err := reportsvc.ParsePeriod(input.Period)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	if period != reportsvc.PeriodCustom {
		return period, nil, nil
	}

	if input.StartDate == "" || input.EndDate == "" {
		return "", nil, common.NewError(common.ErrCodeValidationFormat,
			"Kỳ custom yêu cầu startDate và endDate (yyyy-mm-dd)", common.StatusBadRequest, nil)
	}
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err)
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err)
	}

	return period, &reportsvc.CustomRange{StartDate: start.UTC(), EndDate: end.UTC()}, nil
}
