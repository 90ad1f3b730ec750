// Package dto - DTO cho domain report.
package dto

// ReportQueryInput là tham số query của các endpoint báo cáo.
// StartDate/EndDate chỉ bắt buộc khi period=custom, kiểm tra ở handler.
type ReportQueryInput struct {
	Period    string `json:"period" validate:"omitempty,oneof=thisMonth lastMonth thisWeek lastWeek custom"`
	StartDate string `json:"startDate" validate:"omitempty,date_ymd"`
	EndDate   string `json:"endDate" validate:"omitempty,date_ymd"`
}
