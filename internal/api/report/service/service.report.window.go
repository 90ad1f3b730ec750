// Package reportsvc - engine tổng hợp báo cáo hiệu suất theo khung thời gian.
package reportsvc

import (
	"fmt"
	"time"

	"github.com/Wupani/satis-crm-sub001/internal/common"
)

// Period là kỳ báo cáo được hỗ trợ.
type Period string

const (
	PeriodThisMonth Period = "thisMonth"
	PeriodLastMonth Period = "lastMonth"
	PeriodThisWeek  Period = "thisWeek"
	PeriodLastWeek  Period = "lastWeek"
	PeriodCustom    Period = "custom"
)

// ParsePeriod chuyển chuỗi query về Period; chuỗi rỗng mặc định thisMonth.
func ParsePeriod(value string) (Period, error) {
	switch Period(value) {
	case PeriodThisMonth, PeriodLastMonth, PeriodThisWeek, PeriodLastWeek, PeriodCustom:
		return Period(value), nil
	case "":
		return PeriodThisMonth, nil
	default:
		return "", fmt.Errorf("unknown report period %q: %w", value, common.ErrInvalidInput)
	}
}

// Window là khoảng thời gian đóng hai đầu [Start, End].
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains kiểm tra t nằm trong window, bao gồm cả hai biên.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// CustomRange là khoảng ngày người dùng tự chọn cho PeriodCustom.
type CustomRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// ResolveWindow tính Window cho một kỳ báo cáo tại thời điểm now.
// Tuần bắt đầu từ thứ Hai. Biên cuối luôn là mili giây cuối cùng của kỳ
// (đầu kỳ kế tiếp trừ 1ms) để timestamp 23:59:59.999 vẫn thuộc kỳ.
func ResolveWindow(period Period, custom *CustomRange, now time.Time) (Window, error) {
	switch period {
	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		return Window{Start: start, End: end}, nil

	case PeriodLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := firstOfThis.AddDate(0, -1, 0)
		end := firstOfThis.Add(-time.Millisecond)
		return Window{Start: start, End: end}, nil

	case PeriodThisWeek:
		monday := startOfWeek(now)
		return Window{Start: monday, End: now}, nil

	case PeriodLastWeek:
		monday := startOfWeek(now)
		start := monday.AddDate(0, 0, -7)
		end := monday.Add(-time.Millisecond)
		return Window{Start: start, End: end}, nil

	case PeriodCustom:
		if custom == nil {
			return Window{}, fmt.Errorf("custom period requires startDate and endDate: %w", common.ErrRequiredField)
		}
		if custom.EndDate.Before(custom.StartDate) {
			return Window{}, fmt.Errorf("endDate before startDate: %w", common.ErrInvalidInput)
		}
		start := truncateToDay(custom.StartDate)
		end := truncateToDay(custom.EndDate).AddDate(0, 0, 1).Add(-time.Millisecond)
		return Window{Start: start, End: end}, nil

	default:
		return Window{}, fmt.Errorf("unknown report period %q: %w", period, common.ErrInvalidInput)
	}
}

// startOfWeek trả về 00:00:00 thứ Hai của tuần chứa t.
// time.Weekday đánh Chủ nhật = 0, chuẩn hóa về 7 để tuần bắt đầu thứ Hai.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := truncateToDay(t)
	return day.AddDate(0, 0, -(weekday - 1))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
