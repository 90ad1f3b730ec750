package reportsvc

import (
	"testing"
	"time"
)

// now cố định: thứ Tư 2025-03-19 14:00 UTC
var fixedNow = time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)

func TestResolveWindow_ThisMonth(t *testing.T) {
	window, err := ResolveWindow(PeriodThisMonth, nil, fixedNow)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 31, 23, 59, 59, 999000000, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("Start sai: muốn %v, nhận %v", wantStart, window.Start)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("End sai: muốn %v, nhận %v", wantEnd, window.End)
	}
}

func TestResolveWindow_LastMonth(t *testing.T) {
	window, err := ResolveWindow(PeriodLastMonth, nil, fixedNow)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 2, 28, 23, 59, 59, 999000000, time.UTC)
	if !window.Start.Equal(wantStart) || !window.End.Equal(wantEnd) {
		t.Errorf("Window tháng trước sai: nhận [%v, %v]", window.Start, window.End)
	}
}

func TestResolveWindow_ThisWeek_MondayStart(t *testing.T) {
	window, err := ResolveWindow(PeriodThisWeek, nil, fixedNow)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantStart := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC) // thứ Hai
	if !window.Start.Equal(wantStart) {
		t.Errorf("Tuần phải bắt đầu thứ Hai: muốn %v, nhận %v", wantStart, window.Start)
	}
	if !window.End.Equal(fixedNow) {
		t.Errorf("Tuần này kết thúc tại now: muốn %v, nhận %v", fixedNow, window.End)
	}
}

func TestResolveWindow_ThisWeek_SundayBelongsToCurrentWeek(t *testing.T) {
	// Chủ nhật 2025-03-23: vẫn thuộc tuần bắt đầu thứ Hai 17/03
	sunday := time.Date(2025, 3, 23, 9, 0, 0, 0, time.UTC)
	window, err := ResolveWindow(PeriodThisWeek, nil, sunday)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantStart := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("Chủ nhật phải thuộc tuần bắt đầu 17/03: nhận %v", window.Start)
	}
}

func TestResolveWindow_LastWeek(t *testing.T) {
	window, err := ResolveWindow(PeriodLastWeek, nil, fixedNow)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 16, 23, 59, 59, 999000000, time.UTC)
	if !window.Start.Equal(wantStart) || !window.End.Equal(wantEnd) {
		t.Errorf("Window tuần trước sai: nhận [%v, %v]", window.Start, window.End)
	}
}

func TestResolveWindow_Custom(t *testing.T) {
	custom := &CustomRange{
		StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}
	window, err := ResolveWindow(PeriodCustom, custom, fixedNow)
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	wantEnd := time.Date(2025, 1, 20, 23, 59, 59, 999000000, time.UTC)
	if !window.End.Equal(wantEnd) {
		t.Errorf("Ngày cuối kỳ custom phải bao trọn cả ngày: muốn %v, nhận %v", wantEnd, window.End)
	}
}

func TestResolveWindow_CustomErrors(t *testing.T) {
	if _, err := ResolveWindow(PeriodCustom, nil, fixedNow); err == nil {
		t.Error("Custom thiếu range phải lỗi")
	}

	inverted := &CustomRange{
		StartDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	if _, err := ResolveWindow(PeriodCustom, inverted, fixedNow); err == nil {
		t.Error("endDate trước startDate phải lỗi")
	}
}

func TestWindow_BoundaryInclusive(t *testing.T) {
	window, _ := ResolveWindow(PeriodThisMonth, nil, fixedNow)

	lastMoment := time.Date(2025, 3, 31, 23, 59, 59, 999000000, time.UTC)
	if !window.Contains(lastMoment) {
		t.Error("23:59:59.999 ngày cuối tháng phải thuộc window")
	}

	nextDay := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if window.Contains(nextDay) {
		t.Error("00:00:00 ngày đầu tháng sau không được thuộc window")
	}

	if !window.Contains(window.Start) {
		t.Error("Biên đầu phải thuộc window")
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod(""); err != nil || p != PeriodThisMonth {
		t.Errorf("Chuỗi rỗng phải mặc định thisMonth, nhận %q (err=%v)", p, err)
	}
	if _, err := ParsePeriod("quarterly"); err == nil {
		t.Error("Kỳ không hỗ trợ phải lỗi")
	}
}
