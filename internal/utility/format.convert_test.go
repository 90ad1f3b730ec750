package utility

import (
	"testing"
	"time"
)

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.3},
		{66.666666, 66.7},
		{0, 0},
		{100, 100},
		{49.95, 50.0},
	}
	for _, tc := range cases {
		if got := Round1(tc.in); got != tc.want {
			t.Errorf("Round1(%v): muốn %v, nhận %v", tc.in, tc.want, got)
		}
	}
}

func TestStringOr(t *testing.T) {
	if got := StringOr("", "fallback"); got != "fallback" {
		t.Errorf("Chuỗi rỗng phải trả fallback, nhận %q", got)
	}
	if got := StringOr("   ", "fallback"); got != "fallback" {
		t.Errorf("Chuỗi toàn khoảng trắng phải trả fallback, nhận %q", got)
	}
	if got := StringOr("  giá trị  ", "fallback"); got != "giá trị" {
		t.Errorf("Giá trị có thật phải được trim, nhận %q", got)
	}
}

func TestAsString(t *testing.T) {
	if got := AsString(nil); got != "" {
		t.Errorf("nil phải trả chuỗi rỗng, nhận %q", got)
	}
	if got := AsString("abc"); got != "abc" {
		t.Errorf("string giữ nguyên, nhận %q", got)
	}
	if got := AsString(int64(42)); got != "42" {
		t.Errorf("int64 phải thành chuỗi số, nhận %q", got)
	}
	if got := AsString(map[string]int{}); got != "" {
		t.Errorf("Kiểu không biểu diễn được phải trả chuỗi rỗng, nhận %q", got)
	}
}

func TestEpochToTime(t *testing.T) {
	expected := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	if got := EpochToTime(expected.Unix()); !got.Equal(expected) {
		t.Errorf("Epoch giây sai: muốn %v, nhận %v", expected, got)
	}
	if got := EpochToTime(expected.UnixMilli()); !got.Equal(expected) {
		t.Errorf("Epoch mili giây sai: muốn %v, nhận %v", expected, got)
	}
}
