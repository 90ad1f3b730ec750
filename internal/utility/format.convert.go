package utility

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Round1 làm tròn một số thực về 1 chữ số thập phân.
// Dùng cho tỷ lệ phần trăm trong báo cáo (0–100, 1 số lẻ).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// StringOr trả về value nếu không rỗng (sau khi trim), ngược lại trả về fallback.
// Dùng để thay thế field thiếu bằng sentinel label, tránh drop bản ghi khi group.
func StringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// AsString chuyển một giá trị bất kỳ từ document về string.
// Trả về chuỗi rỗng nếu value là nil hoặc không biểu diễn được.
func AsString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// EpochToTime chuyển một epoch (giây hoặc mili giây) về time.Time UTC.
// Giá trị >= 1e12 được hiểu là mili giây, ngược lại là giây.
func EpochToTime(epoch int64) time.Time {
	if epoch >= 1_000_000_000_000 {
		return time.UnixMilli(epoch).UTC()
	}
	return time.Unix(epoch, 0).UTC()
}
