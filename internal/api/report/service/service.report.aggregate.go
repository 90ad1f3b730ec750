// Thống kê phân phối theo chiều và tỷ lệ chuyển đổi.
package reportsvc

import (
	"sort"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	"github.com/Wupani/satis-crm-sub001/internal/utility"
)

// LabelSet là tập nhãn đánh dấu bản ghi "thành công".
// Hai ngữ cảnh (toàn cục và theo team) dùng hai tập nhãn khác nhau,
// xem DefaultOptions.
type LabelSet map[string]struct{}

// NewLabelSet tạo LabelSet từ danh sách nhãn.
func NewLabelSet(labels ...string) LabelSet {
	set := make(LabelSet, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}

// Contains kiểm tra nhãn có thuộc tập, so sánh chính xác từng ký tự.
func (s LabelSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// DistributionBucket là một giá trị của chiều phân loại kèm số lượng và phần trăm.
type DistributionBucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AggregateStats là thống kê tổng của một tập bản ghi.
type AggregateStats struct {
	Total          int     `json:"total"`
	SuccessCount   int     `json:"successCount"`
	ConversionRate float64 `json:"conversionRate"`
}

// Distribution đếm phân phối theo một chiều phân loại.
// Thứ tự bucket: giảm dần theo count, bucket bằng count giữ thứ tự xuất hiện
// đầu tiên trong records (sort ổn định).
func Distribution(records []salescallmodels.SalesRecord, dimension func(salescallmodels.SalesRecord) string) []DistributionBucket {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, record := range records {
		label := dimension(record)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	buckets := make([]DistributionBucket, 0, len(order))
	total := len(records)
	for _, label := range order {
		count := counts[label]
		percentage := 0.0
		if total > 0 {
			percentage = utility.Round1(float64(count) / float64(total) * 100)
		}
		buckets = append(buckets, DistributionBucket{
			Label:      label,
			Count:      count,
			Percentage: percentage,
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}

// ComputeStats tính tổng, số thành công và tỷ lệ chuyển đổi của một tập bản ghi.
// Tập rỗng cho tỷ lệ 0, không bao giờ chia cho 0.
func ComputeStats(records []salescallmodels.SalesRecord, successLabels LabelSet) AggregateStats {
	stats := AggregateStats{Total: len(records)}
	for _, record := range records {
		if successLabels.Contains(record.CallDetail) {
			stats.SuccessCount++
		}
	}
	if stats.Total > 0 {
		stats.ConversionRate = utility.Round1(float64(stats.SuccessCount) / float64(stats.Total) * 100)
	}
	return stats
}

// FilterByWindow giữ lại các bản ghi có timestamp nằm trong window.
// Bản ghi không có timestamp bị loại khỏi mọi khung thời gian.
func FilterByWindow(records []salescallmodels.SalesRecord, window Window) []salescallmodels.SalesRecord {
	filtered := make([]salescallmodels.SalesRecord, 0, len(records))
	for _, record := range records {
		if !record.HasTimestamp {
			continue
		}
		if window.Contains(record.Timestamp) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
