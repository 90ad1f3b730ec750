// Builder tổng hợp báo cáo: hàm thuần của (snapshot, kỳ, now).
package reportsvc

import (
	"time"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
)

// ReportSummary là báo cáo đầy đủ cho một kỳ.
type ReportSummary struct {
	Period Period `json:"period"`
	Window Window `json:"window"`

	// Totals tính trên tập bản ghi đã lọc theo window.
	Totals AggregateStats `json:"totals"`
	// AllTimeTotals tính trên toàn bộ bản ghi, kể cả bản ghi không có timestamp.
	AllTimeTotals AggregateStats `json:"allTimeTotals"`

	ByChannel      []DistributionBucket `json:"byChannel"`
	ByCallStatus   []DistributionBucket `json:"byCallStatus"`
	ByCallDetail   []DistributionBucket `json:"byCallDetail"`
	BySubscription []DistributionBucket `json:"bySubscription"`

	Personnel []RankedPerformer `json:"personnel"`
	Teams     []TeamNode        `json:"teams"`

	// FilteredCount là số bản ghi thuộc window; UnplaceableCount là số bản ghi
	// không có timestamp nên không xếp được vào window nào.
	FilteredCount    int       `json:"filteredCount"`
	UnplaceableCount int       `json:"unplaceableCount"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// BuildSummary dựng báo cáo cho một kỳ. Hàm thuần: cùng đầu vào (records,
// users, period, custom, now, opts) luôn cho cùng đầu ra.
func BuildSummary(records []salescallmodels.SalesRecord, users []staffmodels.StaffUser, period Period, custom *CustomRange, now time.Time, opts Options) (*ReportSummary, error) {
	window, err := ResolveWindow(period, custom, now)
	if err != nil {
		return nil, err
	}

	filtered := FilterByWindow(records, window)

	unplaceable := 0
	for _, record := range records {
		if !record.HasTimestamp {
			unplaceable++
		}
	}

	summary := &ReportSummary{
		Period:        period,
		Window:        window,
		Totals:        ComputeStats(filtered, opts.SuccessLabels),
		AllTimeTotals: ComputeStats(records, opts.SuccessLabels),

		ByChannel: Distribution(filtered, func(r salescallmodels.SalesRecord) string {
			return r.Channel
		}),
		ByCallStatus: Distribution(filtered, func(r salescallmodels.SalesRecord) string {
			return r.CallStatus
		}),
		ByCallDetail: Distribution(filtered, func(r salescallmodels.SalesRecord) string {
			return r.CallDetail
		}),
		BySubscription: Distribution(filtered, func(r salescallmodels.SalesRecord) string {
			return r.SubscriptionStatus
		}),

		Personnel: RankPerformers(users, filtered, opts.SuccessLabels),
		Teams:     RankTeams(ResolveTeams(users, filtered, opts.TeamSuccessLabels)),

		FilteredCount:    len(filtered),
		UnplaceableCount: unplaceable,
		GeneratedAt:      now,
	}
	return summary, nil
}
