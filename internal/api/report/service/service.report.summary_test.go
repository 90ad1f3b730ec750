package reportsvc

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
)

func makeSummaryFixture() ([]salescallmodels.SalesRecord, []staffmodels.StaffUser) {
	inWindow := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

	leader := staffmodels.StaffUser{ID: primitive.NewObjectID(), Name: "Ayşe", Role: "teamLeader", IsActive: true}
	member := staffmodels.StaffUser{ID: primitive.NewObjectID(), Name: "Mehmet", Role: "personnel", TeamLeaderID: leader.ID.Hex(), IsActive: true}

	records := []salescallmodels.SalesRecord{
		makeRecord(member.ID.Hex(), "Telefon", "Satış Sağlandı", inWindow),
		makeRecord(member.ID.Hex(), "Telefon", "Reddedildi", inWindow),
		makeRecord(leader.ID.Hex(), "WhatsApp", "Reddedildi", inWindow),
		makeRecord(member.ID.Hex(), "Telefon", "Satış Sağlandı", outOfWindow),
		// Bản ghi không có timestamp: ngoài window nhưng vẫn tính all-time
		{CreatorID: member.ID.Hex(), Channel: "Telefon", CallDetail: "Satış Sağlandı",
			CallStatus: "Ulaşıldı", SubscriptionStatus: "Tamamlandı", HasTimestamp: false},
	}
	return records, []staffmodels.StaffUser{leader, member}
}

func TestBuildSummary_WindowVsAllTime(t *testing.T) {
	records, users := makeSummaryFixture()
	now := time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)

	summary, err := BuildSummary(records, users, PeriodThisMonth, nil, now, DefaultOptions())
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	if summary.Totals.Total != 3 {
		t.Errorf("Totals trong window sai: muốn 3, nhận %d", summary.Totals.Total)
	}
	if summary.AllTimeTotals.Total != 5 {
		t.Errorf("AllTimeTotals phải tính cả bản ghi ngoài window và không timestamp: muốn 5, nhận %d", summary.AllTimeTotals.Total)
	}
	if summary.FilteredCount != 3 {
		t.Errorf("FilteredCount sai: muốn 3, nhận %d", summary.FilteredCount)
	}
	if summary.UnplaceableCount != 1 {
		t.Errorf("UnplaceableCount sai: muốn 1, nhận %d", summary.UnplaceableCount)
	}
}

func TestBuildSummary_AllDimensionsPresent(t *testing.T) {
	records, users := makeSummaryFixture()
	now := time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)

	summary, err := BuildSummary(records, users, PeriodThisMonth, nil, now, DefaultOptions())
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	if len(summary.ByChannel) == 0 {
		t.Error("ByChannel không được rỗng")
	}
	if len(summary.ByCallStatus) == 0 {
		t.Error("ByCallStatus không được rỗng")
	}
	if len(summary.ByCallDetail) == 0 {
		t.Error("ByCallDetail không được rỗng")
	}
	if len(summary.BySubscription) == 0 {
		t.Error("BySubscription không được rỗng")
	}
	if len(summary.Personnel) != 2 {
		t.Errorf("Personnel phải có 2 người, nhận %d", len(summary.Personnel))
	}
	if len(summary.Teams) != 1 {
		t.Errorf("Teams phải có 1 team, nhận %d", len(summary.Teams))
	}
}

func TestBuildSummary_Deterministic(t *testing.T) {
	records, users := makeSummaryFixture()
	now := time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)

	first, err := BuildSummary(records, users, PeriodThisMonth, nil, now, DefaultOptions())
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}
	second, err := BuildSummary(records, users, PeriodThisMonth, nil, now, DefaultOptions())
	if err != nil {
		t.Fatalf("Không được lỗi: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Cùng đầu vào phải cho cùng báo cáo (engine thuần)")
	}
}

func TestBuildSummary_EmptyInput(t *testing.T) {
	now := time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)
	summary, err := BuildSummary(nil, nil, PeriodThisMonth, nil, now, DefaultOptions())
	if err != nil {
		t.Fatalf("Tập rỗng không được lỗi: %v", err)
	}
	if summary.Totals.Total != 0 || summary.Totals.ConversionRate != 0 {
		t.Errorf("Báo cáo rỗng phải toàn 0: %+v", summary.Totals)
	}
}

func TestBuildSummary_InvalidPeriod(t *testing.T) {
	now := time.Date(2025, 3, 19, 14, 0, 0, 0, time.UTC)
	if _, err := BuildSummary(nil, nil, Period("quarterly"), nil, now, DefaultOptions()); err == nil {
		t.Error("Kỳ không hỗ trợ phải lỗi")
	}
}

func TestDefaultOptions_TeamLabelsAreSuperset(t *testing.T) {
	opts := DefaultOptions()
	for label := range opts.SuccessLabels {
		if !opts.TeamSuccessLabels.Contains(label) {
			t.Errorf("Nhãn toàn cục %q phải nằm trong tập nhãn team", label)
		}
	}
	// Tập team chứa thêm biến thể viết thường của dữ liệu cũ
	if !opts.TeamSuccessLabels.Contains("Satış sağlandı") {
		t.Error("Tập nhãn team phải chứa biến thể viết thường của dữ liệu cũ")
	}
}
