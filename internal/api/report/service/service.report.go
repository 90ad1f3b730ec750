// Service báo cáo: lấy snapshot dữ liệu và gọi engine tổng hợp.
package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	salescallsvc "github.com/Wupani/satis-crm-sub001/internal/api/salescall/service"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
	staffsvc "github.com/Wupani/satis-crm-sub001/internal/api/staff/service"
)

// Options cấu hình các tập nhãn thành công của engine.
// SuccessLabels dùng cho thống kê toàn cục và bảng xếp hạng cá nhân;
// TeamSuccessLabels dùng riêng cho cây team. Hai tập được giữ tách biệt vì
// dữ liệu lịch sử trong view team chứa biến thể viết hoa/thường của nhãn.
type Options struct {
	SuccessLabels     LabelSet
	TeamSuccessLabels LabelSet
}

// DefaultOptions là cấu hình nhãn mặc định trên dữ liệu tiếng Thổ.
func DefaultOptions() Options {
	return Options{
		SuccessLabels: NewLabelSet("Satış Sağlandı"),
		TeamSuccessLabels: NewLabelSet(
			"Satış Sağlandı",
			"Satış sağlandı",
		),
	}
}

// Snapshot là ảnh chụp dữ liệu tại một thời điểm, đầu vào cho engine.
type Snapshot struct {
	RawRecords []bson.M
	Users      []staffmodels.StaffUser
	FetchedAt  time.Time
}

// ReportService ghép dữ liệu từ salescall và staff để dựng báo cáo.
type ReportService struct {
	salesCalls *salescallsvc.SalesCallService
	staff      *staffsvc.StaffUserService
	opts       Options
}

// NewReportService tạo mới ReportService với nhãn mặc định.
func NewReportService() (*ReportService, error) {
	salesCalls, err := salescallsvc.NewSalesCallService()
	if err != nil {
		return nil, err
	}
	staff, err := staffsvc.NewStaffUserService()
	if err != nil {
		return nil, err
	}

	return &ReportService{
		salesCalls: salesCalls,
		staff:      staff,
		opts:       DefaultOptions(),
	}, nil
}

// FetchSnapshot lấy toàn bộ bản ghi thô và user tại thời điểm gọi.
func (s *ReportService) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	rawRecords, err := s.salesCalls.FindAllRaw(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.staff.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		RawRecords: rawRecords,
		Users:      users,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

// Summary dựng báo cáo cho một kỳ tại thời điểm now.
// now được truyền từ ngoài vào để engine là hàm thuần, test được.
func (s *ReportService) Summary(ctx context.Context, period Period, custom *CustomRange, now time.Time) (*ReportSummary, error) {
	snapshot, err := s.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	records := salescallsvc.NormalizeAll(snapshot.RawRecords)
	return BuildSummary(records, snapshot.Users, period, custom, now, s.opts)
}
