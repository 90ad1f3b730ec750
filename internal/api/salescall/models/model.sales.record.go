// Package models - model bản ghi cuộc gọi/bán hàng thuộc domain salescall.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel labels thay thế cho field thiếu, mỗi field một label riêng.
// Thay field thiếu bằng sentinel (không drop bản ghi) để tổng các bucket
// luôn bằng số bản ghi được lọc.
const (
	SentinelChannel      = "Belirtilmemiş"       // Kênh chưa chọn
	SentinelCallStatus   = "Doldurulmamış"       // Trạng thái cuộc gọi chưa nhập
	SentinelCallDetail   = "Sonuç Girilmemiş"    // Kết quả cuộc gọi chưa nhập
	SentinelSubscription = "Tamamlanmamış"       // Trạng thái thuê bao chưa hoàn tất
)

// SalesCallDocument là document lưu trong collection sales_records.
// Document cũ có thể thiếu field hoặc dùng field thay thế (callDate thay createdAt),
// vì vậy mọi field nghiệp vụ đều omitempty; shape chuẩn hóa nằm ở SalesRecord.
type SalesCallDocument struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RefID              string             `json:"refId,omitempty" bson:"refId,omitempty" index:"unique,sparse"`
	CreatorID          string             `json:"creatorId,omitempty" bson:"creatorId,omitempty" index:"single:1"`
	PersonnelName      string             `json:"personnelName,omitempty" bson:"personnelName,omitempty"`
	CallDate           string             `json:"callDate,omitempty" bson:"callDate,omitempty"` // Ngày nhập tay, nhiều định dạng
	Channel            string             `json:"channel,omitempty" bson:"channel,omitempty"`
	CallStatus         string             `json:"callStatus,omitempty" bson:"callStatus,omitempty"`
	CallDetail         string             `json:"callDetail,omitempty" bson:"callDetail,omitempty"`
	SubscriptionStatus string             `json:"subscriptionStatus,omitempty" bson:"subscriptionStatus,omitempty"`
	SubscriberNumber   string             `json:"subscriberNumber,omitempty" bson:"subscriberNumber,omitempty"`
	CreatedAt          int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt          int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// SalesRecord là shape chuẩn hóa của một bản ghi cuộc gọi, dùng cho mọi phép
// tính thống kê. Sau chuẩn hóa, mọi field dùng để group đều non-empty
// (sentinel thay cho dữ liệu thiếu).
type SalesRecord struct {
	RefID         string // Định danh bản ghi (opaque)
	CreatorID     string // Định danh người tạo bản ghi
	PersonnelName string // Tên hiển thị, có thể rỗng

	// Timestamp đã resolve qua chuỗi fallback (createdAt -> callDate).
	// HasTimestamp = false nghĩa là không resolve được: bản ghi bị loại khỏi
	// mọi filter theo khoảng thời gian nhưng vẫn tính trong thống kê toàn cục.
	Timestamp    time.Time
	HasTimestamp bool
	RawDate      string // Giá trị thô nhất còn lại, chỉ dùng để hiển thị

	Channel            string
	CallStatus         string
	CallDetail         string
	SubscriptionStatus string
	SubscriberNumber   string // Rỗng nếu không có
}
