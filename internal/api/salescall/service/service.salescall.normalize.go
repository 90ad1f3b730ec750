// Package salescallsvc - chuẩn hóa document thô về SalesRecord.
// Document trong collection sales_records không có shape cố định: field
// timestamp có thể là createdAt (epoch/Date) hoặc callDate (chuỗi nhập tay),
// các field phân loại có thể thiếu. Mọi truy cập field đi qua bước chuẩn hóa
// này, không đọc field ad-hoc ở nơi tiêu thụ.
package salescallsvc

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	"github.com/Wupani/satis-crm-sub001/internal/logger"
	"github.com/Wupani/satis-crm-sub001/internal/utility"
)

// Các key timestamp theo thứ tự ưu tiên: field có cấu trúc trước, chuỗi nhập tay sau.
var (
	structuredTimeKeys = []string{"createdAt", "timestamp"}
	manualDateKeys     = []string{"callDate", "date"}
)

// Các định dạng được chấp nhận cho ngày nhập tay.
var manualDateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	time.RFC3339,
}

// NormalizeDocument chuyển một document thô về SalesRecord.
// Transform thuần, không side effect; document hỏng một phần vẫn cho ra
// bản ghi hợp lệ với sentinel, chỉ thiếu timestamp mới bị đánh dấu
// HasTimestamp=false.
func NormalizeDocument(doc bson.M) salescallmodels.SalesRecord {
	record := salescallmodels.SalesRecord{
		RefID:              resolveRefID(doc),
		CreatorID:          utility.AsString(doc["creatorId"]),
		PersonnelName:      utility.AsString(doc["personnelName"]),
		Channel:            utility.StringOr(utility.AsString(doc["channel"]), salescallmodels.SentinelChannel),
		CallStatus:         utility.StringOr(utility.AsString(doc["callStatus"]), salescallmodels.SentinelCallStatus),
		CallDetail:         utility.StringOr(utility.AsString(doc["callDetail"]), salescallmodels.SentinelCallDetail),
		SubscriptionStatus: utility.StringOr(utility.AsString(doc["subscriptionStatus"]), salescallmodels.SentinelSubscription),
		SubscriberNumber:   utility.AsString(doc["subscriberNumber"]),
	}

	ts, rawDate, ok := resolveTimestamp(doc)
	record.Timestamp = ts
	record.HasTimestamp = ok
	record.RawDate = rawDate
	return record
}

// NormalizeAll chuẩn hóa một batch document.
// Lỗi từng bản ghi (timestamp không resolve được) chỉ log, không bao giờ
// làm hỏng cả batch.
func NormalizeAll(docs []bson.M) []salescallmodels.SalesRecord {
	records := make([]salescallmodels.SalesRecord, 0, len(docs))
	log := logger.GetAppLogger()

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		record := NormalizeDocument(doc)
		if !record.HasTimestamp {
			log.WithField("refId", record.RefID).
				Debug("Bản ghi không resolve được timestamp, loại khỏi filter theo thời gian")
		}
		records = append(records, record)
	}
	return records
}

// resolveRefID lấy refId; fallback sang _id hex nếu document cũ không có refId.
func resolveRefID(doc bson.M) string {
	if refID := utility.AsString(doc["refId"]); refID != "" {
		return refID
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return utility.AsString(doc["_id"])
}

// resolveTimestamp resolve timestamp theo chuỗi fallback:
// (a) field có cấu trúc (Date/epoch) nếu decode được;
// (b) chuỗi ngày nhập tay, parse theo manualDateFormats;
// nếu cả hai thất bại trả về ok=false kèm giá trị thô nhất để hiển thị.
func resolveTimestamp(doc bson.M) (ts time.Time, rawDate string, ok bool) {
	for _, key := range structuredTimeKeys {
		value, exists := doc[key]
		if !exists || value == nil {
			continue
		}
		if t, decoded := decodeStructuredTime(value); decoded {
			return t, "", true
		}
		// Field có cấu trúc nhưng không decode được: giữ lại để hiển thị
		if rawDate == "" {
			rawDate = utility.AsString(value)
		}
	}

	for _, key := range manualDateKeys {
		value := utility.AsString(doc[key])
		if value == "" {
			continue
		}
		for _, format := range manualDateFormats {
			if t, err := time.Parse(format, value); err == nil {
				return t.UTC(), "", true
			}
		}
		if rawDate == "" {
			rawDate = value
		}
	}

	return time.Time{}, rawDate, false
}

// decodeStructuredTime decode các kiểu timestamp có cấu trúc mà driver có thể trả về.
func decodeStructuredTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC(), true
	case time.Time:
		return v.UTC(), true
	case int64:
		if v <= 0 {
			return time.Time{}, false
		}
		return utility.EpochToTime(v), true
	case int32:
		if v <= 0 {
			return time.Time{}, false
		}
		return utility.EpochToTime(int64(v)), true
	case float64:
		if v <= 0 {
			return time.Time{}, false
		}
		return utility.EpochToTime(int64(v)), true
	default:
		return time.Time{}, false
	}
}
