package salescallsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
)

func TestNormalizeDocument_StructuredTimestamp(t *testing.T) {
	expected := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		doc  bson.M
	}{
		{"primitive.DateTime", bson.M{"createdAt": primitive.NewDateTimeFromTime(expected)}},
		{"time.Time", bson.M{"createdAt": expected}},
		{"epoch mili giây", bson.M{"createdAt": expected.UnixMilli()}},
		{"epoch giây", bson.M{"createdAt": expected.Unix()}},
		{"field timestamp thay cho createdAt", bson.M{"timestamp": expected.UnixMilli()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := NormalizeDocument(tc.doc)
			if !record.HasTimestamp {
				t.Fatal("Bản ghi phải có HasTimestamp=true khi field có cấu trúc decode được")
			}
			if !record.Timestamp.Equal(expected) {
				t.Errorf("Timestamp sai: muốn %v, nhận %v", expected, record.Timestamp)
			}
		})
	}
}

func TestNormalizeDocument_ManualDateFallback(t *testing.T) {
	cases := []struct {
		name     string
		doc      bson.M
		expected time.Time
	}{
		{"yyyy-mm-dd", bson.M{"callDate": "2025-03-15"}, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"dd.mm.yyyy", bson.M{"callDate": "15.03.2025"}, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"dd/mm/yyyy", bson.M{"callDate": "15/03/2025"}, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"field date thay cho callDate", bson.M{"date": "2025-03-15"}, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := NormalizeDocument(tc.doc)
			if !record.HasTimestamp {
				t.Fatal("Ngày nhập tay hợp lệ phải cho HasTimestamp=true")
			}
			if !record.Timestamp.Equal(tc.expected) {
				t.Errorf("Timestamp sai: muốn %v, nhận %v", tc.expected, record.Timestamp)
			}
		})
	}
}

func TestNormalizeDocument_StructuredPriorityOverManual(t *testing.T) {
	structured := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	doc := bson.M{
		"createdAt": primitive.NewDateTimeFromTime(structured),
		"callDate":  "2020-01-01",
	}

	record := NormalizeDocument(doc)
	if !record.Timestamp.Equal(structured) {
		t.Errorf("Field có cấu trúc phải thắng ngày nhập tay: muốn %v, nhận %v", structured, record.Timestamp)
	}
}

func TestNormalizeDocument_NoTimestamp(t *testing.T) {
	cases := []struct {
		name string
		doc  bson.M
	}{
		{"không có field thời gian", bson.M{"channel": "Telefon"}},
		{"callDate sai định dạng", bson.M{"callDate": "hôm qua"}},
		{"epoch âm", bson.M{"createdAt": int64(-5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := NormalizeDocument(tc.doc)
			if record.HasTimestamp {
				t.Error("Bản ghi không resolve được timestamp phải có HasTimestamp=false")
			}
		})
	}
}

func TestNormalizeDocument_RawDateKeptForDisplay(t *testing.T) {
	record := NormalizeDocument(bson.M{"callDate": "hôm qua"})
	if record.RawDate != "hôm qua" {
		t.Errorf("RawDate phải giữ giá trị thô để hiển thị, nhận %q", record.RawDate)
	}
}

func TestNormalizeDocument_Sentinels(t *testing.T) {
	record := NormalizeDocument(bson.M{"creatorId": "u1"})

	if record.Channel != salescallmodels.SentinelChannel {
		t.Errorf("Channel thiếu phải thành sentinel %q, nhận %q", salescallmodels.SentinelChannel, record.Channel)
	}
	if record.CallStatus != salescallmodels.SentinelCallStatus {
		t.Errorf("CallStatus thiếu phải thành sentinel %q, nhận %q", salescallmodels.SentinelCallStatus, record.CallStatus)
	}
	if record.CallDetail != salescallmodels.SentinelCallDetail {
		t.Errorf("CallDetail thiếu phải thành sentinel %q, nhận %q", salescallmodels.SentinelCallDetail, record.CallDetail)
	}
	if record.SubscriptionStatus != salescallmodels.SentinelSubscription {
		t.Errorf("SubscriptionStatus thiếu phải thành sentinel %q, nhận %q", salescallmodels.SentinelSubscription, record.SubscriptionStatus)
	}
}

func TestNormalizeDocument_WhitespaceOnlyBecomesSentinel(t *testing.T) {
	record := NormalizeDocument(bson.M{"channel": "   "})
	if record.Channel != salescallmodels.SentinelChannel {
		t.Errorf("Chuỗi toàn khoảng trắng phải thành sentinel, nhận %q", record.Channel)
	}
}

func TestNormalizeDocument_RefIDFallbackToObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	record := NormalizeDocument(bson.M{"_id": oid})
	if record.RefID != oid.Hex() {
		t.Errorf("RefID phải fallback về _id hex, muốn %q nhận %q", oid.Hex(), record.RefID)
	}

	record = NormalizeDocument(bson.M{"_id": oid, "refId": "SR-001"})
	if record.RefID != "SR-001" {
		t.Errorf("refId phải thắng _id, nhận %q", record.RefID)
	}
}

func TestNormalizeAll_BrokenRecordDoesNotBreakBatch(t *testing.T) {
	docs := []bson.M{
		{"refId": "SR-001", "createdAt": time.Now().UnixMilli()},
		nil,
		{"refId": "SR-002", "callDate": "không phải ngày"},
	}

	records := NormalizeAll(docs)
	if len(records) != 2 {
		t.Fatalf("Batch phải giữ 2 bản ghi hợp lệ (doc nil bị bỏ), nhận %d", len(records))
	}
	if !records[0].HasTimestamp {
		t.Error("Bản ghi đầu phải có timestamp")
	}
	if records[1].HasTimestamp {
		t.Error("Bản ghi hỏng ngày phải có HasTimestamp=false nhưng vẫn nằm trong batch")
	}
}
