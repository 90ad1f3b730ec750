package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Wupani/satis-crm-sub001/internal/common"
	"github.com/Wupani/satis-crm-sub001/internal/logger"
)

// EnsureIndexes tạo các index cần thiết cho các collection nghiệp vụ.
// Gọi lặp lại an toàn: CreateIndexes là idempotent với cùng định nghĩa.
func EnsureIndexes(ctx context.Context, db *mongo.Database, salesRecordsCol, staffUsersCol string) error {
	log := logger.GetAppLogger()

	// refId sparse unique: document cũ không có refId vẫn hợp lệ
	salesIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "refId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "creatorId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := db.Collection(salesRecordsCol).Indexes().CreateMany(ctx, salesIndexes); err != nil {
		return common.ConvertMongoError(err)
	}
	log.WithField("collection", salesRecordsCol).Info("Đã đảm bảo index")

	staffIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "teamLeaderId", Value: 1}},
		},
	}
	if _, err := db.Collection(staffUsersCol).Indexes().CreateMany(ctx, staffIndexes); err != nil {
		return common.ConvertMongoError(err)
	}
	log.WithField("collection", staffUsersCol).Info("Đã đảm bảo index")

	return nil
}
