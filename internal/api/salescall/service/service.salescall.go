// Package salescallsvc - service quản lý bản ghi cuộc gọi/bán hàng.
package salescallsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Wupani/satis-crm-sub001/internal/api/base/service"
	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	"github.com/Wupani/satis-crm-sub001/internal/common"
	"github.com/Wupani/satis-crm-sub001/internal/global"
)

// SalesCallService là service quản lý SalesCallDocument
type SalesCallService struct {
	*basesvc.BaseServiceMongoImpl[salescallmodels.SalesCallDocument]
}

// NewSalesCallService tạo mới SalesCallService
func NewSalesCallService() (*SalesCallService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesRecords)
	if !exist {
		return nil, fmt.Errorf("failed to get sales_records collection: %w", common.ErrNotFound)
	}

	return &SalesCallService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salescallmodels.SalesCallDocument](collection),
	}, nil
}

// FindAllRaw trả về toàn bộ document thô (bson.M) của collection.
// Engine báo cáo cần shape thô để chuẩn hóa qua NormalizeAll, vì document cũ
// có thể chứa field ngoài SalesCallDocument.
func (s *SalesCallService) FindAllRaw(ctx context.Context) ([]bson.M, error) {
	cursor, err := s.Collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}
