// Package staffsvc - service quản lý nhân sự.
package staffsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Wupani/satis-crm-sub001/internal/api/base/service"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
	"github.com/Wupani/satis-crm-sub001/internal/common"
	"github.com/Wupani/satis-crm-sub001/internal/global"
)

// StaffUserService là service quản lý StaffUser
type StaffUserService struct {
	*basesvc.BaseServiceMongoImpl[staffmodels.StaffUser]
}

// NewStaffUserService tạo mới StaffUserService
func NewStaffUserService() (*StaffUserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StaffUsers)
	if !exist {
		return nil, fmt.Errorf("failed to get staff_users collection: %w", common.ErrNotFound)
	}

	return &StaffUserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[staffmodels.StaffUser](collection),
	}, nil
}

// FindAll trả về toàn bộ nhân sự (snapshot cho một lần tính toán báo cáo).
func (s *StaffUserService) FindAll(ctx context.Context) ([]staffmodels.StaffUser, error) {
	users, err := s.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []staffmodels.StaffUser{}
	}
	return users, nil
}
