// Package staffhdl - handler CRUD cho domain staff.
package staffhdl

import (
	basehdl "github.com/Wupani/satis-crm-sub001/internal/api/base/handler"
	staffdto "github.com/Wupani/satis-crm-sub001/internal/api/staff/dto"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
	staffsvc "github.com/Wupani/satis-crm-sub001/internal/api/staff/service"
)

// StaffUserHandler là handler CRUD cho StaffUser
type StaffUserHandler struct {
	basehdl.BaseHandler[staffmodels.StaffUser, staffdto.StaffUserCreateInput, staffdto.StaffUserUpdateInput]
}

// NewStaffUserHandler tạo mới StaffUserHandler
func NewStaffUserHandler() (*StaffUserHandler, error) {
	service, err := staffsvc.NewStaffUserService()
	if err != nil {
		return nil, err
	}

	h := &StaffUserHandler{}
	h.BaseService = service
	return h, nil
}
