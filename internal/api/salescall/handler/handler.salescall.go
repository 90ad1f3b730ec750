// Package salescallhdl - handler CRUD cho domain salescall.
package salescallhdl

import (
	basehdl "github.com/Wupani/satis-crm-sub001/internal/api/base/handler"
	salescalldto "github.com/Wupani/satis-crm-sub001/internal/api/salescall/dto"
	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	salescallsvc "github.com/Wupani/satis-crm-sub001/internal/api/salescall/service"
)

// SalesCallHandler là handler CRUD cho SalesCallDocument
type SalesCallHandler struct {
	basehdl.BaseHandler[salescallmodels.SalesCallDocument, salescalldto.SalesCallCreateInput, salescalldto.SalesCallUpdateInput]
}

// NewSalesCallHandler tạo mới SalesCallHandler
func NewSalesCallHandler() (*SalesCallHandler, error) {
	service, err := salescallsvc.NewSalesCallService()
	if err != nil {
		return nil, err
	}

	h := &SalesCallHandler{}
	h.BaseService = service
	return h, nil
}
