// Package dto - DTO cho domain salescall.
package dto

// SalesCallCreateInput dữ liệu tạo mới bản ghi cuộc gọi.
// CallDate là ngày nhập tay (yyyy-mm-dd); timestamp hệ thống do service gán.
type SalesCallCreateInput struct {
	RefID              string `json:"refId,omitempty" bson:"refId,omitempty"`
	CreatorID          string `json:"creatorId" validate:"required" bson:"creatorId"`
	PersonnelName      string `json:"personnelName,omitempty" bson:"personnelName,omitempty"`
	CallDate           string `json:"callDate,omitempty" validate:"omitempty,date_ymd" bson:"callDate,omitempty"`
	Channel            string `json:"channel,omitempty" bson:"channel,omitempty"`
	CallStatus         string `json:"callStatus,omitempty" bson:"callStatus,omitempty"`
	CallDetail         string `json:"callDetail,omitempty" bson:"callDetail,omitempty"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty" bson:"subscriptionStatus,omitempty"`
	SubscriberNumber   string `json:"subscriberNumber,omitempty" bson:"subscriberNumber,omitempty"`
}

// SalesCallUpdateInput dữ liệu cập nhật bản ghi cuộc gọi (partial).
type SalesCallUpdateInput struct {
	PersonnelName      string `json:"personnelName,omitempty" bson:"personnelName,omitempty"`
	CallDate           string `json:"callDate,omitempty" validate:"omitempty,date_ymd" bson:"callDate,omitempty"`
	Channel            string `json:"channel,omitempty" bson:"channel,omitempty"`
	CallStatus         string `json:"callStatus,omitempty" bson:"callStatus,omitempty"`
	CallDetail         string `json:"callDetail,omitempty" bson:"callDetail,omitempty"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty" bson:"subscriptionStatus,omitempty"`
	SubscriberNumber   string `json:"subscriberNumber,omitempty" bson:"subscriberNumber,omitempty"`
}
