// Package dto - DTO cho domain staff.
package dto

// StaffUserCreateInput dữ liệu tạo mới nhân sự.
// Role ghi mới luôn ở dạng chuẩn; các cách viết cũ chỉ được chấp nhận khi đọc
// (chuẩn hóa qua models.ParseStaffRole).
type StaffUserCreateInput struct {
	Name         string `json:"name" validate:"required" bson:"name"`
	Email        string `json:"email,omitempty" validate:"omitempty,email" bson:"email,omitempty"`
	Role         string `json:"role" validate:"required,oneof=admin teamLeader personnel" bson:"role"`
	TeamLeaderID string `json:"teamLeaderId,omitempty" bson:"teamLeaderId,omitempty"`
	IsActive     bool   `json:"isActive" bson:"isActive"`
}

// StaffUserUpdateInput dữ liệu cập nhật nhân sự (partial).
type StaffUserUpdateInput struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email" bson:"email,omitempty"`
	Role         string `json:"role,omitempty" validate:"omitempty,oneof=admin teamLeader personnel" bson:"role,omitempty"`
	TeamLeaderID string `json:"teamLeaderId,omitempty" bson:"teamLeaderId,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty" bson:"isActive,omitempty"`
}
