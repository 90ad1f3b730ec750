// Package models - model nhân sự (StaffUser) thuộc domain staff.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffRole là enum đóng cho vai trò nhân sự.
// Dữ liệu cũ lưu role dưới nhiều cách viết ("Personnel", "Team Leader", "team_leader");
// mọi so sánh vai trò phải đi qua ParseStaffRole, không so sánh chuỗi thô rải rác.
type StaffRole string

const (
	RoleAdmin      StaffRole = "admin"      // Quản trị hệ thống
	RoleTeamLeader StaffRole = "teamLeader" // Trưởng nhóm
	RolePersonnel  StaffRole = "personnel"  // Nhân viên telesale
	RoleUnknown    StaffRole = ""           // Không nhận diện được
)

// ParseStaffRole chuẩn hóa chuỗi role thô về enum StaffRole.
// Chấp nhận các biến thể viết hoa/thường và khoảng trắng/underscore từ dữ liệu cũ.
func ParseStaffRole(raw string) StaffRole {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch normalized {
	case "admin", "administrator":
		return RoleAdmin
	case "teamleader", "leader":
		return RoleTeamLeader
	case "personnel", "staff":
		return RolePersonnel
	default:
		return RoleUnknown
	}
}

// StaffUser định nghĩa mô hình nhân sự.
// TeamLeaderID trỏ đến _id (hex) của StaffUser có role teamLeader;
// rỗng nghĩa là chưa được gán nhóm (bị loại khỏi team rollup, vẫn tính trong thống kê chung).
type StaffUser struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Role         string             `json:"role" bson:"role"`
	TeamLeaderID string             `json:"teamLeaderId,omitempty" bson:"teamLeaderId,omitempty"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// RoleEnum trả về vai trò đã chuẩn hóa của user.
func (u StaffUser) RoleEnum() StaffRole {
	return ParseStaffRole(u.Role)
}
