// Resolver cây team: leader -> các thành viên trực thuộc.
package reportsvc

import (
	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
	"github.com/Wupani/satis-crm-sub001/internal/logger"
	"github.com/Wupani/satis-crm-sub001/internal/utility"
)

// MemberPerformance là hiệu suất của một thành viên trong khung thời gian.
type MemberPerformance struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Total          int     `json:"total"`
	SuccessCount   int     `json:"successCount"`
	ConversionRate float64 `json:"conversionRate"`
}

// TeamNode là một team: leader kèm toàn bộ thành viên (leader tính là thành viên).
// Rank và Badge do RankTeams gán, chỉ là metadata hiển thị.
type TeamNode struct {
	Rank              int                 `json:"rank,omitempty"`
	LeaderID          string              `json:"leaderId"`
	LeaderName        string              `json:"leaderName"`
	Members           []MemberPerformance `json:"members"`
	Total             int                 `json:"total"`
	SuccessCount      int                 `json:"successCount"`
	AvgConversionRate float64             `json:"avgConversionRate"`
	Badge             string              `json:"badge,omitempty"`
}

// ResolveTeams dựng danh sách team từ danh sách user và tính hiệu suất từng
// thành viên trên tập bản ghi đã lọc theo window.
// Quy tắc:
//   - Mỗi user role teamLeader đang active tạo một team; leader cũng được tính
//     là thành viên của chính team mình (leader có thể trực tiếp gọi bán).
//     Leader inactive không tạo team, personnel trỏ tới leader đó rơi vào
//     nhánh orphan.
//   - Personnel có teamLeaderId không trỏ tới leader active nào bị loại khỏi
//     cây, chỉ log cảnh báo, không làm hỏng báo cáo. Personnel chưa gán nhóm
//     (teamLeaderId rỗng) là trạng thái bình thường, không cảnh báo.
//   - Total/SuccessCount của team là tổng theo thành viên;
//     AvgConversionRate là trung bình cộng tỷ lệ của các thành viên.
func ResolveTeams(users []staffmodels.StaffUser, records []salescallmodels.SalesRecord, successLabels LabelSet) []TeamNode {
	log := logger.GetAppLogger()

	recordsByCreator := make(map[string][]salescallmodels.SalesRecord)
	for _, record := range records {
		recordsByCreator[record.CreatorID] = append(recordsByCreator[record.CreatorID], record)
	}

	leaders := make(map[string]*TeamNode)
	leaderOrder := make([]string, 0)
	for _, user := range users {
		if user.RoleEnum() != staffmodels.RoleTeamLeader || !user.IsActive {
			continue
		}
		leaderID := user.ID.Hex()
		leaders[leaderID] = &TeamNode{
			LeaderID:   leaderID,
			LeaderName: user.Name,
		}
		leaderOrder = append(leaderOrder, leaderID)
	}

	appendMember := func(team *TeamNode, user staffmodels.StaffUser) {
		memberRecords := recordsByCreator[user.ID.Hex()]
		stats := ComputeStats(memberRecords, successLabels)
		team.Members = append(team.Members, MemberPerformance{
			UserID:         user.ID.Hex(),
			Name:           user.Name,
			Role:           user.Role,
			Total:          stats.Total,
			SuccessCount:   stats.SuccessCount,
			ConversionRate: stats.ConversionRate,
		})
	}

	for _, user := range users {
		switch user.RoleEnum() {
		case staffmodels.RoleTeamLeader:
			if team, ok := leaders[user.ID.Hex()]; ok {
				appendMember(team, user)
			}
		case staffmodels.RolePersonnel:
			team, ok := leaders[user.TeamLeaderID]
			if !ok {
				// teamLeaderId rỗng là chưa gán nhóm, không phải lỗi dữ liệu
				if user.TeamLeaderID != "" {
					log.WithField("userId", user.ID.Hex()).
						WithField("teamLeaderId", user.TeamLeaderID).
						Warn("Personnel có teamLeaderId không trỏ tới leader active nào, loại khỏi cây team")
				}
				continue
			}
			appendMember(team, user)
		}
	}

	// Giữ thứ tự xuất hiện của leader trong users; xếp hạng là việc của RankTeams
	teams := make([]TeamNode, 0, len(leaderOrder))
	for _, leaderID := range leaderOrder {
		team := leaders[leaderID]

		var rateSum float64
		for _, member := range team.Members {
			team.Total += member.Total
			team.SuccessCount += member.SuccessCount
			rateSum += member.ConversionRate
		}
		if len(team.Members) > 0 {
			team.AvgConversionRate = utility.Round1(rateSum / float64(len(team.Members)))
		}
		teams = append(teams, *team)
	}
	return teams
}
