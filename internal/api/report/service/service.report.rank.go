// Xếp hạng hiệu suất cá nhân.
package reportsvc

import (
	"sort"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
)

// Nhãn trao cho top 3 trong bảng xếp hạng.
var rankBadges = []string{"Altın", "Gümüş", "Bronz"}

// RankedPerformer là một dòng của bảng xếp hạng cá nhân.
type RankedPerformer struct {
	Rank           int     `json:"rank"`
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Total          int     `json:"total"`
	SuccessCount   int     `json:"successCount"`
	ConversionRate float64 `json:"conversionRate"`
	Badge          string  `json:"badge,omitempty"`
}

// RankPerformers xếp hạng các user theo SuccessCount giảm dần trên tập bản ghi
// đã lọc. Hai user bằng SuccessCount giữ nguyên thứ tự trong users (sort ổn
// định). Top 3 nhận badge; user không có bản ghi nào vẫn vào bảng với 0.
func RankPerformers(users []staffmodels.StaffUser, records []salescallmodels.SalesRecord, successLabels LabelSet) []RankedPerformer {
	recordsByCreator := make(map[string][]salescallmodels.SalesRecord)
	for _, record := range records {
		recordsByCreator[record.CreatorID] = append(recordsByCreator[record.CreatorID], record)
	}

	performers := make([]RankedPerformer, 0, len(users))
	for _, user := range users {
		role := user.RoleEnum()
		if role != staffmodels.RolePersonnel && role != staffmodels.RoleTeamLeader {
			continue
		}
		stats := ComputeStats(recordsByCreator[user.ID.Hex()], successLabels)
		performers = append(performers, RankedPerformer{
			UserID:         user.ID.Hex(),
			Name:           user.Name,
			Total:          stats.Total,
			SuccessCount:   stats.SuccessCount,
			ConversionRate: stats.ConversionRate,
		})
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].SuccessCount > performers[j].SuccessCount
	})

	for i := range performers {
		performers[i].Rank = i + 1
		if i < len(rankBadges) {
			performers[i].Badge = rankBadges[i]
		}
	}
	return performers
}

// RankTeams xếp hạng các team theo SuccessCount giảm dần, ổn định theo thứ tự
// đầu vào. Chỉ gán metadata (Rank, Badge), không đổi số liệu của team.
func RankTeams(teams []TeamNode) []TeamNode {
	ranked := make([]TeamNode, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SuccessCount > ranked[j].SuccessCount
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		if i < len(rankBadges) {
			ranked[i].Badge = rankBadges[i]
		}
	}
	return ranked
}
