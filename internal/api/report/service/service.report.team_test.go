package reportsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	salescallmodels "github.com/Wupani/satis-crm-sub001/internal/api/salescall/models"
	staffmodels "github.com/Wupani/satis-crm-sub001/internal/api/staff/models"
)

var (
	leaderOID  = primitive.NewObjectID()
	member1OID = primitive.NewObjectID()
	member2OID = primitive.NewObjectID()
	orphanOID  = primitive.NewObjectID()
)

func makeTeamUsers() []staffmodels.StaffUser {
	return []staffmodels.StaffUser{
		{ID: leaderOID, Name: "Ayşe", Role: "teamLeader", IsActive: true},
		{ID: member1OID, Name: "Mehmet", Role: "personnel", TeamLeaderID: leaderOID.Hex(), IsActive: true},
		{ID: member2OID, Name: "Zeynep", Role: "personnel", TeamLeaderID: leaderOID.Hex(), IsActive: true},
		{ID: orphanOID, Name: "Orphan", Role: "personnel", TeamLeaderID: "không tồn tại", IsActive: true},
	}
}

func makeTeamRecords(ts time.Time) []salescallmodels.SalesRecord {
	records := []salescallmodels.SalesRecord{}
	// Leader: 2 bản ghi, 1 thành công (50%)
	records = append(records,
		makeRecord(leaderOID.Hex(), "Telefon", "Satış Sağlandı", ts),
		makeRecord(leaderOID.Hex(), "Telefon", "Reddedildi", ts),
	)
	// Member1: 4 bản ghi, 1 thành công (25%)
	records = append(records,
		makeRecord(member1OID.Hex(), "Telefon", "Satış Sağlandı", ts),
		makeRecord(member1OID.Hex(), "Telefon", "Reddedildi", ts),
		makeRecord(member1OID.Hex(), "Telefon", "Reddedildi", ts),
		makeRecord(member1OID.Hex(), "Telefon", "Reddedildi", ts),
	)
	// Member2: không có bản ghi
	return records
}

func TestResolveTeams_LeaderIsMember(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	teams := ResolveTeams(makeTeamUsers(), makeTeamRecords(ts), NewLabelSet("Satış Sağlandı"))

	if len(teams) != 1 {
		t.Fatalf("Phải có 1 team, nhận %d", len(teams))
	}
	team := teams[0]

	if len(team.Members) != 3 {
		t.Fatalf("Team phải có 3 thành viên (leader + 2 personnel), nhận %d", len(team.Members))
	}
	if team.Members[0].UserID != leaderOID.Hex() {
		t.Error("Leader phải là thành viên đầu tiên của chính team mình")
	}
}

func TestResolveTeams_OrphanExcluded(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	teams := ResolveTeams(makeTeamUsers(), makeTeamRecords(ts), NewLabelSet("Satış Sağlandı"))

	for _, member := range teams[0].Members {
		if member.UserID == orphanOID.Hex() {
			t.Error("Personnel có teamLeaderId không tồn tại phải bị loại khỏi cây team")
		}
	}
}

func TestResolveTeams_TotalsAreSums(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	teams := ResolveTeams(makeTeamUsers(), makeTeamRecords(ts), NewLabelSet("Satış Sağlandı"))
	team := teams[0]

	if team.Total != 6 {
		t.Errorf("Total team phải là tổng của thành viên (2+4+0=6), nhận %d", team.Total)
	}
	if team.SuccessCount != 2 {
		t.Errorf("SuccessCount team phải là tổng (1+1+0=2), nhận %d", team.SuccessCount)
	}
}

func TestResolveTeams_AvgIsMeanOfMemberRates(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	teams := ResolveTeams(makeTeamUsers(), makeTeamRecords(ts), NewLabelSet("Satış Sağlandı"))
	team := teams[0]

	// (50.0 + 25.0 + 0.0) / 3 = 25.0 - trung bình tỷ lệ, không phải tỷ lệ trên tổng
	if team.AvgConversionRate != 25.0 {
		t.Errorf("AvgConversionRate phải là trung bình cộng tỷ lệ thành viên: muốn 25.0, nhận %v", team.AvgConversionRate)
	}
}

func TestResolveTeams_MemberRecordsStayWithinTeamPartition(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	records := makeTeamRecords(ts)
	teams := ResolveTeams(makeTeamUsers(), records, NewLabelSet("Satış Sağlandı"))

	memberTotal := 0
	for _, team := range teams {
		for _, member := range team.Members {
			memberTotal += member.Total
		}
	}
	// Mọi bản ghi trong fixture thuộc về thành viên trong cây; tổng phải khớp
	if memberTotal != len(records) {
		t.Errorf("Tổng bản ghi theo thành viên phải bằng tổng bản ghi đầu vào: muốn %d, nhận %d", len(records), memberTotal)
	}
}

func TestResolveTeams_NoLeaders(t *testing.T) {
	users := []staffmodels.StaffUser{
		{ID: member1OID, Name: "Mehmet", Role: "personnel", TeamLeaderID: leaderOID.Hex(), IsActive: true},
	}
	teams := ResolveTeams(users, nil, NewLabelSet("Satış Sağlandı"))
	if len(teams) != 0 {
		t.Errorf("Không có leader thì không có team, nhận %d", len(teams))
	}
}

func TestResolveTeams_InactiveLeaderExcluded(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	users := []staffmodels.StaffUser{
		{ID: leaderOID, Name: "Ayşe", Role: "teamLeader", IsActive: false},
		{ID: member1OID, Name: "Mehmet", Role: "personnel", TeamLeaderID: leaderOID.Hex(), IsActive: true},
	}
	records := []salescallmodels.SalesRecord{
		makeRecord(leaderOID.Hex(), "Telefon", "Satış Sağlandı", ts),
		makeRecord(member1OID.Hex(), "Telefon", "Satış Sağlandı", ts),
	}

	teams := ResolveTeams(users, records, NewLabelSet("Satış Sağlandı"))
	if len(teams) != 0 {
		t.Errorf("Leader inactive không được tạo team, nhận %d team", len(teams))
	}
}

func TestResolveTeams_PersonnelOfInactiveLeaderExcluded(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	inactiveLeader := primitive.NewObjectID()
	users := []staffmodels.StaffUser{
		{ID: leaderOID, Name: "Ayşe", Role: "teamLeader", IsActive: true},
		{ID: inactiveLeader, Name: "Veli", Role: "teamLeader", IsActive: false},
		{ID: member1OID, Name: "Mehmet", Role: "personnel", TeamLeaderID: inactiveLeader.Hex(), IsActive: true},
	}
	records := []salescallmodels.SalesRecord{
		makeRecord(member1OID.Hex(), "Telefon", "Satış Sağlandı", ts),
	}

	teams := ResolveTeams(users, records, NewLabelSet("Satış Sağlandı"))
	if len(teams) != 1 {
		t.Fatalf("Chỉ leader active tạo team: muốn 1, nhận %d", len(teams))
	}
	for _, member := range teams[0].Members {
		if member.UserID == member1OID.Hex() {
			t.Error("Personnel của leader inactive không được gắn vào team khác")
		}
	}
	if teams[0].Total != 0 {
		t.Errorf("Bản ghi của personnel mồ côi không được tính vào team: nhận Total=%d", teams[0].Total)
	}
}

func TestResolveTeams_UnassignedPersonnelExcludedQuietly(t *testing.T) {
	users := []staffmodels.StaffUser{
		{ID: leaderOID, Name: "Ayşe", Role: "teamLeader", IsActive: true},
		{ID: member1OID, Name: "Mehmet", Role: "personnel", TeamLeaderID: "", IsActive: true},
	}

	teams := ResolveTeams(users, nil, NewLabelSet("Satış Sağlandı"))
	if len(teams) != 1 {
		t.Fatalf("Phải có 1 team, nhận %d", len(teams))
	}
	if len(teams[0].Members) != 1 {
		t.Errorf("Personnel chưa gán nhóm không được vào team: muốn 1 thành viên, nhận %d", len(teams[0].Members))
	}
}
