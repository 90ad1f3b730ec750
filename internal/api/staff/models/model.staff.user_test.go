package models

import "testing"

func TestParseStaffRole(t *testing.T) {
	cases := []struct {
		raw  string
		want StaffRole
	}{
		{"admin", RoleAdmin},
		{"Administrator", RoleAdmin},
		{"teamLeader", RoleTeamLeader},
		{"Team Leader", RoleTeamLeader},
		{"team_leader", RoleTeamLeader},
		{"LEADER", RoleTeamLeader},
		{"personnel", RolePersonnel},
		{"Personnel", RolePersonnel},
		{"staff", RolePersonnel},
		{"  personnel  ", RolePersonnel},
		{"manager", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tc := range cases {
		if got := ParseStaffRole(tc.raw); got != tc.want {
			t.Errorf("ParseStaffRole(%q): muốn %q, nhận %q", tc.raw, tc.want, got)
		}
	}
}

func TestStaffUser_RoleEnum(t *testing.T) {
	user := StaffUser{Role: "Team Leader"}
	if user.RoleEnum() != RoleTeamLeader {
		t.Errorf("RoleEnum phải chuẩn hóa role thô, nhận %q", user.RoleEnum())
	}
}
