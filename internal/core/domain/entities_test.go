package domain

import "testing"

func TestStatusTransitionTable(t *testing.T) {
	all := []Status{StatusScheduled, StatusInProgress, StatusCompleted}

	allowed := map[[2]Status]bool{
		{StatusScheduled, StatusInProgress}: true,
		{StatusInProgress, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransition(to)
			want := allowed[[2]Status{from, to}]
			if got != want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatusNoBackwardOrSkip(t *testing.T) {
	// completed is terminal and cannot be reopened
	if !StatusCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
	if StatusCompleted.CanTransition(StatusInProgress) {
		t.Error("completed -> in_progress must be rejected")
	}
	if StatusCompleted.CanTransition(StatusScheduled) {
		t.Error("completed -> scheduled must be rejected")
	}
	// in_progress cannot move backward
	if StatusInProgress.CanTransition(StatusScheduled) {
		t.Error("in_progress -> scheduled must be rejected")
	}
	// scheduled cannot skip in_progress
	if StatusScheduled.CanTransition(StatusCompleted) {
		t.Error("scheduled -> completed must be rejected")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{"scheduled", StatusScheduled, false},
		{"in_progress", StatusInProgress, false},
		{"completed", StatusCompleted, false},
		{"", "", true},
		{"cancelled", "", true},
		{"SCHEDULED", "", true}, // status strings are case-sensitive
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestRoleMatches(t *testing.T) {
	if !RoleAdmin.Matches(RoleAdmin) {
		t.Error("admin should match admin")
	}
	if RoleMasseur.Matches(RoleAdmin) {
		t.Error("masseur must not match admin")
	}
	if Role("").Matches(RoleAdmin) {
		t.Error("unset role must never match")
	}
	if Role("Admin").Matches(RoleAdmin) {
		t.Error("role comparison must be case-sensitive")
	}
}
