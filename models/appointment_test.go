package models

import "testing"

func TestAppointmentStatusClassification(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		live     bool
		terminal bool
	}{
		{StatusPending, true, false},
		{StatusCompleted, true, true},
		{StatusCancelled, false, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsLive(); got != tt.live {
			t.Errorf("%s.IsLive() = %v, want %v", tt.status, got, tt.live)
		}
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "doctor", "admin"} {
		role, err := ParseRole(valid)
		if err != nil || string(role) != valid {
			t.Errorf("ParseRole(%q) = %v, %v", valid, role, err)
		}
	}
	for _, invalid := range []string{"", "Admin", "superuser", "provider"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Errorf("ParseRole(%q) should fail", invalid)
		}
	}
}
