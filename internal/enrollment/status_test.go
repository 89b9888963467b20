package enrollment

import (
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil)
	at := func(hour, min int) time.Time {
		return time.Date(2024, 6, 1, hour, min, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before start", at(8, 0), StatusUpcoming},
		{"exactly at start", at(9, 0), StatusOngoing},
		{"mid class", at(9, 30), StatusOngoing},
		{"exactly at end", at(10, 0), StatusOngoing},
		{"after end", at(10, 1), StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(&s, tt.now); got != tt.want {
				t.Fatalf("Status at %v = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"09:00", "09:45", "45 min"},
		{"09:00", "10:00", "1h"},
		{"09:00", "10:30", "1h 30m"},
		{"08:00", "10:00", "2h"},
		{"09:00", "09:00", "0 min"},
		{"bad", "10:00", ""},
	}
	for _, tt := range tests {
		if got := Duration(tt.start, tt.end); got != tt.want {
			t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCapacityDisplay(t *testing.T) {
	if got := CapacityDisplay(3, intPtr(10)); got != "3/10" {
		t.Errorf("expected 3/10, got %q", got)
	}
	if got := CapacityDisplay(3, nil); got != "3" {
		t.Errorf("expected 3, got %q", got)
	}
}
