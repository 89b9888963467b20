package handler

import (
	"testing"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

func TestApplyMembershipRules(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		plan     string
		wantExp  time.Time
		wantTrial bool
	}{
		{"Trial", now.Add(24 * time.Hour), true},
		{"trial", now.Add(24 * time.Hour), true},
		{"Monthly", now.Add(30 * 24 * time.Hour), false},
		{"Annual", now.Add(365 * 24 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			m := domain.Member{MembershipType: tt.plan}
			applyMembershipRules(&m, now)

			if m.ExpirationDate == nil || !m.ExpirationDate.Equal(tt.wantExp) {
				t.Fatalf("expiration = %v, want %v", m.ExpirationDate, tt.wantExp)
			}
			if m.IsTrial != tt.wantTrial {
				t.Fatalf("isTrial = %v, want %v", m.IsTrial, tt.wantTrial)
			}
			if m.Status != "active" {
				t.Fatalf("status = %q, want active", m.Status)
			}
		})
	}
}

func TestApplyMembershipRules_UnknownPlan(t *testing.T) {
	now := time.Now()
	m := domain.Member{MembershipType: "Drop-in"}
	applyMembershipRules(&m, now)

	if m.ExpirationDate != nil {
		t.Fatalf("unknown plan should not expire, got %v", m.ExpirationDate)
	}
	if m.Status != "active" {
		t.Fatalf("status = %q, want active", m.Status)
	}
}
