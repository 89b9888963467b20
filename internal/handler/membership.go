package handler

import (
	"strings"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

// Membership durations, matched case-insensitively against the plan name.
const (
	trialDuration   = 24 * time.Hour
	monthlyDuration = 30 * 24 * time.Hour
	annualDuration  = 365 * 24 * time.Hour
)

// applyMembershipRules stamps the expiration date, trial flag and status a
// new member gets from their plan. Unknown plan names get no expiration.
func applyMembershipRules(m *domain.Member, now time.Time) {
	m.Status = "active"

	switch strings.ToLower(m.MembershipType) {
	case "trial":
		exp := now.Add(trialDuration)
		m.ExpirationDate = &exp
		m.IsTrial = true
	case "monthly":
		exp := now.Add(monthlyDuration)
		m.ExpirationDate = &exp
	case "annual":
		exp := now.Add(annualDuration)
		m.ExpirationDate = &exp
	}

	if m.ExpirationDate != nil && !m.ExpirationDate.After(now) {
		m.Status = "expired"
	}
}
