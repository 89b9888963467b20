package enrollment

import (
	"fmt"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Status classifies a schedule against the current instant. Presentational
// only: the enroll gate uses the class start, not this.
func Status(s *domain.Schedule, now time.Time) string {
	start, err := StartInstant(s)
	if err != nil {
		return StatusUpcoming
	}
	end, err := EndInstant(s)
	if err != nil {
		return StatusUpcoming
	}

	switch {
	case now.After(end):
		return StatusCompleted
	case !now.Before(start):
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}

// Duration renders the class length as "45 min", "2h" or "1h 30m".
func Duration(startTime, endTime string) string {
	start, err := clockMinutes(startTime)
	if err != nil {
		return ""
	}
	end, err := clockMinutes(endTime)
	if err != nil {
		return ""
	}

	mins := end - start
	if mins < 0 {
		return ""
	}
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// CapacityDisplay renders "enrolled/capacity", or just the enrolled count
// when the schedule has no capacity limit.
func CapacityDisplay(enrolled int, capacity *int) string {
	if capacity == nil {
		return fmt.Sprintf("%d", enrolled)
	}
	return fmt.Sprintf("%d/%d", enrolled, *capacity)
}
