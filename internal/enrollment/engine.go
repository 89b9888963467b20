package enrollment

import (
	"errors"
	"fmt"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

// Gate errors carry the exact messages the API returns to the frontend.
var (
	ErrAlreadyEnrolled = errors.New("Already enrolled in this class")
	ErrClassFull       = errors.New("Class is full")
	ErrPastClass       = errors.New("Cannot enroll in past classes")
	ErrNotEnrolled     = errors.New("Not enrolled in this class")
)

// ConflictError reports the first same-day class whose time window overlaps
// the one being joined.
type ConflictError struct {
	ClassName string
	StartTime string
	EndTime   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Time conflict: You are already enrolled in '%s' from %s to %s",
		e.ClassName, e.StartTime, e.EndTime)
}

// Enroll adds memberID to the schedule's enrollment set after running the
// gate checks in contract order: already-enrolled, capacity, past start,
// time conflict. enrolled is every other schedule the member is currently
// enrolled in; only same-date entries take part in conflict detection. The
// snapshot is left untouched unless every check passes.
func Enroll(s *domain.Schedule, memberID string, enrolled []domain.Schedule, now time.Time) error {
	if contains(s.EnrolledMembers, memberID) {
		return ErrAlreadyEnrolled
	}
	if s.Capacity != nil && len(s.EnrolledMembers) >= *s.Capacity {
		return ErrClassFull
	}

	start, err := StartInstant(s)
	if err != nil {
		return fmt.Errorf("invalid schedule time: %w", err)
	}
	// The gate compares against the class start, not its end: a class that
	// has started but not finished is still rejected.
	if start.Before(now) {
		return ErrPastClass
	}

	newStart, newEnd, err := window(s)
	if err != nil {
		return fmt.Errorf("invalid schedule time: %w", err)
	}
	for i := range enrolled {
		other := &enrolled[i]
		if other.ID == s.ID || other.Date != s.Date {
			continue
		}
		existStart, existEnd, err := window(other)
		if err != nil {
			return fmt.Errorf("invalid schedule time: %w", err)
		}
		// Half-open [start,end) overlap: touching endpoints never conflict.
		if newStart < existEnd && newEnd > existStart {
			return &ConflictError{
				ClassName: other.ClassName,
				StartTime: other.StartTime,
				EndTime:   other.EndTime,
			}
		}
	}

	s.EnrolledMembers = append(s.EnrolledMembers, memberID)
	s.UpdatedAt = now.UTC()
	return nil
}

// Unenroll removes memberID from the schedule's enrollment set.
func Unenroll(s *domain.Schedule, memberID string, now time.Time) error {
	idx := -1
	for i, id := range s.EnrolledMembers {
		if id == memberID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotEnrolled
	}

	s.EnrolledMembers = append(s.EnrolledMembers[:idx], s.EnrolledMembers[idx+1:]...)
	s.UpdatedAt = now.UTC()
	return nil
}

// StartInstant resolves the schedule's date plus start time to a local
// wall-clock instant.
func StartInstant(s *domain.Schedule) (time.Time, error) {
	return parseInstant(s.Date, s.StartTime)
}

// EndInstant resolves the schedule's date plus end time to a local
// wall-clock instant.
func EndInstant(s *domain.Schedule) (time.Time, error) {
	return parseInstant(s.Date, s.EndTime)
}

func parseInstant(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, time.Local)
	}
	return t, err
}

// clockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight.
func clockMinutes(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		t, err = time.Parse("15:04:05", v)
		if err != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func window(s *domain.Schedule) (start, end int, err error) {
	if start, err = clockMinutes(s.StartTime); err != nil {
		return 0, 0, err
	}
	if end, err = clockMinutes(s.EndTime); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
