package enrollment

import (
	"errors"
	"testing"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

// All tests run against a fixed "now" of 08:00 on 2024-06-01 so the past
// gate stays predictable.
var testNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)

func intPtr(v int) *int { return &v }

func sched(id, name, date, start, end string, capacity *int, members ...string) domain.Schedule {
	if members == nil {
		members = []string{}
	}
	return domain.Schedule{
		ID:              id,
		ClassName:       name,
		CoachID:         "coach-1",
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Capacity:        capacity,
		EnrolledMembers: members,
	}
}

func TestEnroll_AddsMember(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(10))

	if err := Enroll(&s, "m1", nil, testNow); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(s.EnrolledMembers) != 1 || s.EnrolledMembers[0] != "m1" {
		t.Fatalf("expected [m1], got %v", s.EnrolledMembers)
	}
	if s.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be stamped")
	}
}

func TestEnroll_AlreadyEnrolled(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(10), "m1")

	err := Enroll(&s, "m1", nil, testNow)
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if len(s.EnrolledMembers) != 1 {
		t.Fatalf("enrollment set mutated on rejection: %v", s.EnrolledMembers)
	}
}

func TestEnroll_ClassFull(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(2), "m1", "m2")

	err := Enroll(&s, "m3", nil, testNow)
	if !errors.Is(err, ErrClassFull) {
		t.Fatalf("expected ErrClassFull, got %v", err)
	}
	if len(s.EnrolledMembers) != 2 {
		t.Fatalf("enrollment set mutated on rejection: %v", s.EnrolledMembers)
	}
}

func TestEnroll_CapacityOneSerialized(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(1))

	if err := Enroll(&s, "m1", nil, testNow); err != nil {
		t.Fatalf("first enroll should succeed, got %v", err)
	}
	if err := Enroll(&s, "m2", nil, testNow); !errors.Is(err, ErrClassFull) {
		t.Fatalf("second enroll should hit capacity, got %v", err)
	}
}

func TestEnroll_CapacityBoundHolds(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(3))

	members := []string{"m1", "m2", "m3", "m4", "m5"}
	for _, m := range members {
		Enroll(&s, m, nil, testNow)
	}
	if len(s.EnrolledMembers) > 3 {
		t.Fatalf("capacity exceeded: %v", s.EnrolledMembers)
	}
}

func TestEnroll_NoCapacityIsUnbounded(t *testing.T) {
	s := sched("a", "Open Gym", "2024-06-01", "09:00", "10:00", nil)

	for _, m := range []string{"m1", "m2", "m3", "m4"} {
		if err := Enroll(&s, m, nil, testNow); err != nil {
			t.Fatalf("enroll %s: %v", m, err)
		}
	}
}

func TestEnroll_PastClass(t *testing.T) {
	s := sched("a", "Yoga", "2024-05-31", "09:00", "10:00", nil)

	if err := Enroll(&s, "m1", nil, testNow); !errors.Is(err, ErrPastClass) {
		t.Fatalf("expected ErrPastClass, got %v", err)
	}
}

func TestEnroll_OngoingClassStillRejected(t *testing.T) {
	// Started 07:30, ends 09:00; now is 08:00. The gate checks the start
	// instant only, so the still-running class is rejected.
	s := sched("a", "Spin", "2024-06-01", "07:30", "09:00", nil)

	if err := Enroll(&s, "m1", nil, testNow); !errors.Is(err, ErrPastClass) {
		t.Fatalf("expected ErrPastClass for ongoing class, got %v", err)
	}
}

func TestEnroll_TimeConflict(t *testing.T) {
	a := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil, "m1")
	b := sched("b", "Boxing", "2024-06-01", "09:30", "10:30", nil)

	err := Enroll(&b, "m1", []domain.Schedule{a}, testNow)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ClassName != "Yoga" || conflict.StartTime != "09:00" || conflict.EndTime != "10:00" {
		t.Fatalf("conflict should name Yoga's window, got %+v", conflict)
	}
	want := "Time conflict: You are already enrolled in 'Yoga' from 09:00 to 10:00"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got %q\nwant %q", conflict.Error(), want)
	}
	if len(b.EnrolledMembers) != 0 {
		t.Fatalf("enrollment set mutated on conflict: %v", b.EnrolledMembers)
	}
}

func TestEnroll_TouchingEndpointsDoNotConflict(t *testing.T) {
	a := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil, "m1")
	c := sched("c", "Pilates", "2024-06-01", "10:00", "11:00", nil)

	if err := Enroll(&c, "m1", []domain.Schedule{a}, testNow); err != nil {
		t.Fatalf("back-to-back classes should not conflict, got %v", err)
	}
}

func TestEnroll_ChecksEveryEnrolledSchedule(t *testing.T) {
	// The conflict is with the member's second class, not the first.
	a := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil, "m1")
	b := sched("b", "Boxing", "2024-06-01", "12:00", "13:00", nil, "m1")
	c := sched("c", "Pilates", "2024-06-01", "12:30", "13:30", nil)

	err := Enroll(&c, "m1", []domain.Schedule{a, b}, testNow)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ClassName != "Boxing" {
		t.Fatalf("expected conflict with Boxing, got %q", conflict.ClassName)
	}
}

func TestEnroll_OtherDateNeverConflicts(t *testing.T) {
	a := sched("a", "Yoga", "2024-06-02", "09:00", "10:00", nil, "m1")
	b := sched("b", "Boxing", "2024-06-01", "09:30", "10:30", nil)

	if err := Enroll(&b, "m1", []domain.Schedule{a}, testNow); err != nil {
		t.Fatalf("overlap on a different date should not conflict, got %v", err)
	}
}

func TestUnenroll_RemovesMember(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil, "m1", "m2")

	if err := Unenroll(&s, "m1", testNow); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(s.EnrolledMembers) != 1 || s.EnrolledMembers[0] != "m2" {
		t.Fatalf("expected [m2], got %v", s.EnrolledMembers)
	}
}

func TestUnenroll_NotEnrolled(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", nil, "m2")

	if err := Unenroll(&s, "m1", testNow); !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
	if len(s.EnrolledMembers) != 1 {
		t.Fatalf("enrollment set mutated on rejection: %v", s.EnrolledMembers)
	}
}

func TestEnrollUnenrollEnroll_RoundTrip(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "09:00", "10:00", intPtr(5))

	if err := Enroll(&s, "m1", nil, testNow); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := Unenroll(&s, "m1", testNow); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if err := Enroll(&s, "m1", nil, testNow); err != nil {
		t.Fatalf("re-enroll: %v", err)
	}
	if len(s.EnrolledMembers) != 1 || s.EnrolledMembers[0] != "m1" {
		t.Fatalf("expected [m1] after round trip, got %v", s.EnrolledMembers)
	}
}

func TestEnroll_BadTimeFormat(t *testing.T) {
	s := sched("a", "Yoga", "2024-06-01", "late", "10:00", nil)

	err := Enroll(&s, "m1", nil, testNow)
	if err == nil {
		t.Fatal("expected error for unparsable start time")
	}
	if errors.Is(err, ErrPastClass) || errors.Is(err, ErrClassFull) {
		t.Fatalf("parse failure must not map to a gate error, got %v", err)
	}
}
