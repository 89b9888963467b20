package domain

import "time"

// Schedule is one class occurrence. Date and times are wall-clock strings
// ("2006-01-02" and "15:04") and are never timezone-converted.
type Schedule struct {
	ID              string    `db:"id" json:"id"`
	ClassName       string    `db:"class_name" json:"className"`
	CoachID         string    `db:"coach_id" json:"coachId"`
	Date            string    `db:"date" json:"date"`
	StartTime       string    `db:"start_time" json:"startTime"`
	EndTime         string    `db:"end_time" json:"endTime"`
	Capacity        *int      `db:"capacity" json:"capacity"`
	Description     *string   `db:"description" json:"description"`
	EnrolledMembers []string  `json:"enrolledMembers"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

type ScheduleRequest struct {
	ClassName   string  `json:"className" validate:"required"`
	CoachID     string  `json:"coachId" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string  `json:"endTime" validate:"required,datetime=15:04"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type EnrollRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// ScheduleFilter holds the optional list filters; empty fields are ignored.
type ScheduleFilter struct {
	ClassName string
	CoachID   string
	Date      string
}
