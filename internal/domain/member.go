package domain

import "time"

type Member struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Email            string     `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	MembershipType   string     `db:"membership_type" json:"membershipType"`
	JoinDate         time.Time  `db:"join_date" json:"joinDate"`
	Status           string     `db:"status" json:"status"`
	Address          *string    `db:"address" json:"address"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergencyContact"`
	ExpirationDate   *time.Time `db:"expiration_date" json:"expirationDate"`
	IsTrial          bool       `db:"is_trial" json:"isTrial"`
	CoachID          *string    `db:"coach_id" json:"coachId"`
	CoachName        *string    `db:"coach_name" json:"coachName"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

type MemberRequest struct {
	Name             string  `json:"name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required"`
	MembershipType   string  `json:"membershipType" validate:"required"`
	Password         *string `json:"password" validate:"omitempty,min=8"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	CoachID          *string `json:"coachId"`
}

type MemberFilter struct {
	Search         string
	Status         string
	MembershipType string
}
