package domain

import "time"

type Coach struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Specialization string    `db:"specialization" json:"specialization"`
	Experience     *int      `db:"experience" json:"experience"`
	Image          *string   `db:"image" json:"image"`
	Bio            *string   `db:"bio" json:"bio"`
	Status         string    `db:"status" json:"status"`
	Salary         *float64  `db:"salary" json:"salary"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

type CoachRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Specialization string   `json:"specialization" validate:"required"`
	Experience     *int     `json:"experience" validate:"omitempty,min=0"`
	Image          *string  `json:"image"`
	Bio            *string  `json:"bio"`
	Status         string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Salary         *float64 `json:"salary" validate:"omitempty,min=0"`
}
