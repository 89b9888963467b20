package domain

import "time"

type Payment struct {
	ID             string    `db:"id" json:"id"`
	MemberID       string    `db:"member_id" json:"memberId"`
	MemberName     string    `db:"member_name" json:"memberName"`
	MembershipType *string   `db:"membership_type" json:"membershipType"`
	Amount         float64   `db:"amount" json:"amount"`
	PaymentDate    time.Time `db:"payment_date" json:"paymentDate"`
	PaymentMethod  string    `db:"payment_method" json:"paymentMethod"`
	Status         string    `db:"status" json:"status"`
	Description    *string   `db:"description" json:"description"`
	Notes          *string   `db:"notes" json:"notes"`
	IsStudent      bool      `db:"is_student" json:"isStudent"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`

	// Populated from the members table on reads, nil when the member was
	// deleted after the payment was recorded.
	Member *Member `json:"member,omitempty"`
}

type PaymentRequest struct {
	MemberID      string     `json:"memberId" validate:"required"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod string     `json:"paymentMethod" validate:"required"`
	Description   *string    `json:"description"`
	Notes         *string    `json:"notes"`
	IsStudent     bool       `json:"isStudent"`
}
