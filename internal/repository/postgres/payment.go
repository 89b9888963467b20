package postgres

import (
	"context"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `p.id, p.member_id, p.member_name, p.membership_type, p.amount, p.payment_date,
	p.payment_method, p.status, p.description, p.notes, p.is_student, p.created_at, p.updated_at`

func (s *Storage) CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	const query = `
        INSERT INTO payments (id, member_id, member_name, membership_type, amount, payment_date,
            payment_method, status, description, notes, is_student)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, member_id, member_name, membership_type, amount, payment_date,
            payment_method, status, description, notes, is_student, created_at, updated_at;
    `

	var out domain.Payment
	err := s.pool.QueryRow(ctx, query,
		p.ID, p.MemberID, p.MemberName, p.MembershipType, p.Amount, p.PaymentDate,
		p.PaymentMethod, p.Status, p.Description, p.Notes, p.IsStudent,
	).Scan(
		&out.ID, &out.MemberID, &out.MemberName, &out.MembershipType, &out.Amount,
		&out.PaymentDate, &out.PaymentMethod, &out.Status, &out.Description,
		&out.Notes, &out.IsStudent, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllPayments returns payments newest first, each populated with its
// member record when the member still exists.
func (s *Storage) GetAllPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `,
            m.id, m.name, m.email, m.phone, m.membership_type, m.status
        FROM payments p
        LEFT JOIN members m ON m.id = p.member_id
        ORDER BY p.payment_date DESC;
    `

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var memberID, memberName, memberEmail, memberPhone, memberType, memberStatus *string
		err := rows.Scan(
			&p.ID, &p.MemberID, &p.MemberName, &p.MembershipType, &p.Amount,
			&p.PaymentDate, &p.PaymentMethod, &p.Status, &p.Description,
			&p.Notes, &p.IsStudent, &p.CreatedAt, &p.UpdatedAt,
			&memberID, &memberName, &memberEmail, &memberPhone, &memberType, &memberStatus,
		)
		if err != nil {
			return nil, err
		}

		if memberID != nil {
			p.Member = &domain.Member{
				ID:             *memberID,
				Name:           *memberName,
				Email:          *memberEmail,
				Phone:          *memberPhone,
				MembershipType: *memberType,
				Status:         *memberStatus,
			}
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (s *Storage) GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `
        SELECT id, member_id, member_name, membership_type, amount, payment_date,
            payment_method, status, description, notes, is_student, created_at, updated_at
        FROM payments WHERE id = $1;
    `

	var p domain.Payment
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.MemberID, &p.MemberName, &p.MembershipType, &p.Amount,
		&p.PaymentDate, &p.PaymentMethod, &p.Status, &p.Description,
		&p.Notes, &p.IsStudent, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) DeletePayment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
