package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/jackc/pgx/v5"
)

const memberColumns = `id, name, email, phone, membership_type, join_date, status, address,
	emergency_contact, expiration_date, is_trial, coach_id, coach_name, created_at, updated_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.MembershipType, &m.JoinDate,
		&m.Status, &m.Address, &m.EmergencyContact, &m.ExpirationDate,
		&m.IsTrial, &m.CoachID, &m.CoachName, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMember(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	const query = `
        INSERT INTO members (id, name, email, phone, membership_type, join_date, status, address,
            emergency_contact, expiration_date, is_trial, coach_id, coach_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + memberColumns + `;
    `

	return scanMember(s.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.MembershipType, m.JoinDate, m.Status,
		m.Address, m.EmergencyContact, m.ExpirationDate, m.IsTrial, m.CoachID, m.CoachName,
	))
}

// GetAllMembers lists members, filtered server-side instead of in the
// frontend's cached lists.
func (s *Storage) GetAllMembers(ctx context.Context, f domain.MemberFilter) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`

	var conds []string
	var args []interface{}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		conds = append(conds, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d)", len(args), len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.MembershipType != "" {
		args = append(args, f.MembershipType)
		conds = append(conds, fmt.Sprintf("membership_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}

	return members, rows.Err()
}

func (s *Storage) GetMemberByID(ctx context.Context, id string) (*domain.Member, error) {
	const query = `SELECT ` + memberColumns + ` FROM members WHERE id = $1;`
	return scanMember(s.pool.QueryRow(ctx, query, id))
}

func (s *Storage) UpdateMember(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	const query = `
        UPDATE members
        SET name = $2, email = $3, phone = $4, membership_type = $5, status = $6,
            address = $7, emergency_contact = $8, expiration_date = $9, is_trial = $10,
            coach_id = $11, coach_name = $12, updated_at = now()
        WHERE id = $1
        RETURNING ` + memberColumns + `;
    `

	return scanMember(s.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.MembershipType, m.Status,
		m.Address, m.EmergencyContact, m.ExpirationDate, m.IsTrial, m.CoachID, m.CoachName,
	))
}

func (s *Storage) DeleteMember(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM members WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
