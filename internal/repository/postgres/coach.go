package postgres

import (
	"context"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/jackc/pgx/v5"
)

const coachColumns = `id, name, email, phone, specialization, experience, image, bio, status, salary, created_at, updated_at`

func scanCoach(row pgx.Row) (*domain.Coach, error) {
	var c domain.Coach
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Specialization, &c.Experience,
		&c.Image, &c.Bio, &c.Status, &c.Salary, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCoach(ctx context.Context, c *domain.Coach) (*domain.Coach, error) {
	const query = `
        INSERT INTO coaches (id, name, email, phone, specialization, experience, image, bio, status, salary)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + coachColumns + `;
    `

	return scanCoach(s.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Specialization, c.Experience,
		c.Image, c.Bio, c.Status, c.Salary,
	))
}

func (s *Storage) GetAllCoaches(ctx context.Context) ([]domain.Coach, error) {
	const query = `SELECT ` + coachColumns + ` FROM coaches ORDER BY created_at DESC;`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := []domain.Coach{}
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, *c)
	}

	return coaches, rows.Err()
}

func (s *Storage) GetCoachByID(ctx context.Context, id string) (*domain.Coach, error) {
	const query = `SELECT ` + coachColumns + ` FROM coaches WHERE id = $1;`
	return scanCoach(s.pool.QueryRow(ctx, query, id))
}

func (s *Storage) UpdateCoach(ctx context.Context, c *domain.Coach) (*domain.Coach, error) {
	const query = `
        UPDATE coaches
        SET name = $2, email = $3, phone = $4, specialization = $5, experience = $6,
            image = $7, bio = $8, status = $9, salary = $10, updated_at = now()
        WHERE id = $1
        RETURNING ` + coachColumns + `;
    `

	return scanCoach(s.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Specialization, c.Experience,
		c.Image, c.Bio, c.Status, c.Salary,
	))
}

func (s *Storage) DeleteCoach(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM coaches WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
