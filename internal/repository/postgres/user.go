package postgres

import (
	"context"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

const userColumns = `id, name, email, password_hash, role, auth_provider, is_active, created_at, updated_at`

func (s *Storage) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	const query = `
        INSERT INTO users (id, name, email, password_hash, role, auth_provider, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns + `;
    `

	var out domain.User
	err := s.pool.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.AuthProvider, u.IsActive,
	).Scan(
		&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.Role,
		&out.AuthProvider, &out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	var u domain.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.AuthProvider, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	var u domain.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.AuthProvider, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
