package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'member',
    auth_provider TEXT NOT NULL DEFAULT 'local',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS coaches (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    specialization TEXT NOT NULL,
    experience INT,
    image TEXT,
    bio TEXT,
    status TEXT NOT NULL DEFAULT 'active',
    salary NUMERIC,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS members (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    membership_type TEXT NOT NULL,
    join_date TIMESTAMPTZ NOT NULL DEFAULT now(),
    status TEXT NOT NULL DEFAULT 'active',
    address TEXT,
    emergency_contact TEXT,
    expiration_date TIMESTAMPTZ,
    is_trial BOOLEAN NOT NULL DEFAULT FALSE,
    coach_id UUID REFERENCES coaches(id) ON DELETE SET NULL,
    coach_name TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
    id UUID PRIMARY KEY,
    member_id UUID NOT NULL,
    member_name TEXT NOT NULL,
    membership_type TEXT,
    amount NUMERIC NOT NULL,
    payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
    payment_method TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'completed',
    description TEXT,
    notes TEXT,
    is_student BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS schedules (
    id UUID PRIMARY KEY,
    class_name TEXT NOT NULL,
    coach_id UUID NOT NULL,
    date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    capacity INT,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS schedule_members (
    schedule_id UUID NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
    member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
    added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (schedule_id, member_id)
);

CREATE INDEX IF NOT EXISTS idx_schedule_members_member ON schedule_members (member_id);
CREATE INDEX IF NOT EXISTS idx_schedules_date ON schedules (date);
CREATE INDEX IF NOT EXISTS idx_payments_member ON payments (member_id);
`

// Migrate creates the schema. All statements are idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SeedAdmin creates the initial admin account when the users table is
// empty. Returns true when an account was created.
func (s *Storage) SeedAdmin(ctx context.Context, name, email, passwordHash string) (bool, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	const query = `
        INSERT INTO users (id, name, email, password_hash, role, auth_provider, is_active)
        VALUES ($1, $2, $3, $4, 'admin', 'local', TRUE);
    `
	if _, err := s.pool.Exec(ctx, query, uuid.NewString(), name, email, passwordHash); err != nil {
		return false, fmt.Errorf("insert admin: %w", err)
	}
	return true, nil
}
