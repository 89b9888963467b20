package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/enrollment"
	"github.com/jackc/pgx/v5"
)

const scheduleColumns = `id, class_name, coach_id, date, start_time, end_time, capacity, description, created_at, updated_at`

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var sch domain.Schedule
	err := row.Scan(
		&sch.ID, &sch.ClassName, &sch.CoachID, &sch.Date, &sch.StartTime,
		&sch.EndTime, &sch.Capacity, &sch.Description, &sch.CreatedAt, &sch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sch.EnrolledMembers = []string{}
	return &sch, nil
}

func (s *Storage) CreateSchedule(ctx context.Context, sch *domain.Schedule) (*domain.Schedule, error) {
	const query = `
        INSERT INTO schedules (id, class_name, coach_id, date, start_time, end_time, capacity, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + scheduleColumns + `;
    `

	return scanSchedule(s.pool.QueryRow(ctx, query,
		sch.ID, sch.ClassName, sch.CoachID, sch.Date, sch.StartTime,
		sch.EndTime, sch.Capacity, sch.Description,
	))
}

// GetAllSchedules lists schedules with their enrollment sets, filtered
// server-side (the original frontend filtered a cached copy of everything).
func (s *Storage) GetAllSchedules(ctx context.Context, f domain.ScheduleFilter) ([]domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules`

	var conds []string
	var args []interface{}
	if f.ClassName != "" {
		args = append(args, "%"+strings.ToLower(f.ClassName)+"%")
		conds = append(conds, fmt.Sprintf("LOWER(class_name) LIKE $%d", len(args)))
	}
	if f.CoachID != "" {
		args = append(args, f.CoachID)
		conds = append(conds, fmt.Sprintf("coach_id = $%d", len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, start_time;"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	index := map[string]int{}
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		index[sch.ID] = len(schedules)
		schedules = append(schedules, *sch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(schedules) == 0 {
		return schedules, nil
	}

	memberRows, err := s.pool.Query(ctx, `SELECT schedule_id, member_id FROM schedule_members ORDER BY added_at;`)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var scheduleID, memberID string
		if err := memberRows.Scan(&scheduleID, &memberID); err != nil {
			return nil, err
		}
		if i, ok := index[scheduleID]; ok {
			schedules[i].EnrolledMembers = append(schedules[i].EnrolledMembers, memberID)
		}
	}

	return schedules, memberRows.Err()
}

func (s *Storage) GetScheduleByID(ctx context.Context, id string) (*domain.Schedule, error) {
	const query = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1;`

	sch, err := scanSchedule(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	sch.EnrolledMembers, err = s.enrolledMemberIDs(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}
	return sch, nil
}

func (s *Storage) UpdateSchedule(ctx context.Context, sch *domain.Schedule) (*domain.Schedule, error) {
	const query = `
        UPDATE schedules
        SET class_name = $2, coach_id = $3, date = $4, start_time = $5, end_time = $6,
            capacity = $7, description = $8, updated_at = now()
        WHERE id = $1
        RETURNING ` + scheduleColumns + `;
    `

	updated, err := scanSchedule(s.pool.QueryRow(ctx, query,
		sch.ID, sch.ClassName, sch.CoachID, sch.Date, sch.StartTime,
		sch.EndTime, sch.Capacity, sch.Description,
	))
	if err != nil {
		return nil, err
	}

	updated.EnrolledMembers, err = s.enrolledMemberIDs(ctx, s.pool, sch.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Storage) DeleteSchedule(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// EnrollMember runs the enrollment gates and records the membership inside
// one transaction. The schedule row is locked for the duration, so two
// concurrent enrolls cannot both slip past the capacity check (the original
// system's unguarded read-modify-write could overshoot capacity).
func (s *Storage) EnrollMember(ctx context.Context, scheduleID, memberID string) (*domain.Schedule, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const query = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 FOR UPDATE;`
	sch, err := scanSchedule(tx.QueryRow(ctx, query, scheduleID))
	if err != nil {
		return nil, err
	}

	sch.EnrolledMembers, err = s.enrolledMemberIDs(ctx, tx, scheduleID)
	if err != nil {
		return nil, err
	}

	others, err := s.memberSchedulesOnDate(ctx, tx, memberID, sch.Date, scheduleID)
	if err != nil {
		return nil, err
	}

	if err := enrollment.Enroll(sch, memberID, others, time.Now()); err != nil {
		return nil, err
	}

	const insert = `INSERT INTO schedule_members (schedule_id, member_id) VALUES ($1, $2);`
	if _, err := tx.Exec(ctx, insert, scheduleID, memberID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE schedules SET updated_at = $2 WHERE id = $1;`, scheduleID, sch.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return sch, nil
}

// UnenrollMember removes the membership under the same row lock.
func (s *Storage) UnenrollMember(ctx context.Context, scheduleID, memberID string) (*domain.Schedule, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const query = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 FOR UPDATE;`
	sch, err := scanSchedule(tx.QueryRow(ctx, query, scheduleID))
	if err != nil {
		return nil, err
	}

	sch.EnrolledMembers, err = s.enrolledMemberIDs(ctx, tx, scheduleID)
	if err != nil {
		return nil, err
	}

	if err := enrollment.Unenroll(sch, memberID, time.Now()); err != nil {
		return nil, err
	}

	const remove = `DELETE FROM schedule_members WHERE schedule_id = $1 AND member_id = $2;`
	if _, err := tx.Exec(ctx, remove, scheduleID, memberID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE schedules SET updated_at = $2 WHERE id = $1;`, scheduleID, sch.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return sch, nil
}

// querier lets the enrollment lookups run either on the pool or inside a
// transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

func (s *Storage) enrolledMemberIDs(ctx context.Context, q querier, scheduleID string) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT member_id FROM schedule_members WHERE schedule_id = $1 ORDER BY added_at;`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// memberSchedulesOnDate gathers the member's other enrollments on the same
// calendar date for conflict detection, earliest start first.
func (s *Storage) memberSchedulesOnDate(ctx context.Context, q querier, memberID, date, excludeID string) ([]domain.Schedule, error) {
	const query = `
        SELECT s.id, s.class_name, s.date, s.start_time, s.end_time
        FROM schedules s
        JOIN schedule_members sm ON sm.schedule_id = s.id
        WHERE sm.member_id = $1 AND s.date = $2 AND s.id <> $3
        ORDER BY s.start_time;
    `

	rows, err := q.Query(ctx, query, memberID, date, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		var sch domain.Schedule
		if err := rows.Scan(&sch.ID, &sch.ClassName, &sch.Date, &sch.StartTime, &sch.EndTime); err != nil {
			return nil, err
		}
		schedules = append(schedules, sch)
	}

	return schedules, rows.Err()
}
