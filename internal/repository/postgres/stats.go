package postgres

import (
	"context"

	"github.com/dajacjhonwilliam4-oss/Gym-Management-System/internal/domain"
)

// DashboardStats computes the dashboard aggregates in SQL. The original
// frontend derived these client-side from full entity lists.
func (s *Storage) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM members),
            (SELECT COUNT(*) FROM members WHERE status = 'active'),
            (SELECT COUNT(*) FROM coaches),
            (SELECT COUNT(*) FROM schedules),
            (SELECT COALESCE(SUM(amount), 0) FROM payments),
            (SELECT COALESCE(SUM(amount), 0) FROM payments
                WHERE date_trunc('month', payment_date) = date_trunc('month', now())),
            (SELECT COALESCE(SUM(amount), 0) FROM payments
                WHERE payment_date::date = now()::date);
    `

	var st domain.DashboardStats
	err := s.pool.QueryRow(ctx, query).Scan(
		&st.TotalMembers, &st.ActiveMembers, &st.TotalCoaches, &st.TotalSchedules,
		&st.TotalRevenue, &st.MonthRevenue, &st.TodayRevenue,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
