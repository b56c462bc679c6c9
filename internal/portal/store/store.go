package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpmercado/infratrack/internal/portal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) StatusCounts(ctx context.Context) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) FROM projects GROUP BY status`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)

	for rows.Next() {
		var status string

		var n int64

		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}

		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}

	return counts, nil
}

func (s *Store) BudgetTotals(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT COALESCE(SUM(approved_budget), 0), COALESCE(SUM(disbursed), 0)
		FROM projects
	`

	var approved, disbursed int64

	if err := s.db.QueryRowContext(ctx, query).Scan(&approved, &disbursed); err != nil {
		return 0, 0, fmt.Errorf("totaling budgets: %w", err)
	}

	return approved, disbursed, nil
}

func (s *Store) CategoryRollups(ctx context.Context) ([]portal.CategoryRollup, error) {
	query := `
		SELECT category, COUNT(*), COALESCE(SUM(approved_budget), 0), COALESCE(SUM(disbursed), 0)
		FROM projects
		GROUP BY category
		ORDER BY category
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("rolling up categories: %w", err)
	}
	defer rows.Close()

	var rollups []portal.CategoryRollup

	for rows.Next() {
		var r portal.CategoryRollup

		if err := rows.Scan(&r.Category, &r.Projects, &r.TotalApproved, &r.TotalDisbursed); err != nil {
			return nil, fmt.Errorf("scanning category rollup: %w", err)
		}

		rollups = append(rollups, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rollups: %w", err)
	}

	return rollups, nil
}
