package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/milestone"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectMilestoneColumns = `
	id, project_id, title, description, order_sequence, completion, status, created_by, created_at, updated_at
`

func (s *Store) CreateMilestone(ctx context.Context, m *milestone.Milestone) error {
	query := `
		INSERT INTO milestones (project_id, title, description, order_sequence, completion, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.ProjectID,
		m.Title,
		m.Description,
		m.OrderSequence,
		m.Completion,
		m.Status,
		m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating milestone: %w", err)
	}

	return nil
}

func (s *Store) GetMilestone(ctx context.Context, id uuid.UUID) (*milestone.Milestone, error) {
	query := `SELECT ` + selectMilestoneColumns + ` FROM milestones WHERE id = $1`

	var m milestone.Milestone

	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.OrderSequence,
		&m.Completion, &status, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, milestone.ErrNotFound
		}

		return nil, fmt.Errorf("getting milestone: %w", err)
	}

	m.Status = milestone.Status(status)

	return &m, nil
}

func (s *Store) ListMilestones(ctx context.Context, projectID uuid.UUID) ([]*milestone.Milestone, error) {
	query := `SELECT ` + selectMilestoneColumns + `
		FROM milestones
		WHERE project_id = $1
		ORDER BY order_sequence ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*milestone.Milestone

	for rows.Next() {
		var m milestone.Milestone

		var status string

		if err := rows.Scan(
			&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.OrderSequence,
			&m.Completion, &status, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}

		m.Status = milestone.Status(status)
		milestones = append(milestones, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestone rows: %w", err)
	}

	return milestones, nil
}

func (s *Store) UpdateProgress(ctx context.Context, m *milestone.Milestone) error {
	query := `
		UPDATE milestones
		SET completion = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, m.Completion, m.Status, m.ID)
	if err != nil {
		return fmt.Errorf("updating milestone progress: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating milestone progress: %w", err)
	}

	if affected == 0 {
		return milestone.ErrNotFound
	}

	return nil
}
