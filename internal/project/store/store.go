package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProjectColumns = `
	p.id, p.title, p.description, p.category, p.location, p.office, p.status,
	p.estimated_cost, p.approved_budget, p.disbursed, p.contractor_id,
	p.created_by, p.version, p.created_at, p.updated_at
`

// scanProject reads a project row in selectProjectColumns order.
func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var status string

	var approved sql.NullInt64

	var contractorID *uuid.UUID

	if err := s.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Location, &p.Office, &status,
		&p.EstimatedCost, &approved, &p.Disbursed, &contractorID,
		&p.CreatedBy, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = workflow.Status(status)
	p.ContractorID = contractorID

	if approved.Valid {
		p.ApprovedBudget = &approved.Int64
	}

	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (title, description, category, location, office, status, estimated_cost, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, version, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Title,
		p.Description,
		p.Category,
		p.Location,
		p.Office,
		p.Status,
		p.EstimatedCost,
		p.CreatedBy,
	).Scan(&p.ID, &p.Version, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects p WHERE p.id = $1`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return p, nil
}

func (s *Store) ListProjects(ctx context.Context, filter project.ListFilter) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects p WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND p.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.CreatedBy != nil {
		query += fmt.Sprintf(" AND p.created_by = $%d", argIdx)

		args = append(args, *filter.CreatedBy)
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}

	return projects, nil
}

// ApplyTransition writes the project mutation and its history record in one
// database transaction. The UPDATE is guarded by the version the caller read;
// a stale version matches no row and nothing is committed.
func (s *Store) ApplyTransition(ctx context.Context, p *project.Project, h *project.History) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", project.ErrStorage, err)
	}
	defer dbTx.Rollback()

	updateQuery := `
		UPDATE projects
		SET status = $1, approved_budget = $2, disbursed = $3, contractor_id = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at
	`

	var approved sql.NullInt64
	if p.ApprovedBudget != nil {
		approved = sql.NullInt64{Int64: *p.ApprovedBudget, Valid: true}
	}

	err = dbTx.QueryRowContext(ctx, updateQuery,
		p.Status,
		approved,
		p.Disbursed,
		p.ContractorID,
		p.ID,
		p.Version,
	).Scan(&p.Version, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.staleOrMissing(ctx, p.ID)
		}

		return fmt.Errorf("%w: updating project: %w", project.ErrStorage, err)
	}

	historyQuery := `
		INSERT INTO project_history (project_id, changed_by, action_type, old_status, new_status, change_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, historyQuery,
		h.ProjectID,
		h.ChangedBy,
		h.ActionType,
		h.OldStatus,
		h.NewStatus,
		h.Details,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: appending history: %w", project.ErrStorage, err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transition: %w", project.ErrStorage, err)
	}

	return nil
}

// staleOrMissing distinguishes a version conflict from a deleted project.
func (s *Store) staleOrMissing(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)", id).Scan(&exists); err != nil {
		return fmt.Errorf("%w: checking project existence: %w", project.ErrStorage, err)
	}

	if !exists {
		return project.ErrNotFound
	}

	return project.ErrConcurrentModification
}

func (s *Store) ListHistory(ctx context.Context, projectID uuid.UUID) ([]*project.History, error) {
	query := `
		SELECT id, project_id, changed_by, action_type, old_status, new_status, change_details, created_at
		FROM project_history
		WHERE project_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var records []*project.History

	for rows.Next() {
		var h project.History

		var oldStatus, newStatus string

		if err := rows.Scan(
			&h.ID, &h.ProjectID, &h.ChangedBy, &h.ActionType,
			&oldStatus, &newStatus, &h.Details, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}

		h.OldStatus = workflow.Status(oldStatus)
		h.NewStatus = workflow.Status(newStatus)
		records = append(records, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return records, nil
}
