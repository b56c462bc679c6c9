package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/bid"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectBidColumns = `
	b.id, b.project_id, b.contractor_id, b.amount, b.proposal, b.is_winning, b.submitted_by, b.created_at
`

func scanBid(s scanner) (*bid.Bid, error) {
	var b bid.Bid

	if err := s.Scan(
		&b.ID, &b.ProjectID, &b.ContractorID, &b.Amount,
		&b.Proposal, &b.IsWinning, &b.SubmittedBy, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) GetInvitation(ctx context.Context, projectID uuid.UUID) (*bid.Invitation, error) {
	query := `
		SELECT id, project_id, reference, notes, opens_at, closes_at, published_by, created_at
		FROM bid_invitations
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var inv bid.Invitation

	err := s.db.QueryRowContext(ctx, query, projectID).Scan(
		&inv.ID, &inv.ProjectID, &inv.Reference, &inv.Notes,
		&inv.OpensAt, &inv.ClosesAt, &inv.PublishedBy, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bid.ErrInvitationNotFound
		}

		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	return &inv, nil
}

func (s *Store) CreateBid(ctx context.Context, b *bid.Bid) error {
	query := `
		INSERT INTO bids (project_id, contractor_id, amount, proposal, is_winning, submitted_by, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.ProjectID,
		b.ContractorID,
		b.Amount,
		b.Proposal,
		b.SubmittedBy,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bid: %w", err)
	}

	return nil
}

func (s *Store) ListBids(ctx context.Context, projectID uuid.UUID) ([]*bid.Bid, error) {
	query := `SELECT ` + selectBidColumns + ` FROM bids b WHERE b.project_id = $1 ORDER BY b.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	defer rows.Close()

	var bids []*bid.Bid

	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bid: %w", err)
		}

		bids = append(bids, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bid rows: %w", err)
	}

	return bids, nil
}

func (s *Store) CreateContractor(ctx context.Context, c *bid.Contractor) error {
	query := `
		INSERT INTO contractors (name, license_number, email, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.LicenseNumber, c.Email).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating contractor: %w", err)
	}

	return nil
}

func (s *Store) GetContractor(ctx context.Context, id uuid.UUID) (*bid.Contractor, error) {
	query := `SELECT id, name, license_number, email, created_at FROM contractors WHERE id = $1`

	var c bid.Contractor

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.LicenseNumber, &c.Email, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bid.ErrContractorNotFound
		}

		return nil, fmt.Errorf("getting contractor: %w", err)
	}

	return &c, nil
}

func (s *Store) ListContractors(ctx context.Context) ([]*bid.Contractor, error) {
	query := `SELECT id, name, license_number, email, created_at FROM contractors ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contractors: %w", err)
	}
	defer rows.Close()

	var contractors []*bid.Contractor

	for rows.Next() {
		var c bid.Contractor

		if err := rows.Scan(&c.ID, &c.Name, &c.LicenseNumber, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contractor: %w", err)
		}

		contractors = append(contractors, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contractor rows: %w", err)
	}

	return contractors, nil
}

type bidTx struct {
	tx *sql.Tx
}

// BeginAward starts the transaction covering every write of a bid award.
// The project row is locked for the duration so the status read inside the
// transaction cannot go stale before the guarded update.
func (s *Store) BeginAward(ctx context.Context) (bid.AwardTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning award tx: %w", err)
	}

	return &bidTx{tx: dbTx}, nil
}

// BeginPublish starts the transaction covering an invitation publish. The
// same locking applies: the project row is read FOR UPDATE so the funded
// check holds until the invitation row and status change commit.
func (s *Store) BeginPublish(ctx context.Context) (bid.PublishTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning publish tx: %w", err)
	}

	return &bidTx{tx: dbTx}, nil
}

func (btx *bidTx) CreateInvitation(ctx context.Context, inv *bid.Invitation) error {
	query := `
		INSERT INTO bid_invitations (project_id, reference, notes, opens_at, closes_at, published_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := btx.tx.QueryRowContext(ctx, query,
		inv.ProjectID,
		inv.Reference,
		inv.Notes,
		inv.OpensAt,
		inv.ClosesAt,
		inv.PublishedBy,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}

	return nil
}

func (btx *bidTx) Commit() error   { return btx.tx.Commit() }
func (btx *bidTx) Rollback() error { return btx.tx.Rollback() }

func (btx *bidTx) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `
		SELECT id, title, description, category, location, office, status,
		       estimated_cost, approved_budget, disbursed, contractor_id,
		       created_by, version, created_at, updated_at
		FROM projects
		WHERE id = $1
		FOR UPDATE
	`

	var p project.Project

	var status string

	var approved sql.NullInt64

	err := btx.tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Location, &p.Office, &status,
		&p.EstimatedCost, &approved, &p.Disbursed, &p.ContractorID,
		&p.CreatedBy, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project for award: %w", err)
	}

	p.Status = workflow.Status(status)

	if approved.Valid {
		p.ApprovedBudget = &approved.Int64
	}

	return &p, nil
}

func (btx *bidTx) GetBid(ctx context.Context, id uuid.UUID) (*bid.Bid, error) {
	query := `SELECT ` + selectBidColumns + ` FROM bids b WHERE b.id = $1 FOR UPDATE`

	b, err := scanBid(btx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bid.ErrNotFound
		}

		return nil, fmt.Errorf("getting bid for award: %w", err)
	}

	return b, nil
}

func (btx *bidTx) ClearWinningBids(ctx context.Context, projectID uuid.UUID) error {
	_, err := btx.tx.ExecContext(ctx,
		"UPDATE bids SET is_winning = FALSE WHERE project_id = $1 AND is_winning", projectID)
	if err != nil {
		return fmt.Errorf("clearing winning bids: %w", err)
	}

	return nil
}

func (btx *bidTx) MarkWinningBid(ctx context.Context, bidID uuid.UUID) error {
	res, err := btx.tx.ExecContext(ctx, "UPDATE bids SET is_winning = TRUE WHERE id = $1", bidID)
	if err != nil {
		return fmt.Errorf("marking winning bid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking winning bid: %w", err)
	}

	if affected == 0 {
		return bid.ErrNotFound
	}

	return nil
}

// ApplyTransition mirrors the project store's version-guarded update and
// history append, but inside the award transaction.
func (btx *bidTx) ApplyTransition(ctx context.Context, p *project.Project, h *project.History) error {
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

	err := btx.tx.QueryRowContext(ctx, updateQuery,
		p.Status,
		approved,
		p.Disbursed,
		p.ContractorID,
		p.ID,
		p.Version,
	).Scan(&p.Version, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return project.ErrConcurrentModification
		}

		return fmt.Errorf("%w: updating project: %w", project.ErrStorage, err)
	}

	historyQuery := `
		INSERT INTO project_history (project_id, changed_by, action_type, old_status, new_status, change_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = btx.tx.QueryRowContext(ctx, historyQuery,
		h.ProjectID, h.ChangedBy, h.ActionType, h.OldStatus, h.NewStatus, h.Details,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: appending history: %w", project.ErrStorage, err)
	}

	return nil
}
