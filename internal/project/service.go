package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/workflow"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context, filter ListFilter) ([]*Project, error)

	// ApplyTransition persists the project mutation and appends the history
	// record as one atomic unit, checking and incrementing the version the
	// mutation was computed from. Both writes succeed or neither does.
	ApplyTransition(ctx context.Context, p *Project, h *History) error

	ListHistory(ctx context.Context, projectID uuid.UUID) ([]*History, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title         string
	Description   string
	Category      string
	Location      string
	Office        string
	EstimatedCost int64
	Actor         auth.Actor
}

type ListFilter struct {
	Status    *workflow.Status
	Category  *string
	CreatedBy *uuid.UUID
}

// proposalRoles may submit new project proposals.
var proposalRoles = map[workflow.Role]bool{
	workflow.RoleBarangayOfficial:    true,
	workflow.RolePlanner:             true,
	workflow.RoleSystemAdministrator: true,
}

// Create registers a proposal at pending_review.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if !proposalRoles[params.Actor.Role] {
		return nil, fmt.Errorf("%w: %s may not submit proposals", ErrUnauthorized, params.Actor.Role)
	}

	if params.Title == "" {
		return nil, errors.New("title is required")
	}

	if params.EstimatedCost < 0 {
		return nil, fmt.Errorf("%w: estimated cost must not be negative", ErrInvalidAmount)
	}

	p := &Project{
		Title:         params.Title,
		Description:   params.Description,
		Category:      params.Category,
		Location:      params.Location,
		Office:        params.Office,
		Status:        workflow.StatusPendingReview,
		EstimatedCost: params.EstimatedCost,
		CreatedBy:     params.Actor.UserID,
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Project, error) {
	return s.repo.ListProjects(ctx, filter)
}

func (s *Service) History(ctx context.Context, projectID uuid.UUID) ([]*History, error) {
	return s.repo.ListHistory(ctx, projectID)
}

type TransitionParams struct {
	Status   workflow.Status
	Actor    auth.Actor
	Comments string

	// Budget figures, honored on the prioritized->funded edge.
	ApprovedBudget *int64
	Disbursed      *int64
}

// Transition validates and applies a status change, appending exactly one
// history record in the same atomic unit. All rejections happen before any
// write, so a failed call leaves no trace and repeats identically.
func (s *Service) Transition(ctx context.Context, projectID uuid.UUID, params TransitionParams) (*Project, error) {
	if !params.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, params.Status)
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !workflow.Defined(p.Status, params.Status) {
		return nil, fmt.Errorf("%w: no transition %s -> %s", ErrInvalidStatus, p.Status, params.Status)
	}

	if !workflow.Allowed(params.Actor.Role, p.Status, params.Status) {
		return nil, fmt.Errorf("%w: %s may not move %s -> %s",
			ErrUnauthorized, params.Actor.Role, p.Status, params.Status)
	}

	details := ChangeDetails{Comments: params.Comments}

	funding := p.Status == workflow.StatusPrioritized && params.Status == workflow.StatusFunded
	if funding {
		if params.ApprovedBudget == nil || *params.ApprovedBudget <= 0 {
			return nil, fmt.Errorf("%w: funding requires a positive approved budget", ErrInvalidAmount)
		}

		disbursed := p.Disbursed
		if params.Disbursed != nil {
			if *params.Disbursed < 0 {
				return nil, fmt.Errorf("%w: disbursed amount must not be negative", ErrInvalidAmount)
			}

			disbursed = *params.Disbursed
		}

		if disbursed > *params.ApprovedBudget {
			return nil, fmt.Errorf("%w: disbursed %d exceeds approved budget %d",
				ErrInvalidAmount, disbursed, *params.ApprovedBudget)
		}

		p.ApprovedBudget = params.ApprovedBudget
		p.Disbursed = disbursed
		details.ApprovedBudget = params.ApprovedBudget
		details.Disbursed = params.Disbursed
	}

	oldStatus := p.Status
	p.Status = params.Status

	h, err := NewHistory(p.ID, params.Actor.UserID, ActionStatusChange, oldStatus, p.Status, details)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyTransition(ctx, p, h); err != nil {
		return nil, err
	}

	return p, nil
}

// RecordDisbursement adds a released amount against the approved budget.
// The bound disbursed <= approved is enforced here, at update time.
func (s *Service) RecordDisbursement(ctx context.Context, projectID uuid.UUID, amount int64, actor auth.Actor) (*Project, error) {
	if actor.Role != workflow.RoleBudgetOfficer && actor.Role != workflow.RoleSystemAdministrator {
		return nil, fmt.Errorf("%w: %s may not record disbursements", ErrUnauthorized, actor.Role)
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: disbursement must be positive", ErrInvalidAmount)
	}

	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if p.ApprovedBudget == nil {
		return nil, fmt.Errorf("%w: project has no approved budget", ErrInvalidAmount)
	}

	total := p.Disbursed + amount
	if total > *p.ApprovedBudget {
		return nil, fmt.Errorf("%w: disbursed %d would exceed approved budget %d",
			ErrInvalidAmount, total, *p.ApprovedBudget)
	}

	p.Disbursed = total

	h, err := NewHistory(p.ID, actor.UserID, ActionDisbursement, p.Status, p.Status,
		ChangeDetails{Disbursed: &total})
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyTransition(ctx, p, h); err != nil {
		return nil, err
	}

	return p, nil
}

// NewHistory builds an audit record with the details payload marshaled once
// and stored verbatim.
func NewHistory(projectID, changedBy uuid.UUID, action string, from, to workflow.Status, details ChangeDetails) (*History, error) {
	payload, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshaling change details: %w", err)
	}

	return &History{
		ProjectID:  projectID,
		ChangedBy:  changedBy,
		ActionType: action,
		OldStatus:  from,
		NewStatus:  to,
		Details:    payload,
	}, nil
}
