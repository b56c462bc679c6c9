package milestone

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=milestone
type Repository interface {
	CreateMilestone(ctx context.Context, m *Milestone) error
	GetMilestone(ctx context.Context, id uuid.UUID) (*Milestone, error)
	ListMilestones(ctx context.Context, projectID uuid.UUID) ([]*Milestone, error)
	UpdateProgress(ctx context.Context, m *Milestone) error
}

type Service struct {
	repo     Repository
	projects *project.Service
}

func NewService(repo Repository, projects *project.Service) *Service {
	return &Service{repo: repo, projects: projects}
}

func inspects(role workflow.Role) bool {
	return role == workflow.RoleTechnicalInspector || role == workflow.RoleSystemAdministrator
}

type CreateParams struct {
	ProjectID     uuid.UUID
	Title         string
	Description   string
	OrderSequence int
	Actor         auth.Actor
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Milestone, error) {
	if !inspects(params.Actor.Role) {
		return nil, fmt.Errorf("%w: %s may not create milestones", project.ErrUnauthorized, params.Actor.Role)
	}

	if params.Title == "" {
		return nil, errors.New("title is required")
	}

	if params.OrderSequence < 0 {
		return nil, errors.New("order sequence must not be negative")
	}

	// The parent project must exist; milestones have no life of their own.
	if _, err := s.projects.Get(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	m := &Milestone{
		ProjectID:     params.ProjectID,
		Title:         params.Title,
		Description:   params.Description,
		OrderSequence: params.OrderSequence,
		Status:        StatusNotStarted,
		CreatedBy:     params.Actor.UserID,
	}
	if err := s.repo.CreateMilestone(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]*Milestone, error) {
	return s.repo.ListMilestones(ctx, projectID)
}

type ProgressParams struct {
	Completion int
	Status     Status
	Actor      auth.Actor
}

func (s *Service) UpdateProgress(ctx context.Context, id uuid.UUID, params ProgressParams) (*Milestone, error) {
	if !inspects(params.Actor.Role) {
		return nil, fmt.Errorf("%w: %s may not update milestones", project.ErrUnauthorized, params.Actor.Role)
	}

	if params.Completion < 0 || params.Completion > 100 {
		return nil, ErrInvalidCompletion
	}

	if !params.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, params.Status)
	}

	m, err := s.repo.GetMilestone(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Completion = params.Completion
	m.Status = params.Status

	if err := s.repo.UpdateProgress(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}
