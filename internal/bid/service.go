package bid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bid
type Repository interface {
	GetInvitation(ctx context.Context, projectID uuid.UUID) (*Invitation, error)

	CreateBid(ctx context.Context, b *Bid) error
	ListBids(ctx context.Context, projectID uuid.UUID) ([]*Bid, error)

	CreateContractor(ctx context.Context, c *Contractor) error
	GetContractor(ctx context.Context, id uuid.UUID) (*Contractor, error)
	ListContractors(ctx context.Context) ([]*Contractor, error)

	BeginPublish(ctx context.Context) (PublishTx, error)
	BeginAward(ctx context.Context) (AwardTx, error)
}

// PublishTx scopes the publication of a bid invitation to one database
// transaction: the invitation row, the status change and its history row
// commit together or not at all.
type PublishTx interface {
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)
	CreateInvitation(ctx context.Context, inv *Invitation) error
	ApplyTransition(ctx context.Context, p *project.Project, h *project.History) error
	Commit() error
	Rollback() error
}

// AwardTx scopes the award of a winning bid to one database transaction:
// the winning-flag writes, the contractor assignment, the status change and
// its history row all commit together or not at all.
type AwardTx interface {
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)
	GetBid(ctx context.Context, id uuid.UUID) (*Bid, error)
	ClearWinningBids(ctx context.Context, projectID uuid.UUID) error
	MarkWinningBid(ctx context.Context, bidID uuid.UUID) error
	ApplyTransition(ctx context.Context, p *project.Project, h *project.History) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo     Repository
	projects *project.Service
}

func NewService(repo Repository, projects *project.Service) *Service {
	return &Service{repo: repo, projects: projects}
}

type PublishParams struct {
	ProjectID uuid.UUID
	Reference string
	Notes     string
	OpensAt   time.Time
	ClosesAt  time.Time
	Actor     auth.Actor
}

// PublishInvitation opens a project for bidding: it records the solicitation
// window and drives the funded -> open_for_bidding transition in one
// transaction. The project's status is checked under lock before the
// invitation row is written, so a rejected publish leaves nothing behind.
func (s *Service) PublishInvitation(ctx context.Context, params PublishParams) (*Invitation, error) {
	if !params.ClosesAt.After(params.OpensAt) {
		return nil, errors.New("closing date must be after opening date")
	}

	if !workflow.Allowed(params.Actor.Role, workflow.StatusFunded, workflow.StatusOpenForBidding) {
		return nil, fmt.Errorf("%w: %s may not open bidding", project.ErrUnauthorized, params.Actor.Role)
	}

	ptx, err := s.repo.BeginPublish(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning publish: %w", err)
	}
	defer ptx.Rollback()

	p, err := ptx.GetProject(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}

	if p.Status != workflow.StatusFunded {
		return nil, fmt.Errorf("%w: project is %s, not funded", project.ErrInvalidStatus, p.Status)
	}

	inv := &Invitation{
		ProjectID:   params.ProjectID,
		Reference:   params.Reference,
		Notes:       params.Notes,
		OpensAt:     params.OpensAt,
		ClosesAt:    params.ClosesAt,
		PublishedBy: params.Actor.UserID,
	}
	if err := ptx.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}

	oldStatus := p.Status
	p.Status = workflow.StatusOpenForBidding

	details := project.ChangeDetails{Comments: "bid invitation " + inv.Reference + " published"}

	h, err := project.NewHistory(p.ID, params.Actor.UserID, project.ActionStatusChange, oldStatus, p.Status, details)
	if err != nil {
		return nil, err
	}

	if err := ptx.ApplyTransition(ctx, p, h); err != nil {
		return nil, err
	}

	if err := ptx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing publish: %w", project.ErrStorage, err)
	}

	return inv, nil
}

func (s *Service) Invitation(ctx context.Context, projectID uuid.UUID) (*Invitation, error) {
	return s.repo.GetInvitation(ctx, projectID)
}

type SubmitParams struct {
	ProjectID    uuid.UUID
	ContractorID uuid.UUID
	Amount       int64
	Proposal     string
	Actor        auth.Actor
}

// Submit records a contractor's bid. The invitation window is enforced here:
// bids outside [opens_at, closes_at] are rejected without any write.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Bid, error) {
	if params.Actor.Role != workflow.RoleContractor && params.Actor.Role != workflow.RoleSystemAdministrator {
		return nil, fmt.Errorf("%w: %s may not submit bids", project.ErrUnauthorized, params.Actor.Role)
	}

	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: bid amount must be positive", project.ErrInvalidAmount)
	}

	p, err := s.projects.Get(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}

	if p.Status != workflow.StatusOpenForBidding {
		return nil, fmt.Errorf("%w: project is %s, not open for bidding", project.ErrInvalidStatus, p.Status)
	}

	if _, err := s.repo.GetContractor(ctx, params.ContractorID); err != nil {
		return nil, err
	}

	inv, err := s.repo.GetInvitation(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if now.Before(inv.OpensAt) {
		return nil, ErrBiddingNotOpen
	}

	if now.After(inv.ClosesAt) {
		return nil, ErrBiddingClosed
	}

	b := &Bid{
		ProjectID:    params.ProjectID,
		ContractorID: params.ContractorID,
		Amount:       params.Amount,
		Proposal:     params.Proposal,
		SubmittedBy:  params.Actor.UserID,
	}
	if err := s.repo.CreateBid(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]*Bid, error) {
	return s.repo.ListBids(ctx, projectID)
}

// AcceptAward marks the bid as the single winner for its project, assigns
// the contractor, and moves the project to in_progress, all in one
// transaction. Any failing step aborts the whole operation.
func (s *Service) AcceptAward(ctx context.Context, projectID, bidID uuid.UUID, actor auth.Actor) (*project.Project, error) {
	if !workflow.Allowed(actor.Role, workflow.StatusOpenForBidding, workflow.StatusInProgress) {
		return nil, fmt.Errorf("%w: %s may not award bids", project.ErrUnauthorized, actor.Role)
	}

	atx, err := s.repo.BeginAward(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning award: %w", err)
	}
	defer atx.Rollback()

	p, err := atx.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if p.Status != workflow.StatusOpenForBidding {
		return nil, fmt.Errorf("%w: project is %s, not open for bidding", project.ErrInvalidStatus, p.Status)
	}

	b, err := atx.GetBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if b.ProjectID != projectID {
		return nil, fmt.Errorf("%w: bid belongs to another project", ErrNotFound)
	}

	if err := atx.ClearWinningBids(ctx, projectID); err != nil {
		return nil, fmt.Errorf("clearing winning bids: %w", err)
	}

	if err := atx.MarkWinningBid(ctx, bidID); err != nil {
		return nil, fmt.Errorf("marking winning bid: %w", err)
	}

	oldStatus := p.Status
	p.Status = workflow.StatusInProgress
	p.ContractorID = &b.ContractorID

	details := project.ChangeDetails{
		BidID:        b.ID.String(),
		ContractorID: b.ContractorID.String(),
	}

	h, err := project.NewHistory(p.ID, actor.UserID, project.ActionBidAward, oldStatus, p.Status, details)
	if err != nil {
		return nil, err
	}

	if err := atx.ApplyTransition(ctx, p, h); err != nil {
		return nil, err
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing award: %w", project.ErrStorage, err)
	}

	b.IsWinning = true

	return p, nil
}

func (s *Service) RegisterContractor(ctx context.Context, c *Contractor, actor auth.Actor) error {
	if actor.Role != workflow.RoleBACSecretariat && actor.Role != workflow.RoleSystemAdministrator {
		return fmt.Errorf("%w: %s may not register contractors", project.ErrUnauthorized, actor.Role)
	}

	if c.Name == "" {
		return errors.New("contractor name is required")
	}

	return s.repo.CreateContractor(ctx, c)
}

func (s *Service) Contractors(ctx context.Context) ([]*Contractor, error) {
	return s.repo.ListContractors(ctx)
}
