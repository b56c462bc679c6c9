package bid_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/bid"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

func actorWith(role workflow.Role) auth.Actor {
	return auth.Actor{UserID: uuid.New(), Role: role}
}

func openProject() *project.Project {
	return &project.Project{
		ID:      uuid.New(),
		Title:   "Municipal Health Center Expansion",
		Status:  workflow.StatusOpenForBidding,
		Version: 5,
	}
}

// newServices wires a bid service over mocked bid and project repositories.
func newServices(ctrl *gomock.Controller) (*bid.Service, *bid.MockRepository, *project.MockRepository) {
	bidRepo := bid.NewMockRepository(ctrl)
	projRepo := project.NewMockRepository(ctrl)
	svc := bid.NewService(bidRepo, project.NewService(projRepo))

	return svc, bidRepo, projRepo
}

func TestService_Submit(t *testing.T) {
	now := time.Now()

	openWindow := &bid.Invitation{
		OpensAt:  now.Add(-24 * time.Hour),
		ClosesAt: now.Add(24 * time.Hour),
	}
	closedWindow := &bid.Invitation{
		OpensAt:  now.Add(-48 * time.Hour),
		ClosesAt: now.Add(-time.Hour),
	}
	futureWindow := &bid.Invitation{
		OpensAt:  now.Add(time.Hour),
		ClosesAt: now.Add(48 * time.Hour),
	}

	type testCase struct {
		name       string
		actor      auth.Actor
		amount     int64
		status     workflow.Status
		invitation *bid.Invitation
		wantErr    error
	}

	tests := []testCase{
		{
			name:       "WithinWindow",
			actor:      actorWith(workflow.RoleContractor),
			amount:     90_000_000,
			status:     workflow.StatusOpenForBidding,
			invitation: openWindow,
		},
		{
			name:       "AfterClosingDate",
			actor:      actorWith(workflow.RoleContractor),
			amount:     90_000_000,
			status:     workflow.StatusOpenForBidding,
			invitation: closedWindow,
			wantErr:    bid.ErrBiddingClosed,
		},
		{
			name:       "BeforeOpeningDate",
			actor:      actorWith(workflow.RoleContractor),
			amount:     90_000_000,
			status:     workflow.StatusOpenForBidding,
			invitation: futureWindow,
			wantErr:    bid.ErrBiddingNotOpen,
		},
		{
			name:    "ProjectNotOpen",
			actor:   actorWith(workflow.RoleContractor),
			amount:  90_000_000,
			status:  workflow.StatusFunded,
			wantErr: project.ErrInvalidStatus,
		},
		{
			name:    "WrongRole",
			actor:   actorWith(workflow.RolePlanner),
			amount:  90_000_000,
			wantErr: project.ErrUnauthorized,
		},
		{
			name:    "NonPositiveAmount",
			actor:   actorWith(workflow.RoleContractor),
			amount:  0,
			wantErr: project.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, bidRepo, projRepo := newServices(ctrl)

			p := openProject()
			p.Status = workflow.StatusOpenForBidding
			if tt.status != "" {
				p.Status = tt.status
			}

			contractorID := uuid.New()

			if tt.status != "" {
				projRepo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
			}

			if tt.invitation != nil {
				bidRepo.EXPECT().GetContractor(gomock.Any(), contractorID).Return(&bid.Contractor{ID: contractorID}, nil)
				bidRepo.EXPECT().GetInvitation(gomock.Any(), p.ID).Return(tt.invitation, nil)
			}

			if tt.wantErr == nil {
				bidRepo.EXPECT().
					CreateBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *bid.Bid) error {
						b.ID = uuid.New()
						return nil
					})
			}

			got, err := svc.Submit(context.Background(), bid.SubmitParams{
				ProjectID:    p.ID,
				ContractorID: contractorID,
				Amount:       tt.amount,
				Proposal:     "sealed bid",
				Actor:        tt.actor,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, p.ID, got.ProjectID)
			assert.False(t, got.IsWinning, "a fresh bid must not be winning")
		})
	}
}

// Awarding a bid is one unit: sibling flags cleared, the chosen bid marked,
// contractor assigned, and the status transition with its history row, all
// inside the same transaction.
func TestService_AcceptAward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, bidRepo, _ := newServices(ctrl)

	p := openProject()
	contractorID := uuid.New()
	winning := &bid.Bid{ID: uuid.New(), ProjectID: p.ID, ContractorID: contractorID, Amount: 90_000_000}
	actor := actorWith(workflow.RoleBACSecretariat)

	atx := bid.NewMockAwardTx(ctrl)
	bidRepo.EXPECT().BeginAward(gomock.Any()).Return(atx, nil)

	gomock.InOrder(
		atx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil),
		atx.EXPECT().GetBid(gomock.Any(), winning.ID).Return(winning, nil),
		atx.EXPECT().ClearWinningBids(gomock.Any(), p.ID).Return(nil),
		atx.EXPECT().MarkWinningBid(gomock.Any(), winning.ID).Return(nil),
		atx.EXPECT().
			ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got *project.Project, h *project.History) error {
				assert.Equal(t, workflow.StatusInProgress, got.Status)
				require.NotNil(t, got.ContractorID)
				assert.Equal(t, contractorID, *got.ContractorID)
				assert.Equal(t, project.ActionBidAward, h.ActionType)
				assert.Equal(t, workflow.StatusOpenForBidding, h.OldStatus)
				assert.Equal(t, workflow.StatusInProgress, h.NewStatus)
				return nil
			}),
		atx.EXPECT().Commit().Return(nil),
	)
	atx.EXPECT().Rollback().Return(nil)

	updated, err := svc.AcceptAward(context.Background(), p.ID, winning.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusInProgress, updated.Status)
	assert.True(t, winning.IsWinning)
}

func TestService_AcceptAward_Rejections(t *testing.T) {
	t.Run("WrongRole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newServices(ctrl)

		_, err := svc.AcceptAward(context.Background(), uuid.New(), uuid.New(), actorWith(workflow.RoleContractor))
		assert.ErrorIs(t, err, project.ErrUnauthorized)
	})

	t.Run("ProjectNotOpenForBidding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, bidRepo, _ := newServices(ctrl)

		p := openProject()
		p.Status = workflow.StatusInProgress

		atx := bid.NewMockAwardTx(ctrl)
		bidRepo.EXPECT().BeginAward(gomock.Any()).Return(atx, nil)
		atx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
		atx.EXPECT().Rollback().Return(nil)

		_, err := svc.AcceptAward(context.Background(), p.ID, uuid.New(), actorWith(workflow.RoleBACSecretariat))
		assert.ErrorIs(t, err, project.ErrInvalidStatus)
	})

	t.Run("BidFromAnotherProject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, bidRepo, _ := newServices(ctrl)

		p := openProject()
		foreign := &bid.Bid{ID: uuid.New(), ProjectID: uuid.New(), ContractorID: uuid.New()}

		atx := bid.NewMockAwardTx(ctrl)
		bidRepo.EXPECT().BeginAward(gomock.Any()).Return(atx, nil)
		atx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
		atx.EXPECT().GetBid(gomock.Any(), foreign.ID).Return(foreign, nil)
		atx.EXPECT().Rollback().Return(nil)

		_, err := svc.AcceptAward(context.Background(), p.ID, foreign.ID, actorWith(workflow.RoleBACSecretariat))
		assert.ErrorIs(t, err, bid.ErrNotFound)
	})

	t.Run("FailedStepAbortsWholeAward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, bidRepo, _ := newServices(ctrl)

		p := openProject()
		winning := &bid.Bid{ID: uuid.New(), ProjectID: p.ID, ContractorID: uuid.New()}

		atx := bid.NewMockAwardTx(ctrl)
		bidRepo.EXPECT().BeginAward(gomock.Any()).Return(atx, nil)
		atx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
		atx.EXPECT().GetBid(gomock.Any(), winning.ID).Return(winning, nil)
		atx.EXPECT().ClearWinningBids(gomock.Any(), p.ID).Return(nil)
		atx.EXPECT().MarkWinningBid(gomock.Any(), winning.ID).Return(nil)
		atx.EXPECT().
			ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(project.ErrConcurrentModification)
		atx.EXPECT().Rollback().Return(nil)
		// No Commit expectation: a failing step must abort without committing.

		_, err := svc.AcceptAward(context.Background(), p.ID, winning.ID, actorWith(workflow.RoleBACSecretariat))
		assert.ErrorIs(t, err, project.ErrConcurrentModification)
		assert.False(t, winning.IsWinning)
	})
}

func TestService_PublishInvitation(t *testing.T) {
	now := time.Now()

	t.Run("OpensBidding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, bidRepo, _ := newServices(ctrl)

		p := openProject()
		p.Status = workflow.StatusFunded
		actor := actorWith(workflow.RoleBACSecretariat)

		ptx := bid.NewMockPublishTx(ctrl)
		bidRepo.EXPECT().BeginPublish(gomock.Any()).Return(ptx, nil)
		gomock.InOrder(
			ptx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil),
			ptx.EXPECT().
				CreateInvitation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv *bid.Invitation) error {
					inv.ID = uuid.New()
					return nil
				}),
			ptx.EXPECT().
				ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, got *project.Project, h *project.History) error {
					assert.Equal(t, workflow.StatusOpenForBidding, got.Status)
					assert.Equal(t, workflow.StatusFunded, h.OldStatus)
					return nil
				}),
			ptx.EXPECT().Commit().Return(nil),
		)
		ptx.EXPECT().Rollback().Return(nil)

		inv, err := svc.PublishInvitation(context.Background(), bid.PublishParams{
			ProjectID: p.ID,
			Reference: "ITB-2026-0042",
			OpensAt:   now,
			ClosesAt:  now.Add(14 * 24 * time.Hour),
			Actor:     actor,
		})
		require.NoError(t, err)
		assert.Equal(t, p.ID, inv.ProjectID)
	})

	t.Run("NotFundedWritesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, bidRepo, _ := newServices(ctrl)

		p := openProject()
		p.Status = workflow.StatusPendingReview

		ptx := bid.NewMockPublishTx(ctrl)
		bidRepo.EXPECT().BeginPublish(gomock.Any()).Return(ptx, nil)
		ptx.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
		ptx.EXPECT().Rollback().Return(nil)
		// No CreateInvitation, ApplyTransition or Commit expectation: a
		// project that is not funded must be rejected before any row is
		// written, so a later legitimate publish still succeeds.

		_, err := svc.PublishInvitation(context.Background(), bid.PublishParams{
			ProjectID: p.ID,
			Reference: "ITB-2026-0042",
			OpensAt:   now,
			ClosesAt:  now.Add(14 * 24 * time.Hour),
			Actor:     actorWith(workflow.RoleBACSecretariat),
		})
		assert.ErrorIs(t, err, project.ErrInvalidStatus)
	})

	t.Run("ClosingBeforeOpening", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newServices(ctrl)

		_, err := svc.PublishInvitation(context.Background(), bid.PublishParams{
			ProjectID: uuid.New(),
			OpensAt:   now,
			ClosesAt:  now.Add(-time.Hour),
			Actor:     actorWith(workflow.RoleBACSecretariat),
		})
		assert.Error(t, err)
	})

	t.Run("WrongRole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newServices(ctrl)

		_, err := svc.PublishInvitation(context.Background(), bid.PublishParams{
			ProjectID: uuid.New(),
			OpensAt:   now,
			ClosesAt:  now.Add(time.Hour),
			Actor:     actorWith(workflow.RoleBudgetOfficer),
		})
		assert.ErrorIs(t, err, project.ErrUnauthorized)
	})
}
