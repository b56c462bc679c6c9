package project_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

func actorWith(role workflow.Role) auth.Actor {
	return auth.Actor{UserID: uuid.New(), Role: role, Email: string(role) + "@lgu.gov.ph"}
}

func projectAt(status workflow.Status) *project.Project {
	return &project.Project{
		ID:            uuid.New(),
		Title:         "Barangay Farm-to-Market Road",
		Category:      "infrastructure",
		Status:        status,
		EstimatedCost: 150_000_000,
		CreatedBy:     uuid.New(),
		Version:       3,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    project.CreateParams
		setupMock func(m *project.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "PlannerSubmitsProposal",
			params: project.CreateParams{
				Title:         "Drainage Rehabilitation",
				Category:      "flood_control",
				Location:      "Barangay San Roque",
				EstimatedCost: 25_000_000,
				Actor:         actorWith(workflow.RolePlanner),
			},
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().
					CreateProject(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *project.Project) error {
						p.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ContractorMayNotSubmit",
			params: project.CreateParams{
				Title:         "Drainage Rehabilitation",
				EstimatedCost: 25_000_000,
				Actor:         actorWith(workflow.RoleContractor),
			},
			wantErr: project.ErrUnauthorized,
		},
		{
			name: "NegativeEstimate",
			params: project.CreateParams{
				Title:         "Drainage Rehabilitation",
				EstimatedCost: -1,
				Actor:         actorWith(workflow.RolePlanner),
			},
			wantErr: project.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := project.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := project.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, workflow.StatusPendingReview, got.Status)
			assert.Equal(t, tt.params.Actor.UserID, got.CreatedBy)
		})
	}
}

// A successful transition applies the status mutation and exactly one
// matching history record through a single repository call.
func TestService_Transition_AppliesStatusAndHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	p := projectAt(workflow.StatusPendingReview)
	actor := actorWith(workflow.RoleDevelopmentCouncil)

	repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *project.Project, h *project.History) error {
			assert.Equal(t, workflow.StatusPrioritized, got.Status)
			assert.Equal(t, project.ActionStatusChange, h.ActionType)
			assert.Equal(t, workflow.StatusPendingReview, h.OldStatus)
			assert.Equal(t, workflow.StatusPrioritized, h.NewStatus)
			assert.Equal(t, actor.UserID, h.ChangedBy)

			var details project.ChangeDetails
			require.NoError(t, json.Unmarshal(h.Details, &details))
			assert.Equal(t, "approved", details.Comments)

			got.Version++
			return nil
		})

	updated, err := svc.Transition(context.Background(), p.ID, project.TransitionParams{
		Status:   workflow.StatusPrioritized,
		Actor:    actor,
		Comments: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusPrioritized, updated.Status)
	assert.Equal(t, int64(4), updated.Version)
}

// Rejections must happen before any write: no ApplyTransition expectation is
// registered, so a repository call would fail these cases. Repeating the same
// rejected call yields the identical error kind.
func TestService_Transition_Rejections(t *testing.T) {
	type testCase struct {
		name    string
		from    workflow.Status
		params  project.TransitionParams
		wantErr error
	}

	approved := func(n int64) *int64 { return &n }

	tests := []testCase{
		{
			name: "PlannerNotAuthorized",
			from: workflow.StatusPendingReview,
			params: project.TransitionParams{
				Status: workflow.StatusPrioritized,
				Actor:  actorWith(workflow.RolePlanner),
			},
			wantErr: project.ErrUnauthorized,
		},
		{
			name: "InspectorCannotFund",
			from: workflow.StatusPrioritized,
			params: project.TransitionParams{
				Status: workflow.StatusFunded,
				Actor:  actorWith(workflow.RoleTechnicalInspector),
			},
			wantErr: project.ErrUnauthorized,
		},
		{
			name: "UndefinedEdge",
			from: workflow.StatusPendingReview,
			params: project.TransitionParams{
				Status: workflow.StatusCompleted,
				Actor:  actorWith(workflow.RoleSystemAdministrator),
			},
			wantErr: project.ErrInvalidStatus,
		},
		{
			name: "TerminalStatusHasNoExit",
			from: workflow.StatusCancelled,
			params: project.TransitionParams{
				Status: workflow.StatusPendingReview,
				Actor:  actorWith(workflow.RoleSystemAdministrator),
			},
			wantErr: project.ErrInvalidStatus,
		},
		{
			name: "FundingWithoutBudget",
			from: workflow.StatusPrioritized,
			params: project.TransitionParams{
				Status: workflow.StatusFunded,
				Actor:  actorWith(workflow.RoleBudgetOfficer),
			},
			wantErr: project.ErrInvalidAmount,
		},
		{
			name: "DisbursedExceedsApproved",
			from: workflow.StatusPrioritized,
			params: project.TransitionParams{
				Status:         workflow.StatusFunded,
				Actor:          actorWith(workflow.RoleBudgetOfficer),
				ApprovedBudget: approved(100_000_000),
				Disbursed:      approved(120_000_000),
			},
			wantErr: project.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := project.NewMockRepository(ctrl)
			svc := project.NewService(repo)

			p := projectAt(tt.from)
			repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil).Times(2)

			_, err := svc.Transition(context.Background(), p.ID, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)

			// Identical inputs, identical rejection.
			_, again := svc.Transition(context.Background(), p.ID, tt.params)
			assert.ErrorIs(t, again, tt.wantErr)

			assert.Equal(t, tt.from, p.Status, "rejected transition must not mutate the project")
		})
	}
}

func TestService_Transition_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	// Rejected before the project is even read.
	_, err := svc.Transition(context.Background(), uuid.New(), project.TransitionParams{
		Status: "archived",
		Actor:  actorWith(workflow.RoleSystemAdministrator),
	})
	assert.ErrorIs(t, err, project.ErrInvalidStatus)
}

func TestService_Transition_Funding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	p := projectAt(workflow.StatusPrioritized)
	budget := int64(100_000_000)

	repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
	repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	updated, err := svc.Transition(context.Background(), p.ID, project.TransitionParams{
		Status:         workflow.StatusFunded,
		Actor:          actorWith(workflow.RoleBudgetOfficer),
		ApprovedBudget: &budget,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ApprovedBudget)
	assert.Equal(t, budget, *updated.ApprovedBudget)
	assert.LessOrEqual(t, updated.Disbursed, *updated.ApprovedBudget)
}

func TestService_Transition_ConcurrentModification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := project.NewMockRepository(ctrl)
	svc := project.NewService(repo)

	p := projectAt(workflow.StatusPendingReview)

	repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(project.ErrConcurrentModification)

	_, err := svc.Transition(context.Background(), p.ID, project.TransitionParams{
		Status: workflow.StatusPrioritized,
		Actor:  actorWith(workflow.RoleDevelopmentCouncil),
	})
	assert.ErrorIs(t, err, project.ErrConcurrentModification)
}

func TestService_RecordDisbursement(t *testing.T) {
	budget := int64(100_000_000)

	type testCase struct {
		name      string
		amount    int64
		disbursed int64
		actor     auth.Actor
		wantErr   error
		wantTotal int64
	}

	tests := []testCase{
		{
			name:      "WithinBudget",
			amount:    40_000_000,
			disbursed: 50_000_000,
			actor:     actorWith(workflow.RoleBudgetOfficer),
			wantTotal: 90_000_000,
		},
		{
			name:      "ExceedsBudget",
			amount:    60_000_000,
			disbursed: 50_000_000,
			actor:     actorWith(workflow.RoleBudgetOfficer),
			wantErr:   project.ErrInvalidAmount,
		},
		{
			name:    "WrongRole",
			amount:  1,
			actor:   actorWith(workflow.RoleContractor),
			wantErr: project.ErrUnauthorized,
		},
		{
			name:    "NonPositive",
			amount:  0,
			actor:   actorWith(workflow.RoleBudgetOfficer),
			wantErr: project.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := project.NewMockRepository(ctrl)
			svc := project.NewService(repo)

			p := projectAt(workflow.StatusInProgress)
			p.ApprovedBudget = &budget
			p.Disbursed = tt.disbursed

			if tt.wantErr == nil || tt.wantErr == project.ErrInvalidAmount && tt.amount > 0 {
				repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
			}

			if tt.wantErr == nil {
				repo.EXPECT().
					ApplyTransition(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, got *project.Project, h *project.History) error {
						assert.Equal(t, project.ActionDisbursement, h.ActionType)
						assert.Equal(t, h.OldStatus, h.NewStatus)
						return nil
					})
			}

			got, err := svc.RecordDisbursement(context.Background(), p.ID, tt.amount, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Disbursed)
		})
	}
}
