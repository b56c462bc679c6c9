package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/report"
	"github.com/jpmercado/infratrack/internal/workflow"
)

func TestService_WriteRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)
	contractorID := uuid.New()
	approvedBudget := int64(520000000)

	funded := &project.Project{
		ID:             uuid.New(),
		Title:          "Farm-to-Market Road Phase 2",
		Category:       "infrastructure",
		Location:       "Barangay Malaya",
		Office:         "Municipal Engineering Office",
		Status:         workflow.StatusInProgress,
		EstimatedCost:  550000000,
		ApprovedBudget: &approvedBudget,
		Disbursed:      130000050,
		ContractorID:   &contractorID,
		CreatedAt:      created,
		UpdatedAt:      &updated,
	}

	pending := &project.Project{
		ID:            uuid.New(),
		Title:         "Day Care Center Repair",
		Category:      "social",
		Status:        workflow.StatusPendingReview,
		EstimatedCost: 35000000,
		CreatedAt:     created,
	}

	repo.EXPECT().
		ListProjects(gomock.Any(), project.ListFilter{}).
		Return([]*project.Project{funded, pending}, nil)

	svc := report.NewService(project.NewService(repo))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteRegister(context.Background(), &buf, project.ListFilter{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "status", rows[0][5])

	assert.Equal(t, funded.ID.String(), rows[1][0])
	assert.Equal(t, "Farm-to-Market Road Phase 2", rows[1][1])
	assert.Equal(t, "Municipal Engineering Office", rows[1][4])
	assert.Equal(t, "in_progress", rows[1][5])
	assert.Equal(t, "5500000.00", rows[1][6])
	assert.Equal(t, "5200000.00", rows[1][7])
	assert.Equal(t, "1300000.50", rows[1][8])
	assert.Equal(t, contractorID.String(), rows[1][9])
	assert.Equal(t, "2026-03-01T08:00:00Z", rows[1][10])
	assert.Equal(t, "2026-05-10T09:30:00Z", rows[1][11])

	assert.Equal(t, "pending_review", rows[2][5])
	assert.Empty(t, rows[2][7], "unfunded project has no approved budget")
	assert.Empty(t, rows[2][9], "unawarded project has no contractor")
	assert.Empty(t, rows[2][11])
}
