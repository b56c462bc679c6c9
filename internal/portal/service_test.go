package portal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpmercado/infratrack/internal/portal"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/table"
	"github.com/jpmercado/infratrack/internal/workflow"
)

func publicProject(title, category, location string, status workflow.Status) *project.Project {
	return &project.Project{
		ID:       uuid.New(),
		Title:    title,
		Category: category,
		Location: location,
		Status:   status,
	}
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	projectRepo := project.NewMockRepository(ctrl)

	projectRepo.EXPECT().
		ListProjects(gomock.Any(), project.ListFilter{}).
		Return([]*project.Project{
			publicProject("Drainage Improvement", "infrastructure", "Rizal St.", workflow.StatusInProgress),
			publicProject("Day Care Center Repair", "social", "Poblacion", workflow.StatusPendingReview),
			publicProject("Access Road Concreting", "infrastructure", "Barangay Malaya", workflow.StatusCompleted),
		}, nil)

	svc := portal.NewService(portal.NewMockRepository(ctrl), project.NewService(projectRepo))

	page, err := svc.Register(context.Background(), table.Query{Filter: "infrastructure", PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Items, 2)

	// Title sort, ascending by default.
	assert.Equal(t, "Access Road Concreting", page.Items[0].Title)
	assert.Equal(t, "Drainage Improvement", page.Items[1].Title)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := portal.NewMockRepository(ctrl)

	repo.EXPECT().StatusCounts(gomock.Any()).Return(map[string]int64{
		"pending_review": 4,
		"in_progress":    2,
		"completed":      1,
	}, nil)
	repo.EXPECT().BudgetTotals(gomock.Any()).Return(int64(900000000), int64(350000000), nil)
	repo.EXPECT().CategoryRollups(gomock.Any()).Return([]portal.CategoryRollup{
		{Category: "infrastructure", Projects: 5, TotalApproved: 700000000, TotalDisbursed: 300000000},
		{Category: "social", Projects: 2, TotalApproved: 200000000, TotalDisbursed: 50000000},
	}, nil)

	svc := portal.NewService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalProjects)
	assert.Equal(t, int64(4), stats.ByStatus[workflow.StatusPendingReview])
	assert.Equal(t, int64(900000000), stats.TotalApproved)
	assert.Equal(t, int64(350000000), stats.TotalDisbursed)
	require.Len(t, stats.ByCategory, 2)
	assert.Equal(t, "infrastructure", stats.ByCategory[0].Category)
}
