// Package portal serves the public transparency views: the project register
// and aggregate spending figures. Nothing here requires authentication, so
// summaries carry only fields fit for publication.
package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

// Summary is the public projection of a project.
type Summary struct {
	ID             uuid.UUID
	Title          string
	Category       string
	Location       string
	Office         string
	Status         workflow.Status
	EstimatedCost  int64
	ApprovedBudget *int64
	Disbursed      int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Stats are the aggregate figures shown on the portal landing page.
type Stats struct {
	TotalProjects  int64
	ByStatus       map[workflow.Status]int64
	TotalApproved  int64
	TotalDisbursed int64
	ByCategory     []CategoryRollup
}

// CategoryRollup aggregates spending per project category.
type CategoryRollup struct {
	Category       string
	Projects       int64
	TotalApproved  int64
	TotalDisbursed int64
}

func toSummary(p *project.Project) Summary {
	return Summary{
		ID:             p.ID,
		Title:          p.Title,
		Category:       p.Category,
		Location:       p.Location,
		Office:         p.Office,
		Status:         p.Status,
		EstimatedCost:  p.EstimatedCost,
		ApprovedBudget: p.ApprovedBudget,
		Disbursed:      p.Disbursed,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
