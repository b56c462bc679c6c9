package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/table"
	"github.com/jpmercado/infratrack/internal/workflow"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=portal
type Repository interface {
	StatusCounts(ctx context.Context) (map[string]int64, error)
	BudgetTotals(ctx context.Context) (approved, disbursed int64, err error)
	CategoryRollups(ctx context.Context) ([]CategoryRollup, error)
}

type Service struct {
	repo     Repository
	projects *project.Service
}

func NewService(repo Repository, projects *project.Service) *Service {
	return &Service{repo: repo, projects: projects}
}

// Register returns one page of the public project register. The free-text
// filter matches title, category, location, office and status; sorting is
// by title.
func (s *Service) Register(ctx context.Context, q table.Query) (table.Page[Summary], error) {
	projects, err := s.projects.List(ctx, project.ListFilter{})
	if err != nil {
		return table.Page[Summary]{}, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]Summary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, toSummary(p))
	}

	return table.Apply(summaries, q, summaryFields, byTitle), nil
}

func summaryFields(s Summary) []string {
	return []string{s.Title, s.Category, s.Location, s.Office, string(s.Status)}
}

func byTitle(a, b Summary) bool {
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}

// Stats aggregates the portal landing-page figures.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting by status: %w", err)
	}

	approved, disbursed, err := s.repo.BudgetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("totaling budgets: %w", err)
	}

	rollups, err := s.repo.CategoryRollups(ctx)
	if err != nil {
		return nil, fmt.Errorf("rolling up categories: %w", err)
	}

	stats := &Stats{
		ByStatus:       make(map[workflow.Status]int64, len(counts)),
		TotalApproved:  approved,
		TotalDisbursed: disbursed,
		ByCategory:     rollups,
	}

	for status, n := range counts {
		stats.ByStatus[workflow.Status(status)] = n
		stats.TotalProjects += n
	}

	return stats, nil
}
