// Package report renders the public project register as CSV, the format
// transparency portals and oversight bodies ingest.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jpmercado/infratrack/internal/project"
)

type Service struct {
	projects *project.Service
}

func NewService(projects *project.Service) *Service {
	return &Service{projects: projects}
}

var registerHeader = []string{
	"id", "title", "category", "location", "implementing_office", "status",
	"estimated_cost", "approved_budget", "disbursed", "contractor_id",
	"created_at", "updated_at",
}

// WriteRegister streams the project register matching the filter as CSV.
// Amounts are written in pesos with two decimal places.
func (s *Service) WriteRegister(ctx context.Context, w io.Writer, filter project.ListFilter) error {
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(registerHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, p := range projects {
		if err := cw.Write(registerRow(p)); err != nil {
			return fmt.Errorf("writing row for project %s: %w", p.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func registerRow(p *project.Project) []string {
	approved := ""
	if p.ApprovedBudget != nil {
		approved = pesos(*p.ApprovedBudget)
	}

	contractor := ""
	if p.ContractorID != nil {
		contractor = p.ContractorID.String()
	}

	updated := ""
	if p.UpdatedAt != nil {
		updated = p.UpdatedAt.Format(time.RFC3339)
	}

	return []string{
		p.ID.String(),
		p.Title,
		p.Category,
		p.Location,
		p.Office,
		string(p.Status),
		pesos(p.EstimatedCost),
		approved,
		pesos(p.Disbursed),
		contractor,
		p.CreatedAt.Format(time.RFC3339),
		updated,
	}
}

// pesos formats centavos as a plain decimal peso amount, e.g. 123456789 -> "1234567.89".
func pesos(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}

	return sign + strconv.FormatInt(centavos/100, 10) + "." + fmt.Sprintf("%02d", centavos%100)
}
