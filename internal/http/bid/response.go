package bid

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/bid"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type invitationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Reference   string    `json:"reference"`
	Notes       string    `json:"notes,omitempty"`
	OpensAt     time.Time `json:"opens_at"`
	ClosesAt    time.Time `json:"closes_at"`
	PublishedBy uuid.UUID `json:"published_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInvitationResponse(inv *bid.Invitation) invitationResponse {
	return invitationResponse{
		ID:          inv.ID,
		ProjectID:   inv.ProjectID,
		Reference:   inv.Reference,
		Notes:       inv.Notes,
		OpensAt:     inv.OpensAt,
		ClosesAt:    inv.ClosesAt,
		PublishedBy: inv.PublishedBy,
		CreatedAt:   inv.CreatedAt,
	}
}

type bidResponse struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	ContractorID uuid.UUID `json:"contractor_id"`
	Amount       int64     `json:"amount"`
	Proposal     string    `json:"proposal,omitempty"`
	IsWinning    bool      `json:"is_winning"`
	SubmittedBy  uuid.UUID `json:"submitted_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func toBidResponse(b *bid.Bid) bidResponse {
	return bidResponse{
		ID:           b.ID,
		ProjectID:    b.ProjectID,
		ContractorID: b.ContractorID,
		Amount:       b.Amount,
		Proposal:     b.Proposal,
		IsWinning:    b.IsWinning,
		SubmittedBy:  b.SubmittedBy,
		CreatedAt:    b.CreatedAt,
	}
}

type awardResponse struct {
	ProjectID    uuid.UUID       `json:"project_id"`
	Status       workflow.Status `json:"status"`
	ContractorID *uuid.UUID      `json:"contractor_id,omitempty"`
	Version      int64           `json:"version"`
}

func toAwardResponse(p *project.Project) awardResponse {
	return awardResponse{
		ProjectID:    p.ID,
		Status:       p.Status,
		ContractorID: p.ContractorID,
		Version:      p.Version,
	}
}

type contractorResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toContractorResponse(c *bid.Contractor) contractorResponse {
	return contractorResponse{
		ID:            c.ID,
		Name:          c.Name,
		LicenseNumber: c.LicenseNumber,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
	}
}
