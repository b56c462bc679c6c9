package project

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type projectResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Location       string          `json:"location,omitempty"`
	Office         string          `json:"office,omitempty"`
	Status         workflow.Status `json:"status"`
	EstimatedCost  int64           `json:"estimated_cost"`
	ApprovedBudget *int64          `json:"approved_budget,omitempty"`
	Disbursed      int64           `json:"disbursed"`
	ContractorID   *uuid.UUID      `json:"contractor_id,omitempty"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(p *project.Project) projectResponse {
	return projectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Location:       p.Location,
		Office:         p.Office,
		Status:         p.Status,
		EstimatedCost:  p.EstimatedCost,
		ApprovedBudget: p.ApprovedBudget,
		Disbursed:      p.Disbursed,
		ContractorID:   p.ContractorID,
		CreatedBy:      p.CreatedBy,
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type pageResponse struct {
	Items      []projectResponse `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

type historyResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProjectID  uuid.UUID       `json:"project_id"`
	ChangedBy  uuid.UUID       `json:"changed_by"`
	ActionType string          `json:"action_type"`
	OldStatus  workflow.Status `json:"old_status"`
	NewStatus  workflow.Status `json:"new_status"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toHistoryResponse(h *project.History) historyResponse {
	return historyResponse{
		ID:         h.ID,
		ProjectID:  h.ProjectID,
		ChangedBy:  h.ChangedBy,
		ActionType: h.ActionType,
		OldStatus:  h.OldStatus,
		NewStatus:  h.NewStatus,
		Details:    h.Details,
		CreatedAt:  h.CreatedAt,
	}
}
