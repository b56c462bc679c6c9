package project

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/workflow"
)

var (
	ErrNotFound = errors.New("project not found")

	// ErrUnauthorized rejects a transition the actor's role may not perform
	// from the project's current status.
	ErrUnauthorized = errors.New("role not authorized for transition")

	// ErrInvalidStatus rejects a target status outside the defined set, or a
	// status pair no role may ever perform.
	ErrInvalidStatus = errors.New("invalid status transition")

	// ErrInvalidAmount rejects budget figures violating the disbursement
	// bound or a missing/non-positive approved amount on funding.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrConcurrentModification rejects a write against a project version
	// that another actor has already moved past.
	ErrConcurrentModification = errors.New("project modified concurrently")

	// ErrStorage wraps a failed atomic write; the project is unchanged.
	ErrStorage = errors.New("storage failure")
)

// Project is a tracked government project. Status is the single source of
// truth for its lifecycle stage; Version guards concurrent status writes.
type Project struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Category       string
	Location       string
	Office         string
	Status         workflow.Status
	EstimatedCost  int64 // centavos
	ApprovedBudget *int64
	Disbursed      int64
	ContractorID   *uuid.UUID
	CreatedBy      uuid.UUID
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// History action types.
const (
	ActionStatusChange = "status_change"
	ActionDisbursement = "disbursement"
	ActionBidAward     = "bid_award"
)

// History is one append-only audit record. Rows are never updated or
// deleted; every status mutation produces exactly one.
type History struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	ChangedBy  uuid.UUID
	ActionType string
	OldStatus  workflow.Status
	NewStatus  workflow.Status
	Details    json.RawMessage
	CreatedAt  time.Time
}

// ChangeDetails is the structured payload recorded with each history row.
type ChangeDetails struct {
	Comments       string `json:"comments,omitempty"`
	ApprovedBudget *int64 `json:"approved_budget,omitempty"`
	Disbursed      *int64 `json:"amount_disbursed,omitempty"`
	BidID          string `json:"bid_id,omitempty"`
	ContractorID   string `json:"contractor_id,omitempty"`
}
