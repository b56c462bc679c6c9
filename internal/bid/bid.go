package bid

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("bid not found")
	ErrInvitationNotFound = errors.New("bid invitation not found")
	ErrContractorNotFound = errors.New("contractor not found")

	// ErrBiddingNotOpen rejects a bid before the invitation window opens,
	// ErrBiddingClosed one after the closing date. Both are checked at
	// submission time, not by the database.
	ErrBiddingNotOpen = errors.New("bidding not yet open")
	ErrBiddingClosed  = errors.New("bidding closed")
)

// Bid is a contractor's offer against a project open for bidding. At most
// one bid per project carries IsWinning; the award operation enforces it.
type Bid struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	ContractorID uuid.UUID
	Amount       int64 // centavos
	Proposal     string
	IsWinning    bool
	SubmittedBy  uuid.UUID
	CreatedAt    time.Time
}

// Invitation is the published solicitation for a project, defining the
// window in which bids are accepted.
type Invitation struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Reference   string
	Notes       string
	OpensAt     time.Time
	ClosesAt    time.Time
	PublishedBy uuid.UUID
	CreatedAt   time.Time
}

// Contractor is a registered bidder.
type Contractor struct {
	ID            uuid.UUID
	Name          string
	LicenseNumber string
	Email         string
	CreatedAt     time.Time
}
