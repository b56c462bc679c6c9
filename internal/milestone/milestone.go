package milestone

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("milestone not found")
	ErrInvalidStatus     = errors.New("invalid milestone status")
	ErrInvalidCompletion = errors.New("completion must be between 0 and 100")
)

// Status of a single milestone, independent of the owning project's
// lifecycle stage.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDelayed    Status = "delayed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusDelayed:
		return true
	}

	return false
}

// Milestone is an ordered sub-unit of a project with its own completion
// percentage. It has no lifecycle beyond its parent project.
type Milestone struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	Title         string
	Description   string
	OrderSequence int
	Completion    int // percent, 0-100
	Status        Status
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
