package milestone

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/milestone"
	"github.com/jpmercado/infratrack/internal/project"
)

type Handler struct {
	svc *milestone.Service
}

func NewHandler(svc *milestone.Service) *Handler {
	return &Handler{svc: svc}
}

// ProjectRoutes registers the milestone endpoints nested under /projects.
func (h *Handler) ProjectRoutes(r chi.Router) {
	r.Post("/{projectID}/milestones", h.create)
	r.Get("/{projectID}/milestones", h.list)
	r.Patch("/{projectID}/milestones/{id}", h.updateProgress)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, milestone.ErrNotFound), errors.Is(err, project.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, milestone.ErrInvalidStatus), errors.Is(err, milestone.ErrInvalidCompletion):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type milestoneResponse struct {
	ID            uuid.UUID        `json:"id"`
	ProjectID     uuid.UUID        `json:"project_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	OrderSequence int              `json:"order_sequence"`
	Completion    int              `json:"completion"`
	Status        milestone.Status `json:"status"`
	CreatedBy     uuid.UUID        `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(m *milestone.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		Title:         m.Title,
		Description:   m.Description,
		OrderSequence: m.OrderSequence,
		Completion:    m.Completion,
		Status:        m.Status,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type createMilestoneRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OrderSequence int    `json:"order_sequence"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var req createMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), milestone.CreateParams{
		ProjectID:     projectID,
		Title:         req.Title,
		Description:   req.Description,
		OrderSequence: req.OrderSequence,
		Actor:         actor,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	milestones, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	resp := make([]milestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		resp = append(resp, toResponse(m))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type progressRequest struct {
	Completion int              `json:"completion"`
	Status     milestone.Status `json:"status"`
}

func (h *Handler) updateProgress(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.UpdateProgress(r.Context(), id, milestone.ProgressParams{
		Completion: req.Completion,
		Status:     req.Status,
		Actor:      actor,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
