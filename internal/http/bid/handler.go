package bid

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/bid"
	"github.com/jpmercado/infratrack/internal/project"
)

type Handler struct {
	svc *bid.Service
}

func NewHandler(svc *bid.Service) *Handler {
	return &Handler{svc: svc}
}

// ProjectRoutes registers the bidding endpoints nested under /projects.
func (h *Handler) ProjectRoutes(r chi.Router) {
	r.Post("/{projectID}/invitation", h.publish)
	r.Get("/{projectID}/invitation", h.invitation)
	r.Post("/{projectID}/bids", h.submit)
	r.Get("/{projectID}/bids", h.list)
	r.Post("/{projectID}/award", h.award)
}

func (h *Handler) ContractorRoutes(r chi.Router) {
	r.Post("/", h.registerContractor)
	r.Get("/", h.contractors)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, bid.ErrNotFound),
		errors.Is(err, bid.ErrInvitationNotFound),
		errors.Is(err, bid.ErrContractorNotFound),
		errors.Is(err, project.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, bid.ErrBiddingNotOpen),
		errors.Is(err, bid.ErrBiddingClosed),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, project.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func projectID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "projectID"))
}

type publishRequest struct {
	Reference string    `json:"reference"`
	Notes     string    `json:"notes"`
	OpensAt   time.Time `json:"opens_at"`
	ClosesAt  time.Time `json:"closes_at"`
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.PublishInvitation(r.Context(), bid.PublishParams{
		ProjectID: id,
		Reference: req.Reference,
		Notes:     req.Notes,
		OpensAt:   req.OpensAt,
		ClosesAt:  req.ClosesAt,
		Actor:     actor,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toInvitationResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) invitation(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Invitation(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toInvitationResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type submitRequest struct {
	ContractorID uuid.UUID `json:"contractor_id"`
	Amount       int64     `json:"amount"`
	Proposal     string    `json:"proposal"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Submit(r.Context(), bid.SubmitParams{
		ProjectID:    id,
		ContractorID: req.ContractorID,
		Amount:       req.Amount,
		Proposal:     req.Proposal,
		Actor:        actor,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toBidResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	bids, err := h.svc.List(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	resp := make([]bidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, toBidResponse(b))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type awardRequest struct {
	BidID uuid.UUID `json:"bid_id"`
}

func (h *Handler) award(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := projectID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var req awardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.AcceptAward(r.Context(), id, req.BidID, actor)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAwardResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type registerContractorRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Email         string `json:"email"`
}

func (h *Handler) registerContractor(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req registerContractorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := &bid.Contractor{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Email:         req.Email,
	}
	if err := h.svc.RegisterContractor(r.Context(), c, actor); err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toContractorResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) contractors(w http.ResponseWriter, r *http.Request) {
	contractors, err := h.svc.Contractors(r.Context())
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	resp := make([]contractorResponse, 0, len(contractors))
	for _, c := range contractors {
		resp = append(resp, toContractorResponse(c))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
