package project

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/table"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type Handler struct {
	svc *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/history", h.history)
	r.Patch("/{id}/status", h.transition)
	r.Post("/{id}/disbursements", h.disburse)
}

// errStatus maps domain errors to HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, project.ErrInvalidStatus), errors.Is(err, project.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, project.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type createProjectRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Office        string `json:"office"`
	EstimatedCost int64  `json:"estimated_cost"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateParams{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		Office:        req.Office,
		EstimatedCost: req.EstimatedCost,
		Actor:         actor,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// tableQuery reads the shared list parameters: q, sort, page, page_size.
func tableQuery(r *http.Request) table.Query {
	q := table.Query{
		Filter:   r.URL.Query().Get("q"),
		SortDesc: r.URL.Query().Get("sort") == "desc",
		Page:     1,
		PageSize: 20,
	}

	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			q.Page = n
		}
	}

	if s := r.URL.Query().Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			q.PageSize = n
		}
	}

	return q
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := project.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := workflow.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}

	projects, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	page := table.Apply(projects, tableQuery(r),
		func(p *project.Project) []string {
			return []string{p.Title, p.Category, p.Location, p.Office, string(p.Status)}
		},
		func(a, b *project.Project) bool { return a.CreatedAt.Before(b.CreatedAt) },
	)

	resp := pageResponse{
		Items:      make([]projectResponse, 0, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for _, p := range page.Items {
		resp.Items = append(resp.Items, toResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	resp := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toHistoryResponse(rec))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type transitionRequest struct {
	Status         workflow.Status `json:"status"`
	Comments       string          `json:"comments"`
	ApprovedBudget *int64          `json:"approved_budget,omitempty"`
	Disbursed      *int64          `json:"disbursed,omitempty"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
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

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Transition(r.Context(), id, project.TransitionParams{
		Status:         req.Status,
		Actor:          actor,
		Comments:       req.Comments,
		ApprovedBudget: req.ApprovedBudget,
		Disbursed:      req.Disbursed,
	})
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type disburseRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) disburse(w http.ResponseWriter, r *http.Request) {
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

	var req disburseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.RecordDisbursement(r.Context(), id, req.Amount, actor)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
