// Package portal exposes the public transparency endpoints. Nothing here
// sits behind authentication.
package portal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/portal"
	"github.com/jpmercado/infratrack/internal/project"
	"github.com/jpmercado/infratrack/internal/report"
	"github.com/jpmercado/infratrack/internal/table"
	"github.com/jpmercado/infratrack/internal/workflow"
)

type Handler struct {
	svc       *portal.Service
	reportSvc *report.Service
}

func NewHandler(svc *portal.Service, reportSvc *report.Service) *Handler {
	return &Handler{svc: svc, reportSvc: reportSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/projects", h.register)
	r.Get("/stats", h.stats)
	r.Get("/register.csv", h.registerCSV)
}

type summaryResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category,omitempty"`
	Location       string          `json:"location,omitempty"`
	Office         string          `json:"office,omitempty"`
	Status         workflow.Status `json:"status"`
	EstimatedCost  int64           `json:"estimated_cost"`
	ApprovedBudget *int64          `json:"approved_budget,omitempty"`
	Disbursed      int64           `json:"disbursed"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

type registerResponse struct {
	Items      []summaryResponse `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.svc.Register(r.Context(), q)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := registerResponse{
		Items:      make([]summaryResponse, 0, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for _, s := range page.Items {
		resp.Items = append(resp.Items, summaryResponse{
			ID:             s.ID,
			Title:          s.Title,
			Category:       s.Category,
			Location:       s.Location,
			Office:         s.Office,
			Status:         s.Status,
			EstimatedCost:  s.EstimatedCost,
			ApprovedBudget: s.ApprovedBudget,
			Disbursed:      s.Disbursed,
			CreatedAt:      s.CreatedAt,
			UpdatedAt:      s.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type statsResponse struct {
	TotalProjects  int64                     `json:"total_projects"`
	ByStatus       map[workflow.Status]int64 `json:"by_status"`
	TotalApproved  int64                     `json:"total_approved"`
	TotalDisbursed int64                     `json:"total_disbursed"`
	ByCategory     []categoryRollupResponse  `json:"by_category"`
}

type categoryRollupResponse struct {
	Category       string `json:"category"`
	Projects       int64  `json:"projects"`
	TotalApproved  int64  `json:"total_approved"`
	TotalDisbursed int64  `json:"total_disbursed"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := statsResponse{
		TotalProjects:  stats.TotalProjects,
		ByStatus:       stats.ByStatus,
		TotalApproved:  stats.TotalApproved,
		TotalDisbursed: stats.TotalDisbursed,
		ByCategory:     make([]categoryRollupResponse, 0, len(stats.ByCategory)),
	}
	for _, c := range stats.ByCategory {
		resp.ByCategory = append(resp.ByCategory, categoryRollupResponse{
			Category:       c.Category,
			Projects:       c.Projects,
			TotalApproved:  c.TotalApproved,
			TotalDisbursed: c.TotalDisbursed,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) registerCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"project_register_%s.csv\"", time.Now().Format("20060102")))

	if err := h.reportSvc.WriteRegister(r.Context(), w, project.ListFilter{}); err != nil {
		slog.Error("failed to write project register", "error", err)
	}
}
