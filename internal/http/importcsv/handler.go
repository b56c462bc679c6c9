package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpmercado/infratrack/internal/auth"
	"github.com/jpmercado/infratrack/internal/catalog"
	"github.com/jpmercado/infratrack/internal/importer"
	"github.com/jpmercado/infratrack/internal/project"
)

type Handler struct {
	importSvc  *importer.Service
	projectSvc *project.Service
	catalogSvc *catalog.Service
}

func NewHandler(importSvc *importer.Service, projectSvc *project.Service, catalogSvc *catalog.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		projectSvc: projectSvc,
		catalogSvc: catalogSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type createdProposal struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Office string    `json:"office,omitempty"`
}

type importSuccessResponse struct {
	Imported  int               `json:"imported"`
	Proposals []createdProposal `json:"proposals"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		http.Error(w, "source field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Canonicalize implementing-office names; unmatched names pass through
	// as typed.
	for i, p := range params {
		if p.Office == "" {
			continue
		}

		canonical, err := h.catalogSvc.Suggest(r.Context(), p.Office)
		if err != nil || canonical == "" {
			continue
		}

		params[i].Office = canonical
	}

	created := make([]createdProposal, 0, len(params))

	for _, p := range params {
		p.Actor = actor

		proj, err := h.projectSvc.Create(r.Context(), p)
		if err != nil {
			if errors.Is(err, project.ErrUnauthorized) {
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		created = append(created, createdProposal{
			ID:     proj.ID,
			Title:  proj.Title,
			Office: proj.Office,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		Imported:  len(created),
		Proposals: created,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
