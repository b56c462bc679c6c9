package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jpmercado/infratrack/internal/auth"
	bidhttp "github.com/jpmercado/infratrack/internal/http/bid"
	cataloghttp "github.com/jpmercado/infratrack/internal/http/catalog"
	"github.com/jpmercado/infratrack/internal/http/importcsv"
	milestonehttp "github.com/jpmercado/infratrack/internal/http/milestone"
	portalhttp "github.com/jpmercado/infratrack/internal/http/portal"
	projecthttp "github.com/jpmercado/infratrack/internal/http/project"
)

func New(
	verifier *auth.Verifier,
	projectsV1 *projecthttp.Handler,
	biddingV1 *bidhttp.Handler,
	milestonesV1 *milestonehttp.Handler,
	catalogV1 *cataloghttp.Handler,
	importV1 *importcsv.Handler,
	portalV1 *portalhttp.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Staff endpoints sit behind the bearer-token check.
		r.Group(func(r chi.Router) {
			r.Use(verifier.Middleware)

			r.Route("/projects", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				projectsV1.Routes(r)
				biddingV1.ProjectRoutes(r)
				milestonesV1.ProjectRoutes(r)
			})

			r.Route("/contractors", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				biddingV1.ContractorRoutes(r)
			})

			r.Route("/offices", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				catalogV1.Routes(r)
			})

			// Multipart upload, so no content-type restriction here.
			r.Route("/import", importV1.Routes)
		})

		// The transparency portal takes no authentication.
		r.Route("/portal", portalV1.Routes)
	})

	return router
}
