package http

import (
	"net/http"

	"github.com/MKhiriev/roya-gateway/internal/app"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultLoginViewPath  = "/login"
	defaultMaxUploadBytes = 10 << 20
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.opts.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.opts.RequestTimeout))
	}

	// local routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/login", h.loginView)
	})

	// routes backed by the remote services
	router.Group(func(r chi.Router) {
		r.Use(h.requireConfigured)

		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/me", h.me)
		r.With(h.matchTokenSubject).Patch("/users/{user_id}", h.updateUser)
		r.With(h.matchTokenSubject).Delete("/users/{user_id}", h.deleteUser)

		r.Post("/upload", h.upload)
		r.Get("/images", h.images)
		r.Get("/photos", h.photos)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
