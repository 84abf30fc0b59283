package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/go_backend/internal/app/config"
	"quotedesk/go_backend/internal/app/controller"
	"quotedesk/go_backend/internal/app/http/handlers"
	"quotedesk/go_backend/internal/app/http/middleware"
	"quotedesk/go_backend/internal/domain/quote/pdf"
)

func NewRouter(cfg config.Config, ctrl *controller.Controller, gen pdf.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(ctrl, gen)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.ListCatalog)
			r.Post("/", h.CreateItem)
			r.Post("/pull", h.PullCatalog)
			r.Put("/{id}", h.UpdateItem)
			r.Delete("/{id}", h.DeleteItem)
		})

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", h.GetDraft)
			r.Post("/", h.NewDraft)
			r.Put("/", h.UpdateDraft)
			r.Delete("/", h.DiscardDraft)
			r.Post("/save", h.SaveDraft)
			r.Post("/lines", h.AddLine)
			r.Patch("/lines/{lineId}", h.UpdateLine)
			r.Delete("/lines/{lineId}", h.RemoveLine)
		})

		r.Get("/quotes", h.ListQuotes)
		r.Delete("/quotes/{id}", h.DeleteQuote)
		r.Post("/quotes/{id}/restore", h.RestoreQuote)
		r.Get("/quotes/{id}/pdf", h.QuotePDF)

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.PutSettings)
		r.Get("/settings/status", h.SettingsStatus)
	})

	return r
}
