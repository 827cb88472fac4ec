package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/oticaroyal/panel/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.WithIP, mw.Log, mw.Recover, mw.Cors)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/cep/{cep}", h.LookupCEP)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Clients)
				r.Post("/", h.CreateClient)
				r.Get("/{id}", h.ClientByID)
				r.Put("/{id}", h.UpdateClient)
				r.With(mw.RequireAdmin).Delete("/{id}", h.DeleteClient)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Orders)
				r.Post("/", h.CreateOrder)
				r.Get("/next-number", h.NextOrderNumber)
				r.Get("/{id}", h.OrderByID)
				r.Put("/{id}", h.UpdateOrder)
				r.Get("/{id}/pdf", h.DownloadOrderDocument)
				r.With(mw.RequireAdmin).Delete("/{id}", h.DeleteOrder)
			})

			r.Route("/sellers", func(r chi.Router) {
				r.Use(mw.RequireAdmin)

				r.Get("/", h.Sellers)
				r.Post("/", h.CreateSeller)
				r.Get("/{id}", h.SellerByID)
				r.Put("/{id}", h.UpdateSeller)
				r.Delete("/{id}", h.DeleteSeller)
			})
		})
	})

	return router
}
