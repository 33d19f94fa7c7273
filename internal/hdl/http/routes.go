package http

import (
	mid "github.com/JMURv/go-attractions/internal/hdl/http/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterRoutes() {
	h.Router.Route(
		"/auth", func(r chi.Router) {
			r.Use(mid.RateLimit(h.conf.RateLimit.AuthRPS, h.conf.RateLimit.AuthBurst))
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		},
	)

	owner := mid.Auth(h.au, h.conf.Auth.Enforce, mid.AuthOpts{CheckOwner: true})
	h.Router.Route(
		"/users/{id}", func(r chi.Router) {
			r.Use(owner)
			r.Get("/biometrics", h.getBiometrics)
			r.Put("/biometrics", h.setBiometrics)
			r.Put("/avatar", h.updateAvatar)
			r.Post("/avatar", h.uploadAvatar)
		},
	)

	authed := mid.Auth(h.au, h.conf.Auth.Enforce, mid.AuthOpts{})
	h.Router.Get("/attractions", h.listAttractions)
	h.Router.With(authed).Post("/attractions", h.createAttraction)
	h.Router.With(authed).Delete("/attractions", h.deleteAttractions)
	h.Router.With(authed).Post("/attractions/images", h.uploadAttractionImage)

	h.Router.Get("/categories", h.listCategories)
	h.Router.With(authed).Post("/categories", h.createCategory)
}
