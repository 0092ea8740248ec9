package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/forgotpassword", h.forgotPassword)
		r.Post("/verify-otp", h.verifyOTP)
		r.Post("/resetpassword", h.resetPassword)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/user", func(r chi.Router) {
			r.Delete("/delete", h.deleteAccount)
			r.Post("/change-password", h.changePassword)
			r.Post("/change-email", h.changeEmail)
		})
	})

	return router
}
