package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (no auth middleware)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
}
