package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	adminOnly := middleware.Authenticate(repo.User, config.JWT, log, entity.RoleAdmin)
	anyRole := middleware.Authenticate(repo.User, config.JWT, log, entity.RoleAdmin, entity.RoleUser)

	// Catalog management (admin)
	r.With(adminOnly).Post("/uploadProducts", productHandler.UploadProducts)
	r.With(adminOnly).Put("/editProduct/{id}", productHandler.EditProduct)

	// Catalog listing (any authenticated role)
	r.With(anyRole).Get("/listProducts", productHandler.ListProducts)
}
