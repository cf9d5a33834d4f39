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

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	userOnly := middleware.Authenticate(repo.User, config.JWT, log, entity.RoleUser)
	anyRole := middleware.Authenticate(repo.User, config.JWT, log, entity.RoleAdmin, entity.RoleUser)

	// Order workflow (user)
	r.Group(func(r chi.Router) {
		r.Use(userOnly)

		r.Post("/createOrder", orderHandler.CreateOrder)
		r.Put("/updateOrder/{id}", orderHandler.UpdateOrder)
		r.Delete("/cancelOrder/{id}", orderHandler.CancelOrder)
	})

	// Order listing (admin sees all, user sees own)
	r.With(anyRole).Get("/listOrders", orderHandler.ListOrders)
}
