package adaptor

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// businessErrors are returned to the caller as 400; anything else is a
// generic 500 with no internal detail.
var businessErrors = []error{
	usecase.ErrEmailTaken,
	usecase.ErrUserNotFound,
	usecase.ErrInvalidCredentials,
	usecase.ErrProductNotFound,
	usecase.ErrOrderNotFound,
	usecase.ErrInsufficientStock,
	usecase.ErrNoFile,
}

func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			log.Warn("Operation rejected",
				zap.String("operation", operation),
				zap.Error(err),
			)
			utils.ResponseBadRequest(w, be.Error(), nil)
			return
		}
	}

	log.Error("Failed to "+operation, zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}
