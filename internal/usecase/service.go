package usecase

import (
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/mailer"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Product: NewProductService(repo, log),
		Order:   NewOrderService(repo, mail, config, log),
	}
}
