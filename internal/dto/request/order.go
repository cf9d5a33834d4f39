package request

import "github.com/google/uuid"

type CreateOrderRequest struct {
	ProductID       string `json:"productId" validate:"required,uuid"`
	ProductQuantity int    `json:"productQuantity" validate:"required,min=1"`
}

// UpdateOrderRequest is a partial update: nil fields stay untouched.
type UpdateOrderRequest struct {
	ProductID       *string `json:"productId,omitempty" validate:"omitempty,uuid"`
	ProductQuantity *int    `json:"productQuantity,omitempty" validate:"omitempty,min=1"`
}

// ListOrdersRequest is built from query parameters in the handler.
type ListOrdersRequest struct {
	Limit int
	Page  int
	ID    *uuid.UUID
}
