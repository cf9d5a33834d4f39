package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type OrderResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ProductID       string    `json:"productId"`
	ProductPrice    float64   `json:"productPrice"`
	ProductQuantity int       `json:"productQuantity"`
	TotalCost       float64   `json:"totalCost"`
	OrderDate       time.Time `json:"orderDate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderWithUserResponse adds the owning user's name and email for listings.
type OrderWithUserResponse struct {
	OrderResponse
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

func OrderToResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		ProductID:       order.ProductID.String(),
		ProductPrice:    order.ProductPrice,
		ProductQuantity: order.ProductQuantity,
		TotalCost:       order.TotalCost,
		OrderDate:       order.OrderDate,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrderWithUserToResponse(order *entity.OrderWithUser) OrderWithUserResponse {
	return OrderWithUserResponse{
		OrderResponse: *OrderToResponse(&order.Order),
		UserName:      order.UserName,
		UserEmail:     order.UserEmail,
	}
}
