package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type ProductResponse struct {
	ID                 string    `json:"id"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	ProductBrand       string    `json:"productBrand"`
	ProductColor       string    `json:"productColor"`
	ProductQuantity    int       `json:"productQuantity"`
	ProductPrice       float64   `json:"productPrice"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ProductToResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:                 product.ID.String(),
		ProductName:        product.ProductName,
		ProductDescription: product.ProductDescription,
		ProductBrand:       product.ProductBrand,
		ProductColor:       product.ProductColor,
		ProductQuantity:    product.ProductQuantity,
		ProductPrice:       product.ProductPrice,
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}
