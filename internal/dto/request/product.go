package request

import "github.com/google/uuid"

// EditProductRequest is a partial update: nil fields stay untouched.
type EditProductRequest struct {
	ProductName        *string  `json:"productName,omitempty" validate:"omitempty,min=1,max=200"`
	ProductDescription *string  `json:"productDescription,omitempty" validate:"omitempty,max=1000"`
	ProductBrand       *string  `json:"productBrand,omitempty" validate:"omitempty,min=1,max=100"`
	ProductColor       *string  `json:"productColor,omitempty" validate:"omitempty,max=50"`
	ProductQuantity    *int     `json:"productQuantity,omitempty" validate:"omitempty,min=0"`
	ProductPrice       *float64 `json:"productPrice,omitempty" validate:"omitempty,min=0"`
}

// ListProductsRequest is built from query parameters in the handler.
type ListProductsRequest struct {
	Limit        int
	Page         int
	ID           *uuid.UUID
	ProductName  string
	ProductBrand string
}
