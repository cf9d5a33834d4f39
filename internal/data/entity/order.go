package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Base
	UserID    uuid.UUID `db:"user_id"`
	ProductID uuid.UUID `db:"product_id"`
	// ProductPrice is the unit price snapshot taken at order time,
	// independent of later catalog price changes.
	ProductPrice    float64   `db:"product_price"`
	ProductQuantity int       `db:"product_quantity"`
	TotalCost       float64   `db:"total_cost"`
	OrderDate       time.Time `db:"order_date"`
}

// OrderWithUser is an order row joined with the owning user's
// name and email for listing.
type OrderWithUser struct {
	Order
	UserName  string `db:"name"`
	UserEmail string `db:"email"`
}
