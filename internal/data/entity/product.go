package entity

type Product struct {
	Base
	ProductName        string  `db:"product_name"`
	ProductDescription string  `db:"product_description"`
	ProductBrand       string  `db:"product_brand"`
	ProductColor       string  `db:"product_color"`
	ProductQuantity    int     `db:"product_quantity"`
	ProductPrice       float64 `db:"product_price"`
}
