package repository

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductPatch carries the subset of fields to change in a partial update.
// Nil fields are left untouched.
type ProductPatch struct {
	ProductName        *string
	ProductDescription *string
	ProductBrand       *string
	ProductColor       *string
	ProductQuantity    *int
	ProductPrice       *float64
}

// ProductFilter narrows listing queries. Name and Brand use
// case-insensitive contains matching.
type ProductFilter struct {
	ID    *uuid.UUID
	Name  string
	Brand string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// CreateBatch inserts all products inside one transaction:
	// either every row is committed or none is.
	CreateBatch(ctx context.Context, products []*entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// Update applies a partial update and returns the number of rows matched.
	Update(ctx context.Context, id uuid.UUID, patch *ProductPatch) (int64, error)
	FindAll(ctx context.Context, filter *ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, filter *ProductFilter) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productInsert = `
	INSERT INTO products (id, product_name, product_description, product_brand,
	                      product_color, product_quantity, product_price,
	                      created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.db.Exec(ctx, productInsert,
		product.ID,
		product.ProductName,
		product.ProductDescription,
		product.ProductBrand,
		product.ProductColor,
		product.ProductQuantity,
		product.ProductPrice,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("product_name", product.ProductName),
		)
		return fmt.Errorf("create product %s: %w", product.ProductName, err)
	}

	return nil
}

func (r *productRepository) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin batch insert", zap.Error(err))
		return fmt.Errorf("begin product batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range products {
		if _, err := tx.Exec(ctx, productInsert,
			p.ID,
			p.ProductName,
			p.ProductDescription,
			p.ProductBrand,
			p.ProductColor,
			p.ProductQuantity,
			p.ProductPrice,
			p.CreatedAt,
			p.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to insert product in batch",
				zap.Error(err),
				zap.String("product_name", p.ProductName),
			)
			return fmt.Errorf("batch insert product %s: %w", p.ProductName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit product batch", zap.Error(err))
		return fmt.Errorf("commit product batch: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, product_name, product_description, product_brand,
		       product_color, product_quantity, product_price,
		       created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.ProductName,
		&product.ProductDescription,
		&product.ProductBrand,
		&product.ProductColor,
		&product.ProductQuantity,
		&product.ProductPrice,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id uuid.UUID, patch *ProductPatch) (int64, error) {
	// Build SET clause from the supplied fields only
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argCount := 2

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if patch.ProductName != nil {
		appendSet("product_name", *patch.ProductName)
	}
	if patch.ProductDescription != nil {
		appendSet("product_description", *patch.ProductDescription)
	}
	if patch.ProductBrand != nil {
		appendSet("product_brand", *patch.ProductBrand)
	}
	if patch.ProductColor != nil {
		appendSet("product_color", *patch.ProductColor)
	}
	if patch.ProductQuantity != nil {
		appendSet("product_quantity", *patch.ProductQuantity)
	}
	if patch.ProductPrice != nil {
		appendSet("product_price", *patch.ProductPrice)
	}

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $1", strings.Join(sets, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return 0, fmt.Errorf("update product %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}

// buildProductWhere appends filter conditions and returns the WHERE
// fragment plus positional args.
func buildProductWhere(filter *ProductFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}
	argCount := 1

	if filter != nil {
		if filter.ID != nil {
			conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
			args = append(args, *filter.ID)
			argCount++
		}
		if filter.Name != "" {
			conditions = append(conditions, fmt.Sprintf("product_name ILIKE $%d", argCount))
			args = append(args, "%"+filter.Name+"%")
			argCount++
		}
		if filter.Brand != "" {
			conditions = append(conditions, fmt.Sprintf("product_brand ILIKE $%d", argCount))
			args = append(args, "%"+filter.Brand+"%")
			argCount++
		}
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *productRepository) FindAll(ctx context.Context, filter *ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, product_name, product_description, product_brand,
		       product_color, product_quantity, product_price,
		       created_at, updated_at
		FROM products
	`)

	where, args := buildProductWhere(filter)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	// No limit means an unpaginated listing
	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.ProductName,
			&product.ProductDescription,
			&product.ProductBrand,
			&product.ProductColor,
			&product.ProductQuantity,
			&product.ProductPrice,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *ProductFilter) (int64, error) {
	where, args := buildProductWhere(filter)
	query := "SELECT COUNT(*) FROM products" + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}
