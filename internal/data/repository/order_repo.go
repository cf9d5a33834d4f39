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

// OrderPatch carries the fields a caller may change on an order.
// Nil fields are left untouched.
type OrderPatch struct {
	ProductID       *uuid.UUID
	ProductQuantity *int
}

// OrderFilter narrows listing queries. A non-nil UserID scopes the
// listing to that user's orders.
type OrderFilter struct {
	ID     *uuid.UUID
	UserID *uuid.UUID
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// Update applies a partial update and returns the number of rows matched.
	Update(ctx context.Context, id uuid.UUID, patch *OrderPatch) (int64, error)
	UpdateTotalCost(ctx context.Context, id uuid.UUID, totalCost float64) error
	// Delete removes the row permanently and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindAllWithUser(ctx context.Context, filter *OrderFilter, limit, offset int) ([]*entity.OrderWithUser, error)
	Count(ctx context.Context, filter *OrderFilter) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, product_id, product_price,
		                    product_quantity, total_cost, order_date,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.ProductID,
		order.ProductPrice,
		order.ProductQuantity,
		order.TotalCost,
		order.OrderDate,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
			zap.String("product_id", order.ProductID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, product_id, product_price, product_quantity,
		       total_cost, order_date, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.ProductPrice,
		&order.ProductQuantity,
		&order.TotalCost,
		&order.OrderDate,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, id uuid.UUID, patch *OrderPatch) (int64, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argCount := 2

	if patch.ProductID != nil {
		sets = append(sets, fmt.Sprintf("product_id = $%d", argCount))
		args = append(args, *patch.ProductID)
		argCount++
	}
	if patch.ProductQuantity != nil {
		sets = append(sets, fmt.Sprintf("product_quantity = $%d", argCount))
		args = append(args, *patch.ProductQuantity)
		argCount++
	}

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $1", strings.Join(sets, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return 0, fmt.Errorf("update order %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *orderRepository) UpdateTotalCost(ctx context.Context, id uuid.UUID, totalCost float64) error {
	query := `UPDATE orders SET total_cost = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, totalCost)
	if err != nil {
		r.log.Error("Failed to update order total cost",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.Float64("total_cost", totalCost),
		)
		return fmt.Errorf("update order %s total cost: %w", id.String(), err)
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return 0, fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}

func buildOrderWhere(filter *OrderFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}
	argCount := 1

	if filter != nil {
		if filter.ID != nil {
			conditions = append(conditions, fmt.Sprintf("o.id = $%d", argCount))
			args = append(args, *filter.ID)
			argCount++
		}
		if filter.UserID != nil {
			conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", argCount))
			args = append(args, *filter.UserID)
			argCount++
		}
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *orderRepository) FindAllWithUser(ctx context.Context, filter *OrderFilter, limit, offset int) ([]*entity.OrderWithUser, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT o.id, o.user_id, o.product_id, o.product_price,
		       o.product_quantity, o.total_cost, o.order_date,
		       o.created_at, o.updated_at, u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
	`)

	where, args := buildOrderWhere(filter)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY o.created_at DESC")

	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var orders []*entity.OrderWithUser
	for rows.Next() {
		var order entity.OrderWithUser
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ProductID,
			&order.ProductPrice,
			&order.ProductQuantity,
			&order.TotalCost,
			&order.OrderDate,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.UserName,
			&order.UserEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter *OrderFilter) (int64, error) {
	where, args := buildOrderWhere(filter)
	query := "SELECT COUNT(*) FROM orders o" + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}
