package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/mailer"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, caller *utils.AuthUser, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	CancelOrder(ctx context.Context, id uuid.UUID, caller *utils.AuthUser) error
	ListOrders(ctx context.Context, caller *utils.AuthUser, req *request.ListOrdersRequest) (*response.PaginatedResponse[response.OrderWithUserResponse], error)
}

type orderService struct {
	repo *repository.Repository
	mail mailer.Mailer
	loc  *time.Location
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) OrderService {
	loc, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		log.Warn("Unknown timezone, falling back to local",
			zap.String("timezone", config.App.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &orderService{
		repo: repo,
		mail: mail,
		loc:  loc,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, caller *utils.AuthUser, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", req.ProductID, err)
	}

	// 1. Load product
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to load product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	// 2. Validate stock. The stock field is checked but never decremented:
	// two concurrent orders can both pass against the same stale read.
	if req.ProductQuantity > product.ProductQuantity {
		s.log.Warn("Insufficient stock for order",
			zap.String("product_id", req.ProductID),
			zap.Int("requested", req.ProductQuantity),
			zap.Int("stock", product.ProductQuantity),
		)
		return nil, ErrInsufficientStock
	}

	// 3. Snapshot price and persist
	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          caller.ID,
		ProductID:       product.ID,
		ProductPrice:    product.ProductPrice,
		ProductQuantity: req.ProductQuantity,
		TotalCost:       product.ProductPrice * float64(req.ProductQuantity),
		OrderDate:       now.In(s.loc),
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
			zap.String("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", caller.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", order.ProductQuantity),
		zap.Float64("total_cost", order.TotalCost),
	)

	// 4. Confirmation mail; failure never reverts the order
	s.sendConfirmationEmail(ctx, caller, order, product)

	return response.OrderToResponse(order), nil
}

func (s *orderService) sendConfirmationEmail(ctx context.Context, caller *utils.AuthUser, order *entity.Order, product *entity.Product) {
	// The registered email is read back from the store, not from the token
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil || user == nil {
		s.log.Error("Failed to load user for confirmation email",
			zap.Error(err), zap.String("user_id", caller.ID.String()))
		return
	}

	attachment := &mailer.Attachment{
		Filename: "orderDetails.txt",
		Content: []byte(fmt.Sprintf("orderId:%s\nProduct: %s\nQuantity: %d\nPrice: %g\nTotal Cost: %g",
			order.ID.String(), product.ProductName, order.ProductQuantity,
			order.ProductPrice, order.TotalCost)),
	}

	date := order.OrderDate.Format("02/01/2006")
	html := fmt.Sprintf("Hi %s,<br><br>Your order was confirmed on %s.<br><br>Order details are attached.",
		user.Name, date)

	if err := s.mail.Send(user.Email, "Order Confirmed", html, attachment); err != nil {
		s.log.Error("Failed to send order confirmation email",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
			zap.String("email", user.Email),
		)
	}
}

func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	patch := &repository.OrderPatch{
		ProductQuantity: req.ProductQuantity,
	}
	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID format %s: %w", *req.ProductID, err)
		}
		patch.ProductID = &productID
	}

	// 1. Apply partial update
	matched, err := s.repo.Order.Update(ctx, id, patch)
	if err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("update order: %w", err)
	}
	if matched == 0 {
		return nil, ErrOrderNotFound
	}

	// 2. Refetch the possibly product-re-pointed order
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to refetch order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("refetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// 3. Recompute total cost from the current catalog price. Stock is
	// not re-validated here, matching order creation's one-time check.
	product, err := s.repo.Product.FindByID(ctx, order.ProductID)
	if err != nil {
		s.log.Error("Failed to load product for recompute",
			zap.Error(err), zap.String("product_id", order.ProductID.String()))
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	totalCost := product.ProductPrice * float64(order.ProductQuantity)
	if err := s.repo.Order.UpdateTotalCost(ctx, id, totalCost); err != nil {
		return nil, fmt.Errorf("recompute total cost: %w", err)
	}
	order.TotalCost = totalCost

	s.log.Info("Order updated",
		zap.String("order_id", id.String()),
		zap.Float64("total_cost", totalCost),
	)

	return response.OrderToResponse(order), nil
}

func (s *orderService) CancelOrder(ctx context.Context, id uuid.UUID, caller *utils.AuthUser) error {
	// 1. Hard delete; a cancelled order leaves no row behind
	removed, err := s.repo.Order.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to cancel order", zap.Error(err), zap.String("order_id", id.String()))
		return fmt.Errorf("cancel order: %w", err)
	}
	if removed == 0 {
		return ErrOrderNotFound
	}

	s.log.Info("Order cancelled",
		zap.String("order_id", id.String()),
		zap.String("user_id", caller.ID.String()),
	)

	// 2. Cancellation mail to the caller; the deletion stands either way
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to load user for cancellation email",
			zap.Error(err), zap.String("user_id", caller.ID.String()))
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	date := time.Now().In(s.loc).Format("02/01/2006")
	html := fmt.Sprintf("Hi %s,<br><br>Your order with id %s has been cancelled on %s.",
		user.Name, id.String(), date)

	if err := s.mail.Send(user.Email, "Order Cancelled", html, nil); err != nil {
		s.log.Error("Failed to send cancellation email",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("email", user.Email),
		)
	}

	return nil
}

func (s *orderService) ListOrders(ctx context.Context, caller *utils.AuthUser, req *request.ListOrdersRequest) (*response.PaginatedResponse[response.OrderWithUserResponse], error) {
	filter := &repository.OrderFilter{
		ID: req.ID,
	}

	// Ownership is enforced at the query-filter level: a USER is always
	// scoped to their own orders, whatever id was asked for. ADMIN sees all.
	if caller.Role != entity.RoleAdmin {
		userID := caller.ID
		filter.UserID = &userID
	}

	total, err := s.repo.Order.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	offset := utils.CalculateOffset(req.Page, req.Limit)

	orders, err := s.repo.Order.FindAllWithUser(ctx, filter, req.Limit, offset)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	items := make([]response.OrderWithUserResponse, len(orders))
	for i, o := range orders {
		items[i] = response.OrderWithUserToResponse(o)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}
