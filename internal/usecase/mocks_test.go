package usecase

import (
	"context"
	"strings"
	"sync"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/mailer"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	for _, p := range products {
		if err := f.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id uuid.UUID, patch *repository.ProductPatch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return 0, nil
	}
	if patch.ProductName != nil {
		product.ProductName = *patch.ProductName
	}
	if patch.ProductDescription != nil {
		product.ProductDescription = *patch.ProductDescription
	}
	if patch.ProductBrand != nil {
		product.ProductBrand = *patch.ProductBrand
	}
	if patch.ProductColor != nil {
		product.ProductColor = *patch.ProductColor
	}
	if patch.ProductQuantity != nil {
		product.ProductQuantity = *patch.ProductQuantity
	}
	if patch.ProductPrice != nil {
		product.ProductPrice = *patch.ProductPrice
	}
	return 1, nil
}

func (f *fakeProductRepo) matches(product *entity.Product, filter *repository.ProductFilter) bool {
	if filter == nil {
		return true
	}
	if filter.ID != nil && product.ID != *filter.ID {
		return false
	}
	if filter.Name != "" && !strings.Contains(strings.ToLower(product.ProductName), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Brand != "" && !strings.Contains(strings.ToLower(product.ProductBrand), strings.ToLower(filter.Brand)) {
		return false
	}
	return true
}

func (f *fakeProductRepo) all(filter *repository.ProductFilter) []*entity.Product {
	var result []*entity.Product
	for _, product := range f.products {
		if f.matches(product, filter) {
			copied := *product
			result = append(result, &copied)
		}
	}
	return result
}

func (f *fakeProductRepo) FindAll(_ context.Context, filter *repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := f.all(filter)
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeProductRepo) Count(_ context.Context, filter *repository.ProductFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.all(filter))), nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
	users  *fakeUserRepo
}

func newFakeOrderRepo(users *fakeUserRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), users: users}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, id uuid.UUID, patch *repository.OrderPatch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return 0, nil
	}
	if patch.ProductID != nil {
		order.ProductID = *patch.ProductID
	}
	if patch.ProductQuantity != nil {
		order.ProductQuantity = *patch.ProductQuantity
	}
	return 1, nil
}

func (f *fakeOrderRepo) UpdateTotalCost(_ context.Context, id uuid.UUID, totalCost float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order, ok := f.orders[id]; ok {
		order.TotalCost = totalCost
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return 0, nil
	}
	delete(f.orders, id)
	return 1, nil
}

func (f *fakeOrderRepo) matches(order *entity.Order, filter *repository.OrderFilter) bool {
	if filter == nil {
		return true
	}
	if filter.ID != nil && order.ID != *filter.ID {
		return false
	}
	if filter.UserID != nil && order.UserID != *filter.UserID {
		return false
	}
	return true
}

func (f *fakeOrderRepo) FindAllWithUser(_ context.Context, filter *repository.OrderFilter, limit, offset int) ([]*entity.OrderWithUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.OrderWithUser
	for _, order := range f.orders {
		if !f.matches(order, filter) {
			continue
		}
		row := &entity.OrderWithUser{Order: *order}
		if user, ok := f.users.users[order.UserID]; ok {
			row.UserName = user.Name
			row.UserEmail = user.Email
		}
		result = append(result, row)
	}
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeOrderRepo) Count(_ context.Context, filter *repository.OrderFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, order := range f.orders {
		if f.matches(order, filter) {
			count++
		}
	}
	return count, nil
}

type sentMail struct {
	To         string
	Subject    string
	Body       string
	Attachment *mailer.Attachment
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, htmlBody string, attachment *mailer.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody, Attachment: attachment})
	return nil
}

type testEnv struct {
	users    *fakeUserRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
	mail     *fakeMailer
	repo     *repository.Repository
	config   *utils.Config
	service  *Service
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(users)
	mail := &fakeMailer{}

	repo := &repository.Repository{
		User:    users,
		Product: products,
		Order:   orders,
	}

	config := &utils.Config{
		App: utils.AppConfig{Timezone: "Asia/Kolkata"},
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 2},
	}

	return &testEnv{
		users:    users,
		products: products,
		orders:   orders,
		mail:     mail,
		repo:     repo,
		config:   config,
		service:  NewService(repo, mail, config, zap.NewNop()),
	}
}
