package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ProductService interface {
	// UploadProducts parses an xlsx sheet into product rows and inserts
	// them as one atomic batch.
	UploadProducts(ctx context.Context, file io.Reader) ([]*response.ProductResponse, error)
	EditProduct(ctx context.Context, id uuid.UUID, req *request.EditProductRequest) (*response.ProductResponse, error)
	ListProducts(ctx context.Context, req *request.ListProductsRequest) (*response.PaginatedResponse[*response.ProductResponse], error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) UploadProducts(ctx context.Context, file io.Reader) ([]*response.ProductResponse, error) {
	if file == nil {
		return nil, ErrNoFile
	}

	products, err := parseProductSheet(file)
	if err != nil {
		s.log.Warn("Failed to parse product sheet", zap.Error(err))
		return nil, fmt.Errorf("parse product sheet: %w", err)
	}

	if err := s.repo.Product.CreateBatch(ctx, products); err != nil {
		s.log.Error("Failed to insert product batch", zap.Error(err), zap.Int("rows", len(products)))
		return nil, fmt.Errorf("insert product batch: %w", err)
	}

	s.log.Info("Products uploaded", zap.Int("count", len(products)))

	result := make([]*response.ProductResponse, len(products))
	for i, p := range products {
		result[i] = response.ProductToResponse(p)
	}
	return result, nil
}

// parseProductSheet reads the first sheet of an xlsx workbook. The header
// row names the columns; rows missing a mapped header cell are read as
// empty values.
func parseProductSheet(file io.Reader) ([]*entity.Product, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheets[0])
	}

	// Map column index by header name
	headers := make(map[string]int)
	for i, name := range rows[0] {
		headers[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, header string) string {
		idx, ok := headers[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	now := time.Now()
	products := make([]*entity.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		quantity, err := strconv.Atoi(cell(row, "productQuantity"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid productQuantity: %w", i+2, err)
		}
		price, err := strconv.ParseFloat(cell(row, "productPrice"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid productPrice: %w", i+2, err)
		}

		products = append(products, &entity.Product{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ProductName:        cell(row, "productName"),
			ProductDescription: cell(row, "productDescription"),
			ProductBrand:       cell(row, "productBrand"),
			ProductColor:       cell(row, "productColor"),
			ProductQuantity:    quantity,
			ProductPrice:       price,
		})
	}

	return products, nil
}

func (s *productService) EditProduct(ctx context.Context, id uuid.UUID, req *request.EditProductRequest) (*response.ProductResponse, error) {
	patch := &repository.ProductPatch{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductBrand:       req.ProductBrand,
		ProductColor:       req.ProductColor,
		ProductQuantity:    req.ProductQuantity,
		ProductPrice:       req.ProductPrice,
	}

	matched, err := s.repo.Product.Update(ctx, id, patch)
	if err != nil {
		s.log.Error("Failed to edit product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("edit product: %w", err)
	}
	if matched == 0 {
		return nil, ErrProductNotFound
	}

	// Return the refetched record
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to refetch product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("refetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.log.Info("Product edited", zap.String("product_id", id.String()))

	return response.ProductToResponse(product), nil
}

func (s *productService) ListProducts(ctx context.Context, req *request.ListProductsRequest) (*response.PaginatedResponse[*response.ProductResponse], error) {
	filter := &repository.ProductFilter{
		ID:    req.ID,
		Name:  req.ProductName,
		Brand: req.ProductBrand,
	}

	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	offset := utils.CalculateOffset(req.Page, req.Limit)

	products, err := s.repo.Product.FindAll(ctx, filter, req.Limit, offset)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]*response.ProductResponse, len(products))
	for i, p := range products {
		items[i] = response.ProductToResponse(p)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}
