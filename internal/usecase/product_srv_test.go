package usecase

import (
	"bytes"
	"context"
	"testing"

	"ecommerce-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	workbook := excelize.NewFile()
	defer workbook.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestUploadProducts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	sheet := buildWorkbook(t, [][]interface{}{
		{"productName", "productDescription", "productBrand", "productColor", "productQuantity", "productPrice"},
		{"Keyboard", "Mechanical, 87 keys", "Keychron", "Black", 25, 89.99},
		{"Mouse", "Wireless", "Logitech", "White", 40, 24.5},
	})

	resp, err := env.service.Product.UploadProducts(ctx, sheet)
	require.NoError(t, err)
	require.Len(t, resp, 2)

	count, err := env.products.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.Equal(t, "Keyboard", resp[0].ProductName)
	assert.Equal(t, "Keychron", resp[0].ProductBrand)
	assert.Equal(t, 25, resp[0].ProductQuantity)
	assert.Equal(t, 89.99, resp[0].ProductPrice)
}

func TestUploadProducts_ShuffledColumns(t *testing.T) {
	env := newTestEnv()

	// Column order is taken from the header row, not assumed
	sheet := buildWorkbook(t, [][]interface{}{
		{"productPrice", "productName", "productQuantity"},
		{12.5, "Cable", 100},
	})

	resp, err := env.service.Product.UploadProducts(context.Background(), sheet)
	require.NoError(t, err)
	require.Len(t, resp, 1)

	assert.Equal(t, "Cable", resp[0].ProductName)
	assert.Equal(t, 100, resp[0].ProductQuantity)
	assert.Equal(t, 12.5, resp[0].ProductPrice)
	assert.Empty(t, resp[0].ProductBrand)
}

func TestUploadProducts_NilFile(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Product.UploadProducts(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestUploadProducts_BadQuantityRejectsWholeSheet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	sheet := buildWorkbook(t, [][]interface{}{
		{"productName", "productQuantity", "productPrice"},
		{"Keyboard", 25, 89.99},
		{"Mouse", "plenty", 24.5},
	})

	_, err := env.service.Product.UploadProducts(ctx, sheet)
	require.Error(t, err)

	count, err := env.products.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEditProduct_PartialUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	product := seedProduct(t, env, "Keyboard", 5, 100)

	name := "Keyboard Pro"
	price := 120.0
	resp, err := env.service.Product.EditProduct(ctx, product.ID, &request.EditProductRequest{
		ProductName:  &name,
		ProductPrice: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Keyboard Pro", resp.ProductName)
	assert.Equal(t, 120.0, resp.ProductPrice)

	// Untouched fields keep their values
	assert.Equal(t, "Generic", resp.ProductBrand)
	assert.Equal(t, 5, resp.ProductQuantity)
}

func TestEditProduct_NotFound(t *testing.T) {
	env := newTestEnv()

	name := "Keyboard Pro"
	_, err := env.service.Product.EditProduct(context.Background(), uuid.New(), &request.EditProductRequest{
		ProductName: &name,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProducts_BrandFilter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seedProduct(t, env, "Keyboard", 5, 100)
	seedProduct(t, env, "Mouse", 5, 25)
	other := seedProduct(t, env, "Headset", 5, 60)
	other.ProductBrand = "Acme"
	require.NoError(t, env.products.Create(ctx, other))

	resp, err := env.service.Product.ListProducts(ctx, &request.ListProductsRequest{
		ProductBrand: "acm",
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Headset", resp.Data[0].ProductName)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}

func TestListProducts_Pagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		seedProduct(t, env, name, 1, 10)
	}

	resp, err := env.service.Product.ListProducts(ctx, &request.ListProductsRequest{
		Limit: 2,
		Page:  3,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestListProducts_NoLimitReturnsAll(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		seedProduct(t, env, name, 1, 10)
	}

	resp, err := env.service.Product.ListProducts(ctx, &request.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Zero(t, resp.Pagination.TotalPages)
}

func TestListProducts_ByID(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seedProduct(t, env, "Keyboard", 5, 100)
	target := seedProduct(t, env, "Mouse", 5, 25)

	resp, err := env.service.Product.ListProducts(ctx, &request.ListProductsRequest{
		ID: &target.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, target.ID.String(), resp.Data[0].ID)
}
