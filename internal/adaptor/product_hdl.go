package adaptor

import (
	"encoding/json"
	"net/http"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20 // 32 MB

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// UploadProducts handles POST /uploadProducts
func (h *ProductHandler) UploadProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, usecase.ErrNoFile.Error(), nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, usecase.ErrNoFile.Error(), nil)
		return
	}
	defer file.Close()

	products, err := h.service.UploadProducts(r.Context(), file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload products")
		return
	}

	utils.ResponseSuccess(w, "Products uploaded", products)
}

// EditProduct handles PUT /editProduct/{id}
func (h *ProductHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	var req request.EditProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.EditProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "edit product")
		return
	}

	utils.ResponseCreated(w, "Product updated", product)
}

// ListProducts handles GET /listProducts
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.ListProductsRequest{
		Limit:        utils.ParseInt(query.Get("limit"), 0),
		Page:         utils.ParseInt(query.Get("page"), 0),
		ProductName:  query.Get("productName"),
		ProductBrand: query.Get("productBrand"),
	}

	if idParam := query.Get("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid product ID", nil)
			return
		}
		req.ID = &id
	}

	result, err := h.service.ListProducts(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", result)
}
