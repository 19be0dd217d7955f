package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffline/backoffice-go/internal/domain/catalog"
	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

type CatalogHandler interface {
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)

	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	AdjustStock(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) CatalogHandler {
	return &catalogHandlerImpl{catalogService: catalogService}
}

// CreateCategory implements CatalogHandler.
func (h *catalogHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created", result)
}

// ListCategories implements CatalogHandler.
func (h *catalogHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteCategory implements CatalogHandler.
func (h *catalogHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted", nil)
}

// CreateProduct implements CatalogHandler.
func (h *catalogHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", result)
}

// GetProduct implements CatalogHandler.
func (h *catalogHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListProducts implements CatalogHandler.
func (h *catalogHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListProducts(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateProduct implements CatalogHandler.
func (h *catalogHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated", result)
}

// DeleteProduct implements CatalogHandler.
func (h *catalogHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted", nil)
}

// AdjustStock implements CatalogHandler.
func (h *catalogHandlerImpl) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req catalog.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProductID = chi.URLParam(r, "id")

	result, err := h.catalogService.AdjustStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock adjusted", result)
}
