package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffline/backoffice-go/internal/domain/sale"
	"github.com/staffline/backoffice-go/internal/handler/http/middleware"
	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.Service
}

func NewSaleHandler(saleService sale.Service) SaleHandler {
	return &saleHandlerImpl{saleService: saleService}
}

// Create implements SaleHandler.
func (h *saleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	result, err := h.saleService.CreateSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded", result)
}

// Get implements SaleHandler.
func (h *saleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.saleService.GetSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SaleHandler.
func (h *saleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.saleService.ListSales(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMine implements SaleHandler.
func (h *saleHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	results, err := h.saleService.ListMySales(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
