package http

import (
	"net/http"
	"strconv"

	"github.com/staffline/backoffice-go/internal/domain/payroll"
	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Commissions(w http.ResponseWriter, r *http.Request)
	LaborAnalytics(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be a number", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}

	records, err := h.payrollService.GeneratePayroll(r.Context(), payroll.GeneratePayrollRequest{
		EmployeeID: r.URL.Query().Get("employee"),
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Commissions implements PayrollHandler.
func (h *payrollHandlerImpl) Commissions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.payrollService.CalculateCommissions(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// LaborAnalytics implements PayrollHandler.
func (h *payrollHandlerImpl) LaborAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.payrollService.GetLaborAnalytics(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, analytics)
}

func periodFromQuery(r *http.Request) payroll.PeriodRequest {
	return payroll.PeriodRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
}
