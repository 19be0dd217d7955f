package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffline/backoffice-go/internal/domain/settings"
	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.GetCompanySettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSettingsResponse(cfg))
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateCompanySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.UpdateCompanySettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company settings updated", toSettingsResponse(cfg))
}

func toSettingsResponse(cfg settings.CompanySettings) settings.CompanySettingsResponse {
	return settings.CompanySettingsResponse{
		ID:             cfg.ID,
		CompanyName:    cfg.CompanyName,
		WorkDays:       cfg.WorkDays,
		WorkStartTime:  cfg.WorkStartTime,
		WorkEndTime:    cfg.WorkEndTime,
		EnableOvertime: cfg.EnableOvertime,
	}
}
