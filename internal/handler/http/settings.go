package http

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/worktime-th/analytics-backend-go/internal/domain/settings"
	"github.com/worktime-th/analytics-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetWorkTime(w http.ResponseWriter, r *http.Request)
	UpdateWorkTime(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetWorkTime handles GET /settings/work-time
func (h *SettingsHandlerImpl) GetWorkTime(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.GetWorkTime(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateWorkTime handles PUT /settings/work-time
func (h *SettingsHandlerImpl) UpdateWorkTime(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWorkTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.UpdateWorkTime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work time settings updated", resp)
}
