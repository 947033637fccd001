package http

import (
	"net/http"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/domain/analytics"
	"github.com/worktime-th/analytics-backend-go/internal/handler/http/response"
	"github.com/worktime-th/analytics-backend-go/internal/service/export"
)

type AnalyticsHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	loc              *time.Location
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService, loc *time.Location) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
		loc:              loc,
	}
}

// reportRequestFromQuery reads the report parameters, defaulting to the last
// seven days over the whole roster.
func (h *AnalyticsHandlerImpl) reportRequestFromQuery(r *http.Request) analytics.ReportRequest {
	req := analytics.ReportRequest{
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
		EmployeeType: r.URL.Query().Get("employee_type"),
	}

	if req.StartDate == "" && req.EndDate == "" {
		now := time.Now().In(h.loc)
		req.EndDate = now.Format("2006-01-02")
		req.StartDate = now.AddDate(0, 0, -6).Format("2006-01-02")
	}
	if req.EmployeeType == "" {
		req.EmployeeType = analytics.TypeFilterAll
	}

	return req
}

// GetReport handles GET /analytics/report
func (h *AnalyticsHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	req := h.reportRequestFromQuery(r)

	report, err := h.analyticsService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportAttendanceCSV handles GET /analytics/report/export
func (h *AnalyticsHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	req := h.reportRequestFromQuery(r)

	report, err := h.analyticsService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := export.AttendanceCSV(report)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(report)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
