package http

import (
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetStatusChart returns the status pie
	GetStatusChart(w http.ResponseWriter, r *http.Request)
	// GetPriorityChart returns the priority pie over open tasks
	GetPriorityChart(w http.ResponseWriter, r *http.Request)
	// GetTrend returns the seven-day completion trend
	GetTrend(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /spaces/{spaceID}/dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), chi.URLParam(r, "spaceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatusChart handles GET /spaces/{spaceID}/dashboard/status-chart
func (h *dashboardHandlerImpl) GetStatusChart(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStatusChart(r.Context(), chi.URLParam(r, "spaceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPriorityChart handles GET /spaces/{spaceID}/dashboard/priority-chart
func (h *dashboardHandlerImpl) GetPriorityChart(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetPriorityChart(r.Context(), chi.URLParam(r, "spaceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrend handles GET /spaces/{spaceID}/dashboard/trend
func (h *dashboardHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTrend(r.Context(), chi.URLParam(r, "spaceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
