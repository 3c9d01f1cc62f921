package http

import (
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/timeline"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimelineHandler interface {
	// GetTimeline returns the two-week Gantt view of a space
	GetTimeline(w http.ResponseWriter, r *http.Request)
}

type timelineHandlerImpl struct {
	timelineService timeline.TimelineService
}

func NewTimelineHandler(timelineService timeline.TimelineService) TimelineHandler {
	return &timelineHandlerImpl{timelineService: timelineService}
}

// GetTimeline handles GET /spaces/{spaceID}/timeline?date=YYYY-MM-DD
func (h *timelineHandlerImpl) GetTimeline(w http.ResponseWriter, r *http.Request) {
	req := timeline.TimelineRequest{Date: r.URL.Query().Get("date")}

	result, err := h.timelineService.GetTimeline(r.Context(), chi.URLParam(r, "spaceID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
