package http

import (
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	// GetMonth returns the month grid of a space
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// GetMonth handles GET /spaces/{spaceID}/calendar?month=&week_start=&hide_completed=
func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := calendar.MonthRequest{
		Month:     query.Get("month"),
		WeekStart: query.Get("week_start"),
	}
	hide, ok := validator.ParseBool(query.Get("hide_completed"))
	if !ok {
		response.BadRequest(w, "hide_completed must be true or false", nil)
		return
	}
	req.HideCompleted = hide

	result, err := h.calendarService.GetMonth(r.Context(), chi.URLParam(r, "spaceID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
