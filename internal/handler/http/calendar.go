package http

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/lumina-hr/payroll-backend-go/internal/service/calendar"
)

type CalendarHandler interface {
	GetYear(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	resolver *calendar.Resolver
}

func NewCalendarHandler(resolver *calendar.Resolver) CalendarHandler {
	return &calendarHandlerImpl{resolver: resolver}
}

type calendarYearResponse struct {
	Year           int      `json:"year"`
	Holidays       []string `json:"holidays"`
	MakeupWorkdays []string `json:"makeup_workdays"`
}

// GetYear implements CalendarHandler.
func (h *calendarHandlerImpl) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Path parameter 'year' must be a number", nil)
		return
	}

	cal := h.resolver.Resolve(r.Context(), year)

	resp := calendarYearResponse{
		Year:           year,
		Holidays:       sortedKeys(cal.Holidays),
		MakeupWorkdays: sortedKeys(cal.MakeupWorkdays),
	}
	response.Success(w, resp)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
