package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	attendanceService "github.com/lumina-hr/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	MonthlySummaries(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(svc *attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

// Import implements AttendanceHandler.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummaries implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummaries(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.attendanceService.MonthlySummaries(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// periodQuery reads the year/month query pair shared by the monthly
// listing endpoints.
func periodQuery(r *http.Request) (year, month int, ok bool) {
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		return 0, 0, false
	}
	return year, month, true
}
