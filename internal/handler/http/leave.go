package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	leaveService "github.com/lumina-hr/payroll-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leaveService.LeaveService
}

func NewLeaveHandler(svc *leaveService.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: svc}
}

// Import implements LeaveHandler.
func (h *leaveHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req leave.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode leave import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.leaveService.ListByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
