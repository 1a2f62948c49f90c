package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	bonusService "github.com/lumina-hr/payroll-backend-go/internal/service/bonus"
)

type BonusHandler interface {
	ImportBills(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService *bonusService.BonusService
}

func NewBonusHandler(svc *bonusService.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: svc}
}

// ImportBills implements BonusHandler.
func (h *bonusHandlerImpl) ImportBills(w http.ResponseWriter, r *http.Request) {
	var req bonus.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bill import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bonusService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reconcile implements BonusHandler.
func (h *bonusHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req bonus.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bonus reconcile request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bonusService.ReconcileMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
