package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	salaryService "github.com/lumina-hr/payroll-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Revert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AdjustLine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService *salaryService.SalaryService
}

func NewSalaryHandler(svc *salaryService.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: svc}
}

// Generate implements SalaryHandler.
func (h *salaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req salary.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary generate request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Finalize implements SalaryHandler.
func (h *salaryHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req salary.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary finalize request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.Finalize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Revert implements SalaryHandler.
func (h *salaryHandlerImpl) Revert(w http.ResponseWriter, r *http.Request) {
	var req salary.RevertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary revert request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.Revert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.salaryService.ListByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements SalaryHandler.
func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AdjustLine implements SalaryHandler.
func (h *salaryHandlerImpl) AdjustLine(w http.ResponseWriter, r *http.Request) {
	var req salary.AdjustLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary line adjustment", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")

	result, err := h.salaryService.AdjustLine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements SalaryHandler.
func (h *salaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.DeleteRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted", nil)
}

// CreateItem implements SalaryHandler.
func (h *salaryHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary item request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary item created", result)
}

// ListItems implements SalaryHandler.
func (h *salaryHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.salaryService.ListItems(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateItem implements SalaryHandler.
func (h *salaryHandlerImpl) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req salary.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode salary item update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.salaryService.UpdateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteItem implements SalaryHandler.
func (h *salaryHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary item removed", nil)
}
