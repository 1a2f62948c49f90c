package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	insuranceService "github.com/lumina-hr/payroll-backend-go/internal/service/insurance"
	"github.com/shopspring/decimal"
)

type InsuranceHandler interface {
	GetPremium(w http.ResponseWriter, r *http.Request)
	ImportGrades(w http.ResponseWriter, r *http.Request)
}

type insuranceHandlerImpl struct {
	premiums *insuranceService.Resolver
}

func NewInsuranceHandler(premiums *insuranceService.Resolver) InsuranceHandler {
	return &insuranceHandlerImpl{premiums: premiums}
}

// GetPremium implements InsuranceHandler.
func (h *insuranceHandlerImpl) GetPremium(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	insuranceType := query.Get("type")
	if insuranceType != string(insurance.TypeLabor) && insuranceType != string(insurance.TypeHealth) {
		response.HandleError(w, insurance.ErrInvalidType)
		return
	}

	salary, err := decimal.NewFromString(query.Get("salary"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'salary' must be a number", nil)
		return
	}

	asOf, ok := validator.IsValidDate(query.Get("date"))
	if !ok {
		response.BadRequest(w, "Query parameter 'date' must be yyyy-mm-dd", nil)
		return
	}

	fee, err := h.premiums.EmployeeFee(r.Context(), insurance.InsuranceType(insuranceType), salary, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, insurance.PremiumResponse{
		Type:          insuranceType,
		InsuredSalary: salary,
		AsOfDate:      asOf.Format("2006-01-02"),
		EmployeeFee:   fee,
	})
}

// ImportGrades implements InsuranceHandler.
func (h *insuranceHandlerImpl) ImportGrades(w http.ResponseWriter, r *http.Request) {
	var req insurance.ImportVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode grade import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.premiums.ImportVersion(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grade table version replaced", nil)
}
