package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	insuranceService "github.com/lumina-hr/payroll-backend-go/internal/service/insurance"
	"github.com/shopspring/decimal"
)

type SalaryService struct {
	db             *database.DB
	salaryRepo     salary.SalaryRepository
	itemRepo       salary.SalaryItemRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	bonusRepo      bonus.BonusRepository
	premiums       *insuranceService.Resolver
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryRepository,
	itemRepo salary.SalaryItemRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	bonusRepo bonus.BonusRepository,
	premiums *insuranceService.Resolver,
) *SalaryService {
	return &SalaryService{
		db:             db,
		salaryRepo:     salaryRepo,
		itemRepo:       itemRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		bonusRepo:      bonusRepo,
		premiums:       premiums,
	}
}

// monthBounds returns the first and last calendar day of the month.
func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// computedDraft pairs one employee with their computed lines and totals,
// ready to persist.
type computedDraft struct {
	employeeID string
	comp       DraftComputation
}

// Generate computes draft salary records for the month. Already-final
// records are skipped and reported; existing drafts are overwritten
// wholesale. All premium and rate lookups happen from data effective on the
// month's last day. The whole batch persists in one transaction.
func (s *SalaryService) Generate(ctx context.Context, req salary.GenerateRequest) (salary.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return salary.GenerateResult{}, err
	}

	periodStart, periodEnd := monthBounds(req.Year, req.Month)

	employees, err := s.employeeRepo.GetActiveInPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(req.EmployeeIDs) > 0 {
		requested := make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			requested[id] = true
		}
		filtered := employees[:0]
		for _, emp := range employees {
			if requested[emp.ID] {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	summaries, err := s.attendanceRepo.GetMonthlySummaries(ctx, req.Year, req.Month, employeeIDs)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to load attendance summaries: %w", err)
	}
	summaryByEmployee := make(map[string]attendance.MonthlySummary, len(summaries))
	for _, sum := range summaries {
		summaryByEmployee[sum.EmployeeID] = sum
	}

	typeHours, err := s.leaveRepo.GetApprovedHoursByMonth(ctx, req.Year, req.Month)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to load leave hours: %w", err)
	}
	leaveByEmployee := make(map[string]map[leave.LeaveType]float64)
	for _, th := range typeHours {
		if leaveByEmployee[th.EmployeeID] == nil {
			leaveByEmployee[th.EmployeeID] = make(map[leave.LeaveType]float64)
		}
		leaveByEmployee[th.EmployeeID][th.Type] += th.Hours
	}

	standingItems, err := s.itemRepo.GetStandingItems(ctx, req.Year, req.Month)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to load standing items: %w", err)
	}
	standingByEmployee := make(map[string][]salary.StandingItem)
	for _, item := range standingItems {
		standingByEmployee[item.EmployeeID] = append(standingByEmployee[item.EmployeeID], item)
	}

	bonuses, err := s.bonusRepo.GetMonthlyBonusByEmployee(ctx, req.Year, req.Month)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to load monthly bonuses: %w", err)
	}

	result := salary.GenerateResult{Year: req.Year, Month: req.Month}
	var drafts []computedDraft

	for _, emp := range employees {
		base, err := s.employeeRepo.GetSalaryBaseAsOf(ctx, emp.ID, periodEnd)
		if err != nil {
			if errors.Is(err, employee.ErrSalaryBaseNotFound) {
				result.Skipped = append(result.Skipped, salary.RowError{
					Ref:    emp.ID,
					Reason: "no salary base effective in period",
				})
				continue
			}
			return salary.GenerateResult{}, fmt.Errorf("failed to get salary base for %s: %w", emp.ID, err)
		}

		insured, err := s.employeeRepo.HasInsuredEnrollment(ctx, emp.ID, periodStart, periodEnd)
		if err != nil {
			return salary.GenerateResult{}, fmt.Errorf("failed to check enrollment for %s: %w", emp.ID, err)
		}

		laborFee := decimal.Zero
		healthFee := decimal.Zero
		if insured {
			laborFee, err = s.premiums.EmployeeFee(ctx, insurance.TypeLabor, base.InsuredSalary, periodEnd)
			if err != nil {
				return salary.GenerateResult{}, fmt.Errorf("failed to resolve labor premium for %s: %w", emp.ID, err)
			}
			healthFee, err = s.premiums.EmployeeFee(ctx, insurance.TypeHealth, base.InsuredSalary, periodEnd)
			if err != nil {
				return salary.GenerateResult{}, fmt.Errorf("failed to resolve health premium for %s: %w", emp.ID, err)
			}
		}

		bonusAmount := decimal.Zero
		if summary, ok := bonuses[emp.ID]; ok {
			bonusAmount = summary.Amount
		}

		comp := ComputeDraft(DraftInputs{
			BaseSalary:    base.BaseSalary,
			InsuredSalary: base.InsuredSalary,
			Dependents:    base.Dependents,
			Insured:       insured,
			Attendance:    summaryByEmployee[emp.ID],
			LeaveHours:    leaveByEmployee[emp.ID],
			Standing:      standingByEmployee[emp.ID],
			Bonus:         bonusAmount,
			LaborFee:      laborFee,
			HealthFee:     healthFee,
		})

		drafts = append(drafts, computedDraft{employeeID: emp.ID, comp: comp})
	}

	items, err := s.itemRepo.ListItems(ctx, false)
	if err != nil {
		return salary.GenerateResult{}, fmt.Errorf("failed to list salary items: %w", err)
	}
	itemByName := make(map[string]salary.ItemDefinition, len(items))
	for _, item := range items {
		itemByName[item.Name] = item
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, draft := range drafts {
			record, err := s.salaryRepo.GetByEmployeePeriod(txCtx, draft.employeeID, req.Year, req.Month)
			switch {
			case err == nil:
				if record.Status == salary.StatusFinal {
					result.Skipped = append(result.Skipped, salary.RowError{
						Ref:    draft.employeeID,
						Reason: "record already final",
					})
					continue
				}
			case errors.Is(err, salary.ErrRecordNotFound):
				record, err = s.salaryRepo.CreateRecord(txCtx, salary.Record{
					ID:         uuid.NewString(),
					EmployeeID: draft.employeeID,
					Year:       req.Year,
					Month:      req.Month,
					Status:     salary.StatusDraft,
				})
				if err != nil {
					return fmt.Errorf("failed to create salary record for %s: %w", draft.employeeID, err)
				}
			default:
				return fmt.Errorf("failed to get salary record for %s: %w", draft.employeeID, err)
			}

			lines := make([]salary.Line, 0, len(draft.comp.Lines))
			for _, la := range draft.comp.Lines {
				item, err := s.ensureItem(txCtx, itemByName, la.ItemName, la.ItemKind)
				if err != nil {
					return err
				}
				lines = append(lines, salary.Line{
					ID:       uuid.NewString(),
					RecordID: record.ID,
					ItemID:   item.ID,
					Amount:   la.Amount,
				})
			}

			if err := s.salaryRepo.ReplaceLines(txCtx, record.ID, lines); err != nil {
				return fmt.Errorf("failed to replace lines for %s: %w", draft.employeeID, err)
			}

			record.TotalPayable = draft.comp.TotalPayable
			record.TotalDeduction = draft.comp.TotalDeduction
			record.Net = draft.comp.Net
			record.BankTransfer = draft.comp.BankTransfer
			record.Cash = draft.comp.Cash
			record.EmployerPension = draft.comp.EmployerPension

			if err := s.salaryRepo.UpdateDraftTotals(txCtx, record); err != nil {
				if errors.Is(err, salary.ErrRecordFinal) {
					result.Skipped = append(result.Skipped, salary.RowError{
						Ref:    draft.employeeID,
						Reason: "record already final",
					})
					continue
				}
				return fmt.Errorf("failed to update totals for %s: %w", draft.employeeID, err)
			}

			result.Generated++
		}

		return nil
	})
	if err != nil {
		return salary.GenerateResult{}, err
	}

	return result, nil
}

// ensureItem resolves a built-in item by name, creating the definition the
// first time the engine emits it.
func (s *SalaryService) ensureItem(ctx context.Context, cache map[string]salary.ItemDefinition, name string, kind salary.ItemKind) (salary.ItemDefinition, error) {
	if item, ok := cache[name]; ok {
		return item, nil
	}

	item, err := s.itemRepo.CreateItem(ctx, salary.ItemDefinition{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     kind,
		IsActive: true,
	})
	if err != nil {
		return salary.ItemDefinition{}, fmt.Errorf("failed to create salary item %q: %w", name, err)
	}

	cache[name] = item
	return item, nil
}

// Finalize recomputes totals from the stored lines and transitions draft
// records to final. Records missing or already final are skipped and
// reported; the batch commits as one transaction.
func (s *SalaryService) Finalize(ctx context.Context, req salary.FinalizeRequest) (salary.LifecycleResult, error) {
	if err := req.Validate(); err != nil {
		return salary.LifecycleResult{}, err
	}

	periodStart, periodEnd := monthBounds(req.Year, req.Month)
	var result salary.LifecycleResult

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, employeeID := range req.EmployeeIDs {
			record, err := s.salaryRepo.GetByEmployeePeriod(txCtx, employeeID, req.Year, req.Month)
			if err != nil {
				if errors.Is(err, salary.ErrRecordNotFound) {
					result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "no salary record"})
					continue
				}
				return fmt.Errorf("failed to get salary record for %s: %w", employeeID, err)
			}
			if record.Status != salary.StatusDraft {
				result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "record already final"})
				continue
			}

			if err := s.recomputeDraftTotals(txCtx, &record, periodStart, periodEnd); err != nil {
				return err
			}

			if err := s.salaryRepo.SetStatus(txCtx, record.ID, salary.StatusDraft, salary.StatusFinal); err != nil {
				if errors.Is(err, salary.ErrRecordNotFound) {
					result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "record changed concurrently"})
					continue
				}
				return fmt.Errorf("failed to finalize record for %s: %w", employeeID, err)
			}

			result.Updated++
		}

		return nil
	})
	if err != nil {
		return salary.LifecycleResult{}, err
	}

	return result, nil
}

// Revert transitions final records back to draft so they can be corrected
// and re-finalized. Records missing or still draft are skipped and reported.
func (s *SalaryService) Revert(ctx context.Context, req salary.RevertRequest) (salary.LifecycleResult, error) {
	if err := req.Validate(); err != nil {
		return salary.LifecycleResult{}, err
	}

	var result salary.LifecycleResult

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, employeeID := range req.EmployeeIDs {
			record, err := s.salaryRepo.GetByEmployeePeriod(txCtx, employeeID, req.Year, req.Month)
			if err != nil {
				if errors.Is(err, salary.ErrRecordNotFound) {
					result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "no salary record"})
					continue
				}
				return fmt.Errorf("failed to get salary record for %s: %w", employeeID, err)
			}
			if record.Status != salary.StatusFinal {
				result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "record is not final"})
				continue
			}

			if err := s.salaryRepo.SetStatus(txCtx, record.ID, salary.StatusFinal, salary.StatusDraft); err != nil {
				if errors.Is(err, salary.ErrRecordNotFound) {
					result.Skipped = append(result.Skipped, salary.RowError{Ref: employeeID, Reason: "record changed concurrently"})
					continue
				}
				return fmt.Errorf("failed to revert record for %s: %w", employeeID, err)
			}

			result.Updated++
		}

		return nil
	})
	if err != nil {
		return salary.LifecycleResult{}, err
	}

	return result, nil
}

// AdjustLine upserts one manual line on a draft record and recomputes the
// totals. Final records reject the adjustment.
func (s *SalaryService) AdjustLine(ctx context.Context, req salary.AdjustLineRequest) (salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.RecordResponse{}, err
	}

	var record salary.Record

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		record, err = s.salaryRepo.GetByID(txCtx, req.RecordID)
		if err != nil {
			return err
		}
		if record.Status == salary.StatusFinal {
			return salary.ErrRecordFinal
		}

		item, err := s.itemRepo.GetItemByName(txCtx, req.ItemName)
		if err != nil {
			return err
		}

		amount := req.Amount
		if item.Kind == salary.ItemKindDeduction && amount.Sign() > 0 {
			amount = amount.Neg()
		}

		line := salary.Line{
			ID:       uuid.NewString(),
			RecordID: record.ID,
			ItemID:   item.ID,
			Amount:   amount.Round(0),
		}
		if err := s.salaryRepo.UpsertLine(txCtx, record.ID, item.ID, line); err != nil {
			return fmt.Errorf("failed to upsert salary line: %w", err)
		}

		periodStart, periodEnd := monthBounds(record.Year, record.Month)
		if err := s.recomputeDraftTotals(txCtx, &record, periodStart, periodEnd); err != nil {
			return err
		}

		record.Lines, err = s.salaryRepo.GetLines(txCtx, record.ID)
		return err
	})
	if err != nil {
		return salary.RecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

// recomputeDraftTotals re-derives totals and the bank/cash split from the
// record's stored lines and writes them, guarded on the record still being
// draft.
func (s *SalaryService) recomputeDraftTotals(ctx context.Context, record *salary.Record, periodStart, periodEnd time.Time) error {
	lines, err := s.salaryRepo.GetLines(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to get lines for %s: %w", record.ID, err)
	}

	amounts := make([]LineAmount, 0, len(lines))
	for _, line := range lines {
		amounts = append(amounts, LineAmount{
			ItemName: line.ItemName,
			ItemKind: line.ItemKind,
			Amount:   line.Amount,
		})
	}

	insured, err := s.employeeRepo.HasInsuredEnrollment(ctx, record.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("failed to check enrollment for %s: %w", record.EmployeeID, err)
	}

	record.TotalPayable, record.TotalDeduction, record.Net = sumLineAmounts(amounts)
	record.BankTransfer, record.Cash = SplitBankCash(amounts, record.Net, insured)

	if err := s.salaryRepo.UpdateDraftTotals(ctx, *record); err != nil {
		return fmt.Errorf("failed to update totals for %s: %w", record.ID, err)
	}

	return nil
}

// DeleteRecord removes a draft record and its lines. Final records must be
// reverted first.
func (s *SalaryService) DeleteRecord(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.salaryRepo.DeleteDraft(txCtx, id)
	})
}

func (s *SalaryService) GetRecord(ctx context.Context, id string) (salary.RecordResponse, error) {
	record, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	record.Lines, err = s.salaryRepo.GetLines(ctx, record.ID)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

func (s *SalaryService) ListByPeriod(ctx context.Context, year, month int) ([]salary.RecordResponse, error) {
	if !validator.IsValidPeriod(year, month) {
		return nil, salary.ErrInvalidPeriod
	}

	records, err := s.salaryRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]salary.RecordResponse, 0, len(records))
	for _, record := range records {
		record.Lines, err = s.salaryRepo.GetLines(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, toRecordResponse(record))
	}

	return result, nil
}

func toRecordResponse(record salary.Record) salary.RecordResponse {
	resp := salary.RecordResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		Year:            record.Year,
		Month:           record.Month,
		Status:          string(record.Status),
		TotalPayable:    record.TotalPayable,
		TotalDeduction:  record.TotalDeduction,
		Net:             record.Net,
		BankTransfer:    record.BankTransfer,
		Cash:            record.Cash,
		EmployerPension: record.EmployerPension,
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	for _, line := range record.Lines {
		resp.Lines = append(resp.Lines, salary.LineResponse{
			ItemName: line.ItemName,
			ItemKind: string(line.ItemKind),
			Amount:   line.Amount,
		})
	}
	return resp
}
