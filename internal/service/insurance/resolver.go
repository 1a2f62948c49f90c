package insurance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Resolver answers employee-premium lookups against the effective-dated
// grade tables and maintains the tables themselves.
type Resolver struct {
	gradeRepo insurance.GradeRepository
}

func NewResolver(gradeRepo insurance.GradeRepository) *Resolver {
	return &Resolver{gradeRepo: gradeRepo}
}

// EmployeeFee resolves the employee-borne premium in two steps: the table
// version in force at asOfDate, then the grade band containing the insured
// salary. A salary above every band maps to the highest grade. Returns zero
// when no version exists at or before asOfDate or the salary is not
// positive.
func (r *Resolver) EmployeeFee(ctx context.Context, insuranceType insurance.InsuranceType, insuredSalary decimal.Decimal, asOfDate time.Time) (decimal.Decimal, error) {
	if insuredSalary.Sign() <= 0 {
		return decimal.Zero, nil
	}

	rows, err := r.gradeRepo.GetVersionInForce(ctx, insuranceType, asOfDate)
	if err != nil {
		if errors.Is(err, insurance.ErrNoVersionInForce) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get grade table version: %w", err)
	}

	row := PickGrade(rows, insuredSalary)
	if row == nil {
		return decimal.Zero, nil
	}

	return row.EmployeeFee, nil
}

// PickGrade finds the band containing salary within one table version. Rows
// must be ordered by grade ascending; the highest grade catches salaries
// above every band's max.
func PickGrade(rows []insurance.GradeRow, salary decimal.Decimal) *insurance.GradeRow {
	if len(rows) == 0 {
		return nil
	}

	for i := range rows {
		if salary.GreaterThanOrEqual(rows[i].SalaryMin) && salary.LessThanOrEqual(rows[i].SalaryMax) {
			return &rows[i]
		}
	}

	top := &rows[len(rows)-1]
	if salary.GreaterThan(top.SalaryMax) {
		return top
	}

	return nil
}

// ImportVersion replaces one (type, start_date) table version wholesale, the
// way government rate revisions arrive.
func (r *Resolver) ImportVersion(ctx context.Context, req insurance.ImportVersionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	insuranceType := insurance.InsuranceType(req.Type)

	rows := make([]insurance.GradeRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, insurance.GradeRow{
			ID:            uuid.NewString(),
			Type:          insuranceType,
			StartDate:     startDate,
			Grade:         row.Grade,
			SalaryMin:     row.SalaryMin,
			SalaryMax:     row.SalaryMax,
			EmployeeFee:   row.EmployeeFee,
			EmployerFee:   row.EmployerFee,
			GovernmentFee: row.GovernmentFee,
		})
	}

	if err := r.gradeRepo.ReplaceVersion(ctx, insuranceType, startDate, rows); err != nil {
		return fmt.Errorf("failed to replace grade table version: %w", err)
	}

	return nil
}
