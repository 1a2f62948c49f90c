package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type insuranceGradeRepositoryImpl struct {
	db *database.DB
}

func NewInsuranceGradeRepository(db *database.DB) insurance.GradeRepository {
	return &insuranceGradeRepositoryImpl{db: db}
}

// GetVersionInForce implements insurance.GradeRepository.
func (i *insuranceGradeRepositoryImpl) GetVersionInForce(ctx context.Context, insuranceType insurance.InsuranceType, asOf time.Time) ([]insurance.GradeRow, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, insurance_type, start_date, grade, salary_min, salary_max,
			employee_fee, employer_fee, government_fee, created_at, updated_at
		FROM insurance_grades
		WHERE insurance_type = $1
		  AND start_date = (
			SELECT MAX(start_date)
			FROM insurance_grades
			WHERE insurance_type = $1 AND start_date <= $2
		  )
		ORDER BY grade
	`

	rows, err := q.Query(ctx, query, insuranceType, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []insurance.GradeRow
	for rows.Next() {
		var row insurance.GradeRow
		err := rows.Scan(
			&row.ID, &row.Type, &row.StartDate, &row.Grade, &row.SalaryMin, &row.SalaryMax,
			&row.EmployeeFee, &row.EmployerFee, &row.GovernmentFee, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		grades = append(grades, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(grades) == 0 {
		return nil, insurance.ErrNoVersionInForce
	}

	return grades, nil
}

// ReplaceVersion implements insurance.GradeRepository.
func (i *insuranceGradeRepositoryImpl) ReplaceVersion(ctx context.Context, insuranceType insurance.InsuranceType, startDate time.Time, gradeRows []insurance.GradeRow) error {
	q := GetQuerier(ctx, i.db)

	deleteQuery := `
		DELETE FROM insurance_grades
		WHERE insurance_type = $1 AND start_date = $2
	`
	if _, err := q.Exec(ctx, deleteQuery, insuranceType, startDate); err != nil {
		return fmt.Errorf("failed to delete grade table version: %w", err)
	}

	insertQuery := `
		INSERT INTO insurance_grades (
			id, insurance_type, start_date, grade, salary_min, salary_max,
			employee_fee, employer_fee, government_fee
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, row := range gradeRows {
		_, err := q.Exec(ctx, insertQuery,
			row.ID, row.Type, row.StartDate, row.Grade, row.SalaryMin, row.SalaryMax,
			row.EmployeeFee, row.EmployerFee, row.GovernmentFee,
		)
		if err != nil {
			return fmt.Errorf("failed to insert grade row %d: %w", row.Grade, err)
		}
	}

	return nil
}
