package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/lumina-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/lumina-hr/payroll-backend-go/internal/handler/http"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/govcalendar"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/lumina-hr/payroll-backend-go/internal/service/attendance"
	bonusService "github.com/lumina-hr/payroll-backend-go/internal/service/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/service/calendar"
	insuranceService "github.com/lumina-hr/payroll-backend-go/internal/service/insurance"
	leaveService "github.com/lumina-hr/payroll-backend-go/internal/service/leave"
	salaryService "github.com/lumina-hr/payroll-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	insuranceGradeRepo := postgresql.NewInsuranceGradeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	salaryItemRepo := postgresql.NewSalaryItemRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)

	calendarSource := govcalendar.NewClient(cfg.Calendar)
	calendarResolver := calendar.NewResolver(calendarSource)
	hourCalc := leaveService.NewHourCalculator(calendarResolver)

	premiumResolver := insuranceService.NewResolver(insuranceGradeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, hourCalc)
	bonusSvc := bonusService.NewBonusService(db, bonusRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(
		db, salaryRepo, salaryItemRepo, employeeRepo,
		attendanceRepo, leaveRequestRepo, bonusRepo, premiumResolver,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarResolver)
	insuranceHandler := appHTTP.NewInsuranceHandler(premiumResolver)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	bonusHandler := appHTTP.NewBonusHandler(bonusSvc)

	router := appHTTP.NewRouter(
		cfg,
		attendanceHandler,
		leaveHandler,
		calendarHandler,
		insuranceHandler,
		salaryHandler,
		bonusHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
