package main

import (
	"fmt"
	"net/http"

	"github.com/staffline/backoffice-go/internal/config"
	appHTTP "github.com/staffline/backoffice-go/internal/handler/http"
	"github.com/staffline/backoffice-go/internal/pkg/cron"
	"github.com/staffline/backoffice-go/internal/pkg/database"
	"github.com/staffline/backoffice-go/internal/pkg/jwt"
	"github.com/staffline/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/staffline/backoffice-go/internal/service/attendance"
	authService "github.com/staffline/backoffice-go/internal/service/auth"
	catalogService "github.com/staffline/backoffice-go/internal/service/catalog"
	employeeService "github.com/staffline/backoffice-go/internal/service/employee"
	leaveService "github.com/staffline/backoffice-go/internal/service/leave"
	payrollService "github.com/staffline/backoffice-go/internal/service/payroll"
	roleService "github.com/staffline/backoffice-go/internal/service/role"
	saleService "github.com/staffline/backoffice-go/internal/service/sale"
	settingsService "github.com/staffline/backoffice-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	sessionRepo := postgresql.NewSessionRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	settingsSvc := settingsService.NewService(settingsRepo)
	attendanceSvc := attendanceService.NewService(db, sessionRepo, employeeRepo, settingsSvc, cfg.App.Timezone)
	leaveSvc := leaveService.NewService(db, leaveTypeRepo, leaveRequestRepo, cfg.App.Timezone)
	payrollSvc := payrollService.NewService(
		employeeRepo,
		saleRepo,
		leaveRequestRepo,
		sessionRepo,
		cfg.Payroll.CommissionRate,
		cfg.Payroll.UnpaidLeaveType,
		cfg.App.Timezone,
	)
	employeeSvc := employeeService.NewService(employeeRepo, roleRepo)
	roleSvc := roleService.NewService(roleRepo)
	catalogSvc := catalogService.NewService(categoryRepo, productRepo)
	saleSvc := saleService.NewService(db, saleRepo, productRepo)
	authSvc := authService.NewService(employeeRepo, jwtService)

	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceSweeper(scheduler, attendanceSvc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Role:       appHTTP.NewRoleHandler(roleSvc),
		Catalog:    appHTTP.NewCatalogHandler(catalogSvc),
		Sale:       appHTTP.NewSaleHandler(saleSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
