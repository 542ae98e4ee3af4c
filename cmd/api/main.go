package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	migrate "github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"github.com/nurihr/allowance-backend-go/internal/config"
	"github.com/nurihr/allowance-backend-go/internal/domain/leave"
	appHTTP "github.com/nurihr/allowance-backend-go/internal/handler/http"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
	"github.com/nurihr/allowance-backend-go/internal/repository/postgresql"
	allowanceService "github.com/nurihr/allowance-backend-go/internal/service/allowance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := runMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	eligibilityRepo := postgresql.NewEligibilityRepository(db)
	movementRepo := postgresql.NewMovementRepository(db)
	licenseRepo := postgresql.NewLicenseRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	leaveQuotaRepo := postgresql.NewLeaveQuotaRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)

	rules := leave.DefaultRules()
	overrideQuota(rules, leave.TypeVacation, cfg.Engine.DefaultVacationQuota)
	overrideQuota(rules, leave.TypePersonal, cfg.Engine.DefaultPersonalQuota)
	overrideQuota(rules, leave.TypeSick, cfg.Engine.DefaultSickQuota)

	service := allowanceService.NewService(
		eligibilityRepo,
		movementRepo,
		licenseRepo,
		leaveRecordRepo,
		leaveQuotaRepo,
		holidayRepo,
		employeeRepo,
		payoutRepo,
		allowanceService.Config{
			RetroLookbackMonths: cfg.Engine.RetroLookbackMonths,
			LifetimeKeywords:    cfg.Engine.LifetimeLicenseKeywords,
			Rules:               rules,
		},
	)

	handler := appHTTP.NewAllowanceHandler(service)
	router := appHTTP.NewRouter(cfg.App.Env, handler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func runMigrations(dsn string) error {
	migrationDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer migrationDB.Close()

	driver, err := migratepg.WithInstance(migrationDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func overrideQuota(rules leave.RuleSet, t leave.Type, quota decimal.Decimal) {
	rule := rules[t]
	rule.DefaultQuota = quota
	rules[t] = rule
}
