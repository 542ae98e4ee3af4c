package allowance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/domain/employee"
	"github.com/nurihr/allowance-backend-go/internal/domain/leave"
	"github.com/nurihr/allowance-backend-go/internal/domain/license"
	"github.com/nurihr/allowance-backend-go/internal/domain/movement"
	"github.com/nurihr/allowance-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Config - engine parameters. RetroLookbackMonths controls how many closed
// prior periods the reconciler recomputes on every calculation.
type Config struct {
	RetroLookbackMonths int
	LifetimeKeywords    []string
	Rules               leave.RuleSet
}

type ServiceImpl struct {
	eligibilityRepo domain.EligibilityRepository
	movementRepo    movement.Repository
	licenseRepo     license.Repository
	leaveRepo       leave.RecordRepository
	quotaRepo       leave.QuotaRepository
	holidayRepo     leave.HolidayRepository
	employeeRepo    employee.Repository
	payoutRepo      domain.PayoutRepository
	cfg             Config
}

func NewService(
	eligibilityRepo domain.EligibilityRepository,
	movementRepo movement.Repository,
	licenseRepo license.Repository,
	leaveRepo leave.RecordRepository,
	quotaRepo leave.QuotaRepository,
	holidayRepo leave.HolidayRepository,
	employeeRepo employee.Repository,
	payoutRepo domain.PayoutRepository,
	cfg Config,
) domain.Service {
	if cfg.Rules == nil {
		cfg.Rules = leave.DefaultRules()
	}
	return &ServiceImpl{
		eligibilityRepo: eligibilityRepo,
		movementRepo:    movementRepo,
		licenseRepo:     licenseRepo,
		leaveRepo:       leaveRepo,
		quotaRepo:       quotaRepo,
		holidayRepo:     holidayRepo,
		employeeRepo:    employeeRepo,
		payoutRepo:      payoutRepo,
		cfg:             cfg,
	}
}

// calculateCore runs the daily accumulator for one (citizen, month) without
// retroactive reconciliation.
func (s *ServiceImpl) calculateCore(ctx context.Context, citizenID string, year, month int) (domain.CalculationResult, error) {
	monthStart, monthEnd, err := dateutil.MonthBounds(year, month)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidPeriod, err)
	}

	emp, err := s.employeeRepo.GetByCitizenID(ctx, citizenID)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load employee %s: %w", citizenID, err)
	}

	windows, err := s.eligibilityRepo.GetWindowsOverlapping(ctx, citizenID, monthStart, monthEnd)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load eligibility windows: %w", err)
	}
	for _, w := range windows {
		// a window without its rate link would silently zero a payout;
		// fail loudly instead
		if w.RateID == "" {
			return domain.CalculationResult{}, fmt.Errorf("window %s effective %s: %w",
				w.ID, dateutil.Format(w.EffectiveDate), domain.ErrRateLinkMissing)
		}
	}

	events, err := s.movementRepo.ListByCitizenUntil(ctx, citizenID, monthEnd)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load movement events: %w", err)
	}

	periods, remark := ResolveWorkPeriods(events, monthStart, monthEnd)
	if len(periods) == 0 {
		return domain.CalculationResult{
			NetPayment:    decimal.Zero,
			DeductionDays: decimal.Zero,
			EligibleDays:  decimal.Zero,
			RateAmount:    decimal.Zero,
			RetroTotal:    decimal.Zero,
			Remark:        remark,
		}, nil
	}

	licenses, err := s.licenseRepo.ListByCitizen(ctx, citizenID)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load license records: %w", err)
	}

	fiscalYear := monthStart.Year()
	leaves, err := s.leaveRepo.ListByCitizenAndYear(ctx, citizenID, fiscalYear)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load leave records: %w", err)
	}
	quotas, err := s.quotaRepo.ListByCitizenAndYear(ctx, citizenID, fiscalYear)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load leave quotas: %w", err)
	}
	// business-day counting can run past fiscal-year boundaries, so load a
	// generous holiday window around the month
	holidays, err := s.holidayRepo.ListBetween(ctx, monthStart.AddDate(-1, 0, 0), monthEnd.AddDate(1, 0, 0))
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("load holidays: %w", err)
	}

	checker := NewLicenseChecker(licenses, emp.PositionName, s.cfg.LifetimeKeywords)
	deductions := BuildDeductionMap(leaves, quotas, holidays, s.cfg.Rules, monthStart, monthEnd)
	cursor := NewRateCursor(windows)

	daysInMonth := decimal.NewFromInt(int64(monthEnd.Day()))

	var (
		total         decimal.Decimal
		deductionDays decimal.Decimal
		eligibleDays  decimal.Decimal
		licenseDays   int
		lastRate      decimal.Decimal
		lastRateID    string
	)

	for _, p := range periods {
		for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
			rate, rateID, ok := cursor.RateOn(d)
			if ok {
				lastRate, lastRateID = rate, rateID
			}

			hasLicense := decimal.Zero
			if checker.ValidOn(d) {
				licenseDays++
				hasLicense = one
			}

			deduction := deductions[d]
			deductionDays = deductionDays.Add(deduction)

			weight := hasLicense.Sub(deduction)
			if weight.IsPositive() {
				eligibleDays = eligibleDays.Add(weight)
				total = total.Add(rate.Div(daysInMonth).Mul(weight))
			}
		}
	}

	return domain.CalculationResult{
		NetPayment:    total.Round(2),
		DeductionDays: deductionDays,
		LicenseDays:   licenseDays,
		EligibleDays:  eligibleDays,
		Remark:        remark,
		RateID:        lastRateID,
		RateAmount:    lastRate,
		RetroTotal:    decimal.Zero,
	}, nil
}

func (s *ServiceImpl) CalculateMonthly(ctx context.Context, citizenID string, year, month int) (domain.CalculationResult, error) {
	result, err := s.calculateCore(ctx, citizenID, year, month)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	retroTotal := decimal.Zero
	var details []domain.RetroDetail

	ref := dateutil.Date(year, time.Month(month), 1)
	for i := s.cfg.RetroLookbackMonths; i >= 1; i-- {
		prior := ref.AddDate(0, -i, 0)
		priorYear, priorMonth := prior.Year(), int(prior.Month())

		recorded, err := s.payoutRepo.GetRecordedAmount(ctx, citizenID, priorYear, priorMonth)
		if errors.Is(err, domain.ErrPayoutNotFound) {
			// period never closed, nothing to reconcile
			continue
		}
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("load recorded payout %d-%02d: %w", priorYear, priorMonth, err)
		}

		recomputed, err := s.calculateCore(ctx, citizenID, priorYear, priorMonth)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("recompute %d-%02d: %w", priorYear, priorMonth, err)
		}

		diff := recomputed.NetPayment.Sub(recorded)
		if diff.IsZero() {
			continue
		}

		remark := "retroactive top-up"
		if diff.IsNegative() {
			remark = "retroactive clawback"
		}
		details = append(details, domain.RetroDetail{
			Year:   priorYear,
			Month:  priorMonth,
			Amount: diff,
			Remark: remark,
		})
		retroTotal = retroTotal.Add(diff)
	}

	result.RetroTotal = retroTotal
	result.RetroDetails = details
	return result, nil
}

func (s *ServiceImpl) CalculateAndSave(ctx context.Context, citizenID string, year, month int) (domain.PayoutRecord, error) {
	result, err := s.CalculateMonthly(ctx, citizenID, year, month)
	if err != nil {
		return domain.PayoutRecord{}, err
	}

	record := domain.PayoutRecord{
		ID:               uuid.NewString(),
		CitizenID:        citizenID,
		PeriodYear:       year,
		PeriodMonth:      month,
		RateID:           result.RateID,
		RateAmount:       result.RateAmount,
		CalculatedAmount: result.NetPayment,
		RetroAmount:      result.RetroTotal,
		TotalPayable:     result.TotalPayable(),
		DeductionDays:    result.DeductionDays,
		EligibleDays:     result.EligibleDays,
		Remark:           result.Remark,
	}

	var items []domain.PayoutItem
	if !result.NetPayment.IsZero() {
		items = append(items, domain.PayoutItem{
			ID:          uuid.NewString(),
			RefYear:     year,
			RefMonth:    month,
			Type:        domain.PayoutItemCurrent,
			Amount:      result.NetPayment,
			Description: "monthly allowance",
		})
	}
	for _, d := range result.RetroDetails {
		items = append(items, domain.PayoutItem{
			ID:          uuid.NewString(),
			RefYear:     d.Year,
			RefMonth:    d.Month,
			Type:        retroItemType(d.Amount),
			Amount:      d.Amount,
			Description: d.Remark,
		})
	}
	if len(result.RetroDetails) == 0 && !result.RetroTotal.IsZero() {
		// only an aggregate is available: one line carries the whole total
		items = append(items, domain.PayoutItem{
			ID:          uuid.NewString(),
			RefYear:     year,
			RefMonth:    month,
			Type:        retroItemType(result.RetroTotal),
			Amount:      result.RetroTotal,
			Description: "retroactive adjustment",
		})
	}

	saved, err := s.payoutRepo.Save(ctx, record, items)
	if err != nil {
		return domain.PayoutRecord{}, fmt.Errorf("save payout %d-%02d for %s: %w", year, month, citizenID, err)
	}
	return saved, nil
}

func (s *ServiceImpl) GetPayout(ctx context.Context, citizenID string, year, month int) (domain.PayoutRecord, []domain.PayoutItem, error) {
	record, err := s.payoutRepo.GetByPeriod(ctx, citizenID, year, month)
	if err != nil {
		return domain.PayoutRecord{}, nil, err
	}
	items, err := s.payoutRepo.GetItems(ctx, record.ID)
	if err != nil {
		return domain.PayoutRecord{}, nil, fmt.Errorf("load payout items: %w", err)
	}
	return record, items, nil
}

func (s *ServiceImpl) ListPayouts(ctx context.Context, citizenID string, year *int) ([]domain.PayoutRecord, error) {
	return s.payoutRepo.ListByCitizen(ctx, citizenID, year)
}

func retroItemType(amount decimal.Decimal) domain.PayoutItemType {
	if amount.IsNegative() {
		return domain.PayoutItemRetroDeduct
	}
	return domain.PayoutItemRetroAdd
}
