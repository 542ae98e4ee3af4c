package allowance

import (
	"github.com/nurihr/allowance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALCULATION DTOs ==========

type CalculateRequest struct {
	CitizenID string `json:"citizen_id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CitizenID) {
		errs = append(errs, validator.ValidationError{Field: "citizen_id", Message: "is required"})
	}
	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four-digit year"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RetroDetailResponse struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Remark string          `json:"remark,omitempty"`
}

type CalculationResponse struct {
	CitizenID     string                `json:"citizen_id"`
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	NetPayment    decimal.Decimal       `json:"net_payment"`
	RetroTotal    decimal.Decimal       `json:"retro_total"`
	TotalPayable  decimal.Decimal       `json:"total_payable"`
	DeductionDays decimal.Decimal       `json:"deduction_days"`
	LicenseDays   int                   `json:"license_days"`
	EligibleDays  decimal.Decimal       `json:"eligible_days"`
	RateID        string                `json:"rate_id,omitempty"`
	RateAmount    decimal.Decimal       `json:"rate_amount"`
	Remark        string                `json:"remark,omitempty"`
	RetroDetails  []RetroDetailResponse `json:"retro_details,omitempty"`
}

func NewCalculationResponse(citizenID string, year, month int, result CalculationResult) CalculationResponse {
	details := make([]RetroDetailResponse, 0, len(result.RetroDetails))
	for _, d := range result.RetroDetails {
		details = append(details, RetroDetailResponse{
			Year:   d.Year,
			Month:  d.Month,
			Amount: d.Amount,
			Remark: d.Remark,
		})
	}

	return CalculationResponse{
		CitizenID:     citizenID,
		Year:          year,
		Month:         month,
		NetPayment:    result.NetPayment,
		RetroTotal:    result.RetroTotal,
		TotalPayable:  result.TotalPayable(),
		DeductionDays: result.DeductionDays,
		LicenseDays:   result.LicenseDays,
		EligibleDays:  result.EligibleDays,
		RateID:        result.RateID,
		RateAmount:    result.RateAmount,
		Remark:        result.Remark,
		RetroDetails:  details,
	}
}

// ========== PAYOUT DTOs ==========

type PayoutItemResponse struct {
	ID          string          `json:"id"`
	RefYear     int             `json:"ref_year"`
	RefMonth    int             `json:"ref_month"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type PayoutResponse struct {
	ID               string          `json:"id"`
	CitizenID        string          `json:"citizen_id"`
	PeriodYear       int             `json:"period_year"`
	PeriodMonth      int             `json:"period_month"`
	RateID           string          `json:"rate_id,omitempty"`
	RateAmount       decimal.Decimal `json:"rate_amount"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	RetroAmount      decimal.Decimal `json:"retro_amount"`
	TotalPayable     decimal.Decimal `json:"total_payable"`
	DeductionDays    decimal.Decimal `json:"deduction_days"`
	EligibleDays     decimal.Decimal `json:"eligible_days"`
	Remark           string          `json:"remark,omitempty"`
	CreatedAt        string          `json:"created_at"`
}

type PayoutDetailResponse struct {
	PayoutResponse
	Items []PayoutItemResponse `json:"items"`
}

func NewPayoutDetailResponse(r PayoutRecord, items []PayoutItem) PayoutDetailResponse {
	lines := make([]PayoutItemResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, PayoutItemResponse{
			ID:          item.ID,
			RefYear:     item.RefYear,
			RefMonth:    item.RefMonth,
			Type:        string(item.Type),
			Amount:      item.Amount,
			Description: item.Description,
		})
	}
	return PayoutDetailResponse{
		PayoutResponse: NewPayoutResponse(r),
		Items:          lines,
	}
}

func NewPayoutResponse(r PayoutRecord) PayoutResponse {
	return PayoutResponse{
		ID:               r.ID,
		CitizenID:        r.CitizenID,
		PeriodYear:       r.PeriodYear,
		PeriodMonth:      r.PeriodMonth,
		RateID:           r.RateID,
		RateAmount:       r.RateAmount,
		CalculatedAmount: r.CalculatedAmount,
		RetroAmount:      r.RetroAmount,
		TotalPayable:     r.TotalPayable,
		DeductionDays:    r.DeductionDays,
		EligibleDays:     r.EligibleDays,
		Remark:           r.Remark,
		CreatedAt:        r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
