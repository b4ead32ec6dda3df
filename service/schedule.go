package service

import (
	"fmt"
	"math"
	"time"

	"github.com/kconstable/finance-tools/domain"
)

// PaymentsPerYear returns how many scheduled payments the frequency produces
// in a year. Unknown frequencies return 0.
func PaymentsPerYear(f domain.Frequency) int {
	switch f {
	case domain.FrequencyMonthly:
		return 12
	case domain.FrequencyBiWeekly24:
		return 24
	case domain.FrequencyAccelerated26:
		return 26
	}
	return 0
}

// GenerateSchedule produces the ordered sequence of payment events for the
// given terms. Dates are strictly chronological with no duplicates; the base
// payment amount is constant across the life of the loan.
func GenerateSchedule(terms domain.LoanTerms) ([]domain.PaymentEvent, error) {
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	start := dateOnly(terms.StartDate)
	base := basePayment(terms)

	var dates []time.Time
	switch terms.Frequency {
	case domain.FrequencyMonthly:
		// same day-of-month as the start date, clamped for short months
		for i := 1; i <= terms.TermMonths; i++ {
			dates = append(dates, addMonthsClamped(start, i))
		}
	case domain.FrequencyBiWeekly24:
		// two events per month: the month anchor and 14 days before it.
		// Residual drift at month boundaries is accepted.
		for i := 1; i <= terms.TermMonths; i++ {
			anchor := addMonthsClamped(start, i)
			dates = append(dates, anchor.AddDate(0, 0, -14), anchor)
		}
	case domain.FrequencyAccelerated26:
		// 26 evenly-spaced 14-day intervals per year
		count := terms.TermMonths * 26 / 12
		for k := 1; k <= count; k++ {
			dates = append(dates, start.AddDate(0, 0, 14*k))
		}
	}

	events := make([]domain.PaymentEvent, len(dates))
	for i, d := range dates {
		events[i] = domain.PaymentEvent{Index: i, Date: d, Amount: base}
	}
	return events, nil
}

func validateTerms(terms domain.LoanTerms) error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", domain.ErrInvalidTerms)
	}
	if terms.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of $%.2f", domain.ErrInvalidTerms, MaxPrincipal)
	}
	if terms.AnnualRate < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", domain.ErrInvalidTerms)
	}
	if terms.AnnualRate > MaxAnnualRate {
		return fmt.Errorf("%w: annual rate is a decimal, maximum %.2f", domain.ErrInvalidTerms, MaxAnnualRate)
	}
	if terms.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive", domain.ErrInvalidTerms)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", domain.ErrInvalidTerms, MaxTermMonths)
	}
	if terms.Payment < 0 {
		return fmt.Errorf("%w: payment override must not be negative", domain.ErrInvalidTerms)
	}
	if PaymentsPerYear(terms.Frequency) == 0 {
		return fmt.Errorf("%w: unknown frequency %q", domain.ErrInvalidTerms, terms.Frequency)
	}
	return nil
}

// basePayment computes the constant per-event payment. The annuity formula
// uses the nominal per-period rate (annualRate / paymentsPerYear); the
// accelerated bi-weekly payment is the monthly-equivalent payment scaled by
// 12/26, which yields a higher effective annual payment than monthly.
func basePayment(terms domain.LoanTerms) float64 {
	if terms.Payment > 0 {
		return roundTo2Decimals(terms.Payment)
	}

	var pay float64
	switch terms.Frequency {
	case domain.FrequencyBiWeekly24:
		pay = annuity(terms.Principal, terms.AnnualRate/24, terms.TermMonths*2)
	case domain.FrequencyAccelerated26:
		pay = annuity(terms.Principal, terms.AnnualRate/12, terms.TermMonths) * 12 / 26
	default:
		pay = annuity(terms.Principal, terms.AnnualRate/12, terms.TermMonths)
	}
	return roundTo2Decimals(pay)
}

func annuity(principal, periodRate float64, periods int) float64 {
	if periodRate == 0 {
		return principal / float64(periods)
	}
	return principal * (periodRate / (1 - math.Pow(1+periodRate, -float64(periods))))
}
