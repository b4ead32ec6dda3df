package domain

import "time"

// Frequency determines how often scheduled payments occur.
type Frequency string

const (
	// FrequencyMonthly is one payment per month on the start day-of-month.
	FrequencyMonthly Frequency = "monthly"
	// FrequencyBiWeekly24 is two payments per month (24 per year).
	FrequencyBiWeekly24 Frequency = "biweekly24"
	// FrequencyAccelerated26 is a payment every 14 days (26 per year).
	FrequencyAccelerated26 Frequency = "accelerated26"
)

// Recurrence tags how a prepayment repeats.
type Recurrence string

const (
	RecurrenceOneTime   Recurrence = "one_time"
	RecurrenceRecurring Recurrence = "recurring"
)

// LoanTerms describes a mortgage. Immutable once a schedule has been
// generated; a change produces a new Scenario, not an edit.
type LoanTerms struct {
	Principal  float64   `json:"principal"`
	AnnualRate float64   `json:"annual_rate"`
	TermMonths int       `json:"term_months"`
	Frequency  Frequency `json:"frequency"`
	StartDate  time.Time `json:"start_date"`

	// Payment optionally fixes the per-period payment amount. When zero,
	// the annuity payment for the frequency is used.
	Payment float64 `json:"payment,omitempty"`
}

// Prepayment is an extra principal-only payment outside the regular schedule.
type Prepayment struct {
	EffectiveDate time.Time  `json:"effective_date"`
	Amount        float64    `json:"amount"`
	Recurrence    Recurrence `json:"recurrence"`
}

// PaymentEvent is one scheduled payment date with its base amount.
type PaymentEvent struct {
	Index  int       `json:"index"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// LedgerEntry is one row of an amortization schedule. Each entry satisfies
// closing = opening + interest - payment - prepayment, with
// principal = payment - interest.
type LedgerEntry struct {
	Index              int       `json:"index"`
	Date               time.Time `json:"date"`
	ElapsedDays        int       `json:"elapsed_days"`
	OpeningBalance     float64   `json:"opening_balance"`
	Interest           float64   `json:"interest"`
	CumulativeInterest float64   `json:"cumulative_interest"`
	Payment            float64   `json:"payment"`
	Principal          float64   `json:"principal"`
	Prepayment         float64   `json:"prepayment"`
	ClosingBalance     float64   `json:"closing_balance"`
}

// Scenario is a named amortization run: the inputs that determine it plus the
// derived ledger. Scenarios are independent values with no shared state.
type Scenario struct {
	Name        string        `json:"name"`
	Terms       LoanTerms     `json:"terms"`
	Prepayments []Prepayment  `json:"prepayments,omitempty"`
	Ledger      []LedgerEntry `json:"ledger"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// TotalInterest returns the interest accrued over the whole ledger.
func (s Scenario) TotalInterest() float64 {
	if len(s.Ledger) == 0 {
		return 0
	}
	return s.Ledger[len(s.Ledger)-1].CumulativeInterest
}

// PayoffDate returns the date the balance reached zero. The second return is
// false when the loan did not fully amortize within its schedule.
func (s Scenario) PayoffDate() (time.Time, bool) {
	if len(s.Ledger) == 0 {
		return time.Time{}, false
	}
	last := s.Ledger[len(s.Ledger)-1]
	if last.ClosingBalance != 0 {
		return time.Time{}, false
	}
	return last.Date, true
}

// ScenarioInput is the persistence bundle that fully determines a Scenario.
// Only inputs are persisted; ledgers are always re-derivable.
type ScenarioInput struct {
	Name        string               `json:"name"`
	Terms       LoanTerms            `json:"terms"`
	Prepayments []Prepayment         `json:"prepayments,omitempty"`
	Purchase    *PurchaseAssumptions `json:"purchase,omitempty"`
	Rent        *RentAssumptions     `json:"rent,omitempty"`
}
