package domain

import "time"

// PurchaseAssumptions are the ownership-side inputs of a rent-vs-buy run.
type PurchaseAssumptions struct {
	PurchasePrice          float64 `json:"purchase_price"`
	DownPayment            float64 `json:"down_payment"`
	AnnualAppreciationRate float64 `json:"annual_appreciation_rate"`
	DisposalCostRate       float64 `json:"disposal_cost_rate"`
	MaintenanceFeeMonthly  float64 `json:"maintenance_fee_monthly"`
	PropertyTaxMonthly     float64 `json:"property_tax_monthly"`
}

// RentAssumptions are the renting-side inputs of a rent-vs-buy run.
type RentAssumptions struct {
	MonthlyRent          float64 `json:"monthly_rent"`
	AnnualInvestmentRate float64 `json:"annual_investment_rate"`
}

// EquityPoint holds both equity curves at one ledger date.
type EquityPoint struct {
	Date           time.Time `json:"date"`
	ElapsedYears   float64   `json:"elapsed_years"`
	OwnerEquity    float64   `json:"owner_equity"`
	InvestorEquity float64   `json:"investor_equity"`
}

// EquityResult is the rent-vs-buy projection: both curves aligned to the
// mortgage ledger dates, plus zero, one, or two crossover dates (earliest
// date owner equity overtakes investor equity, and the latest subsequent
// reversal if any).
type EquityResult struct {
	Points     []EquityPoint `json:"points"`
	Crossovers []time.Time   `json:"crossovers,omitempty"`
}
