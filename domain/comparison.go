package domain

import "time"

// ScenarioSummary holds the totals of one side of a comparison.
type ScenarioSummary struct {
	Name           string    `json:"name"`
	TotalInterest  float64   `json:"total_interest"`
	TotalPayments  int       `json:"total_payments"`
	PayoffDate     time.Time `json:"payoff_date,omitzero"`
	FullyAmortized bool      `json:"fully_amortized"`
}

// ComparisonPoint is the per-period delta (A minus B) at one aligned
// elapsed-time offset.
type ComparisonPoint struct {
	ElapsedDays             int     `json:"elapsed_days"`
	BalanceDelta            float64 `json:"balance_delta"`
	CumulativeInterestDelta float64 `json:"cumulative_interest_delta"`
}

// ComparisonResult is a read-only side-by-side view of two scenarios.
// Points are present only when both scenarios share a payment frequency;
// summaries are always comparable.
type ComparisonResult struct {
	A                  ScenarioSummary   `json:"a"`
	B                  ScenarioSummary   `json:"b"`
	TotalInterestDelta float64           `json:"total_interest_delta"`
	Points             []ComparisonPoint `json:"points,omitempty"`
}
