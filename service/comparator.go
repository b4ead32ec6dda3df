package service

import (
	"fmt"

	"github.com/kconstable/finance-tools/domain"
	"github.com/sirupsen/logrus"
)

// ComparisonService aligns two amortization runs for side-by-side
// comparison. Comparison is read-only; neither scenario is mutated.
type ComparisonService struct {
	log *logrus.Logger
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(log *logrus.Logger) *ComparisonService {
	return &ComparisonService{log: log}
}

// Compare builds per-period deltas (A minus B) and summary totals for two
// scenarios. Alignment is by elapsed time since each scenario's own start
// date, so scenarios with different start dates remain comparable. Scenarios
// with different frequencies are compared on summaries only.
func (s *ComparisonService) Compare(a, b domain.Scenario) (domain.ComparisonResult, error) {
	if len(a.Ledger) == 0 || len(b.Ledger) == 0 {
		return domain.ComparisonResult{}, fmt.Errorf("both scenarios must have a computed ledger")
	}

	result := domain.ComparisonResult{
		A: summarize(a),
		B: summarize(b),
	}
	result.TotalInterestDelta = roundTo2Decimals(result.A.TotalInterest - result.B.TotalInterest)

	if a.Terms.Frequency != b.Terms.Frequency {
		s.log.Debugf("scenarios %q and %q use different frequencies; summary comparison only",
			a.Name, b.Name)
		return result, nil
	}

	byElapsed := make(map[int]domain.LedgerEntry, len(b.Ledger))
	for _, e := range b.Ledger {
		byElapsed[e.ElapsedDays] = e
	}
	for _, e := range a.Ledger {
		other, ok := byElapsed[e.ElapsedDays]
		if !ok {
			continue
		}
		result.Points = append(result.Points, domain.ComparisonPoint{
			ElapsedDays:             e.ElapsedDays,
			BalanceDelta:            roundTo2Decimals(e.ClosingBalance - other.ClosingBalance),
			CumulativeInterestDelta: roundTo2Decimals(e.CumulativeInterest - other.CumulativeInterest),
		})
	}
	return result, nil
}

func summarize(sc domain.Scenario) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:          sc.Name,
		TotalInterest: sc.TotalInterest(),
		TotalPayments: len(sc.Ledger),
	}
	if payoff, ok := sc.PayoffDate(); ok {
		summary.PayoffDate = payoff
		summary.FullyAmortized = true
	}
	return summary
}
