package service

import (
	"fmt"
	"math"
	"time"

	"github.com/kconstable/finance-tools/domain"
	"github.com/sirupsen/logrus"
)

// EquityService computes the rent-vs-buy equity projection from a mortgage
// scenario: owner equity (home value minus balance minus disposal costs)
// against investor equity (the compounded alternative investment of the
// cash-flow differential).
type EquityService struct {
	log *logrus.Logger
}

// NewEquityService creates a new EquityService.
func NewEquityService(log *logrus.Logger) *EquityService {
	return &EquityService{log: log}
}

// ComputeEquity produces both equity curves aligned to the scenario's ledger
// dates and locates the crossover dates. Recomputation with identical inputs
// yields identical output.
func (s *EquityService) ComputeEquity(
	scenario domain.Scenario,
	purchase domain.PurchaseAssumptions,
	rent domain.RentAssumptions,
) (domain.EquityResult, error) {

	if err := validateAssumptions(purchase, rent); err != nil {
		return domain.EquityResult{}, err
	}
	if len(scenario.Ledger) == 0 {
		return domain.EquityResult{}, fmt.Errorf("scenario has no computed ledger")
	}

	perYear := float64(PaymentsPerYear(scenario.Terms.Frequency))
	if perYear == 0 {
		return domain.EquityResult{}, fmt.Errorf("%w: unknown frequency %q",
			domain.ErrInvalidTerms, scenario.Terms.Frequency)
	}

	// monthly carry costs and rent scaled to the payment frequency
	carry := (purchase.MaintenanceFeeMonthly + purchase.PropertyTaxMonthly) * 12 / perYear
	rentPerPeriod := rent.MonthlyRent * 12 / perYear
	dailyInvest := DailyRate(rent.AnnualInvestmentRate)

	invest := purchase.DownPayment
	prevDays := 0
	points := make([]domain.EquityPoint, 0, len(scenario.Ledger))

	for _, e := range scenario.Ledger {
		// compound the investment balance day by day up to this event,
		// then add this period's contribution so it compounds from its
		// own date forward
		invest *= math.Pow(1+dailyInvest, float64(e.ElapsedDays-prevDays))
		contribution := carry
		if diff := e.Payment - rentPerPeriod; diff > 0 {
			contribution += diff
		}
		invest += contribution

		years := float64(e.ElapsedDays) / DaysPerYear
		value := purchase.PurchasePrice * math.Pow(1+purchase.AnnualAppreciationRate, years)
		owner := value - e.ClosingBalance - value*purchase.DisposalCostRate

		points = append(points, domain.EquityPoint{
			Date:           e.Date,
			ElapsedYears:   years,
			OwnerEquity:    roundTo2Decimals(owner),
			InvestorEquity: roundTo2Decimals(invest),
		})
		prevDays = e.ElapsedDays
	}

	return domain.EquityResult{
		Points:     points,
		Crossovers: crossoverDates(points),
	}, nil
}

func validateAssumptions(purchase domain.PurchaseAssumptions, rent domain.RentAssumptions) error {
	if purchase.PurchasePrice <= 0 {
		return fmt.Errorf("%w: purchase price must be positive", domain.ErrInvalidAssumptions)
	}
	if purchase.DownPayment < 0 {
		return fmt.Errorf("%w: down payment must not be negative", domain.ErrInvalidAssumptions)
	}
	if math.Abs(purchase.AnnualAppreciationRate) > 1 {
		return fmt.Errorf("%w: appreciation rate must be within [-1, 1]", domain.ErrInvalidAssumptions)
	}
	if math.Abs(rent.AnnualInvestmentRate) > 1 {
		return fmt.Errorf("%w: investment rate must be within [-1, 1]", domain.ErrInvalidAssumptions)
	}
	return nil
}

// crossoverDates returns the earliest date owner equity first exceeds
// investor equity and, if the order later reverses, the latest such reversal
// date. Curves that never cross report no dates.
func crossoverDates(points []domain.EquityPoint) []time.Time {
	first := -1
	for i, p := range points {
		if p.OwnerEquity > p.InvestorEquity {
			first = i
			break
		}
	}
	if first == -1 {
		return nil
	}

	dates := []time.Time{points[first].Date}
	for i := len(points) - 1; i > first; i-- {
		if points[i].OwnerEquity <= points[i].InvestorEquity &&
			points[i-1].OwnerEquity > points[i-1].InvestorEquity {
			dates = append(dates, points[i].Date)
			break
		}
	}
	return dates
}
