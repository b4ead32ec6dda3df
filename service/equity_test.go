package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kconstable/finance-tools/domain"
)

func crossoverAssumptions() (domain.PurchaseAssumptions, domain.RentAssumptions) {
	purchase := domain.PurchaseAssumptions{
		PurchasePrice:          500000,
		DownPayment:            100000,
		AnnualAppreciationRate: 0.03,
		DisposalCostRate:       0.05,
		MaintenanceFeeMonthly:  300,
		PropertyTaxMonthly:     400,
	}
	rent := domain.RentAssumptions{
		MonthlyRent:          2400,
		AnnualInvestmentRate: 0.05,
	}
	return purchase, rent
}

func TestComputeEquity_AlignedToLedger(t *testing.T) {

	svc := NewEquityService(newTestLogger())
	scenario := runScenario(t, "buy", baseTerms(), nil)
	purchase, rent := crossoverAssumptions()

	result, err := svc.ComputeEquity(scenario, purchase, rent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Points) != len(scenario.Ledger) {
		t.Fatalf("expected %d points, got %d", len(scenario.Ledger), len(result.Points))
	}
	for i, p := range result.Points {
		if !p.Date.Equal(scenario.Ledger[i].Date) {
			t.Fatalf("point %d not aligned to ledger date: %s vs %s",
				i, p.Date, scenario.Ledger[i].Date)
		}
	}

	// investor equity starts from the compounded down payment
	if result.Points[0].InvestorEquity <= purchase.DownPayment {
		t.Errorf("expected investor equity above the down payment, got %.2f",
			result.Points[0].InvestorEquity)
	}
}

func TestComputeEquity_Idempotent(t *testing.T) {

	svc := NewEquityService(newTestLogger())
	scenario := runScenario(t, "buy", baseTerms(), nil)
	purchase, rent := crossoverAssumptions()

	first, err := svc.ComputeEquity(scenario, purchase, rent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ComputeEquity(scenario, purchase, rent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical inputs to produce identical equity curves")
	}
}

func TestComputeEquity_CrossoverBracketsSignChange(t *testing.T) {

	svc := NewEquityService(newTestLogger())
	scenario := runScenario(t, "buy", baseTerms(), nil)
	purchase, rent := crossoverAssumptions()

	result, err := svc.ComputeEquity(scenario, purchase, rent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Crossovers) == 0 || len(result.Crossovers) > 2 {
		t.Fatalf("expected one or two crossover dates, got %d", len(result.Crossovers))
	}

	for n, date := range result.Crossovers {
		idx := -1
		for i, p := range result.Points {
			if p.Date.Equal(date) {
				idx = i
				break
			}
		}
		if idx == -1 {
			t.Fatalf("crossover date %s not present in the points", date)
		}
		owner := result.Points[idx].OwnerEquity > result.Points[idx].InvestorEquity
		if n == 0 && !owner {
			t.Errorf("expected owner equity ahead at the first crossover date %s", date)
		}
		if n == 1 && owner {
			t.Errorf("expected investor equity ahead again at the reversal date %s", date)
		}
		if idx > 0 {
			prevOwner := result.Points[idx-1].OwnerEquity > result.Points[idx-1].InvestorEquity
			if prevOwner == owner {
				t.Errorf("expected a sign change at crossover date %s", date)
			}
		}
	}
}

func TestComputeEquity_NeverCrosses(t *testing.T) {

	svc := NewEquityService(newTestLogger())
	scenario := runScenario(t, "buy", baseTerms(), nil)
	purchase, rent := crossoverAssumptions()
	rent.AnnualInvestmentRate = 0.12 // investor compounds away for good

	result, err := svc.ComputeEquity(scenario, purchase, rent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Crossovers) != 0 {
		t.Errorf("expected no crossover dates, got %d", len(result.Crossovers))
	}
	for _, p := range result.Points {
		if p.OwnerEquity > p.InvestorEquity {
			t.Fatalf("owner equity unexpectedly ahead on %s", p.Date)
		}
	}
}

func TestComputeEquity_InvalidAssumptions(t *testing.T) {

	svc := NewEquityService(newTestLogger())
	scenario := runScenario(t, "buy", baseTerms(), nil)

	tests := []struct {
		name   string
		mutate func(*domain.PurchaseAssumptions, *domain.RentAssumptions)
	}{
		{"zero price", func(p *domain.PurchaseAssumptions, r *domain.RentAssumptions) { p.PurchasePrice = 0 }},
		{"appreciation out of range", func(p *domain.PurchaseAssumptions, r *domain.RentAssumptions) { p.AnnualAppreciationRate = 1.5 }},
		{"investment out of range", func(p *domain.PurchaseAssumptions, r *domain.RentAssumptions) { r.AnnualInvestmentRate = -1.5 }},
		{"negative down payment", func(p *domain.PurchaseAssumptions, r *domain.RentAssumptions) { p.DownPayment = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase, rent := crossoverAssumptions()
			tt.mutate(&purchase, &rent)
			_, err := svc.ComputeEquity(scenario, purchase, rent)
			if !errors.Is(err, domain.ErrInvalidAssumptions) {
				t.Errorf("expected ErrInvalidAssumptions, got %v", err)
			}
		})
	}
}
