package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/kconstable/finance-tools/domain"
	"github.com/kconstable/finance-tools/repository"
	"github.com/sirupsen/logrus"
)

// AmortizationService walks a payment schedule, accrues daily-compounded
// interest between events, applies prepayments, and emits the resulting
// ledger. Every call receives fresh inputs and returns an independently
// owned result, so concurrent invocation is safe.
type AmortizationService struct {
	repo  repository.ScenarioRepository
	cache repository.CacheRepository
	log   *logrus.Logger
}

// NewAmortizationService creates a new AmortizationService.
func NewAmortizationService(
	repo repository.ScenarioRepository,
	cache repository.CacheRepository,
	log *logrus.Logger,
) *AmortizationService {
	return &AmortizationService{repo: repo, cache: cache, log: log}
}

// RunScenario computes a named amortization scenario. Ledgers are cached per
// input bundle and recomputed wholesale whenever any term or prepayment
// changes; there is no incremental patching.
func (s *AmortizationService) RunScenario(
	name string,
	terms domain.LoanTerms,
	prepayments []domain.Prepayment,
) (domain.Scenario, error) {

	terms.StartDate = dateOnly(terms.StartDate)
	for i := range prepayments {
		prepayments[i].EffectiveDate = dateOnly(prepayments[i].EffectiveDate)
	}

	key, err := scenarioCacheKey(terms, prepayments)
	if err == nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.Scenario
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.log.Debugf("scenario cache hit: %s", key)
				cached.Name = name
				return cached, nil
			}
		}
	}

	ledger, warnings, err := s.Run(terms, prepayments)
	if err != nil {
		return domain.Scenario{}, err
	}

	scenario := domain.Scenario{
		Name:        name,
		Terms:       terms,
		Prepayments: prepayments,
		Ledger:      ledger,
		Warnings:    warnings,
	}

	if raw, err := json.Marshal(scenario); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			s.log.Warnf("failed to cache scenario: %v", err)
		}
	}

	// store the inputs only; the ledger is always re-derivable
	input := domain.ScenarioInput{Name: name, Terms: terms, Prepayments: prepayments}
	if err := s.repo.Save(input); err != nil {
		s.log.Warnf("failed to save scenario inputs: %v", err)
	}

	return scenario, nil
}

// Run generates the ledger for the given terms and prepayments. The returned
// warnings flag non-fatal conditions such as a payment that does not cover
// the accrued interest.
func (s *AmortizationService) Run(
	terms domain.LoanTerms,
	prepayments []domain.Prepayment,
) ([]domain.LedgerEntry, []string, error) {

	if err := validatePrepayments(prepayments); err != nil {
		return nil, nil, err
	}
	events, err := GenerateSchedule(terms)
	if err != nil {
		return nil, nil, err
	}

	start := dateOnly(terms.StartDate)
	daily := DailyRate(terms.AnnualRate)
	balance := roundTo2Decimals(terms.Principal)
	cumInterest := 0.0
	prev := start
	applied := make([]bool, len(prepayments))

	entries := make([]domain.LedgerEntry, 0, len(events))
	var warnings []string

	for _, ev := range events {
		span, err := DaysBetween(prev, ev.Date)
		if err != nil {
			return nil, nil, err
		}
		elapsed := span - 1 // DaysBetween counts both endpoints

		// daily-compounded accrual over the calendar days since the
		// previous event, closed form
		interest := roundTo2Decimals(balance * (math.Pow(1+daily, float64(elapsed)) - 1))
		payoff := roundTo2Decimals(balance + interest)

		pay := ev.Amount
		if pay > payoff {
			// final entry: clamp the payment to the remaining balance
			pay = payoff
		}
		if pay < interest {
			msg := fmt.Sprintf("payment %.2f on %s does not cover accrued interest %.2f; balance will grow",
				pay, ev.Date.Format("2006-01-02"), interest)
			warnings = append(warnings, msg)
			s.log.Warn(msg)
		}

		prepay := 0.0
		for i, p := range prepayments {
			if dateOnly(p.EffectiveDate).After(ev.Date) {
				continue
			}
			switch p.Recurrence {
			case domain.RecurrenceRecurring:
				prepay += p.Amount
			default:
				if !applied[i] {
					prepay += p.Amount
					applied[i] = true
				}
			}
		}
		prepay = roundTo2Decimals(prepay)
		if remaining := roundTo2Decimals(payoff - pay); prepay > remaining {
			prepay = remaining
		}

		closing := roundTo2Decimals(payoff - pay - prepay)
		cumInterest = roundTo2Decimals(cumInterest + interest)
		sinceStart, err := DaysBetween(start, ev.Date)
		if err != nil {
			return nil, nil, err
		}

		entries = append(entries, domain.LedgerEntry{
			Index:              ev.Index,
			Date:               ev.Date,
			ElapsedDays:        sinceStart - 1,
			OpeningBalance:     balance,
			Interest:           interest,
			CumulativeInterest: cumInterest,
			Payment:            pay,
			Principal:          roundTo2Decimals(pay - interest),
			Prepayment:         prepay,
			ClosingBalance:     closing,
		})

		balance = closing
		prev = ev.Date
		if closing == 0 {
			// paid off; remaining scheduled events are discarded
			break
		}
	}

	return entries, warnings, nil
}

func validatePrepayments(prepayments []domain.Prepayment) error {
	for _, p := range prepayments {
		if p.Amount <= 0 {
			return fmt.Errorf("%w: prepayment amount must be positive", domain.ErrInvalidTerms)
		}
		switch p.Recurrence {
		case domain.RecurrenceOneTime, domain.RecurrenceRecurring:
		default:
			return fmt.Errorf("%w: unknown prepayment recurrence %q", domain.ErrInvalidTerms, p.Recurrence)
		}
	}
	return nil
}

// scenarioCacheKey derives a stable key from the input bundle. Identical
// inputs always produce an identical ledger, so the hash fully identifies
// the result.
func scenarioCacheKey(terms domain.LoanTerms, prepayments []domain.Prepayment) (string, error) {
	payload, err := json.Marshal(struct {
		Terms       domain.LoanTerms    `json:"terms"`
		Prepayments []domain.Prepayment `json:"prepayments"`
	}{terms, prepayments})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "scenario:" + hex.EncodeToString(sum[:]), nil
}
