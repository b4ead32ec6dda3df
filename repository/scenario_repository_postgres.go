package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kconstable/finance-tools/domain"
)

// ScenarioRepositoryPostgres stores scenario inputs in Postgres. Terms,
// prepayments, and assumptions are kept as JSON columns since only the
// engine interprets them.
type ScenarioRepositoryPostgres struct {
	db *sql.DB
}

// NewScenarioRepositoryPostgres creates a new Postgres-backed scenario
// repository.
func NewScenarioRepositoryPostgres(db *sql.DB) *ScenarioRepositoryPostgres {
	return &ScenarioRepositoryPostgres{db: db}
}

// Save stores a scenario input bundle.
func (r *ScenarioRepositoryPostgres) Save(input domain.ScenarioInput) error {
	terms, err := json.Marshal(input.Terms)
	if err != nil {
		return fmt.Errorf("failed to marshal terms: %w", err)
	}
	prepayments, err := json.Marshal(input.Prepayments)
	if err != nil {
		return fmt.Errorf("failed to marshal prepayments: %w", err)
	}
	purchase, err := json.Marshal(input.Purchase)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase assumptions: %w", err)
	}
	rent, err := json.Marshal(input.Rent)
	if err != nil {
		return fmt.Errorf("failed to marshal rent assumptions: %w", err)
	}

	query := `
		INSERT INTO finance.scenarios (name, terms, prepayments, purchase, rent, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)`
	if _, err := r.db.Exec(query, input.Name, terms, prepayments, purchase, rent); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

// List returns all stored scenario inputs, oldest first.
func (r *ScenarioRepositoryPostgres) List() ([]domain.ScenarioInput, error) {
	query := `
		SELECT name, terms, prepayments, purchase, rent
		FROM finance.scenarios
		ORDER BY created_at`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var inputs []domain.ScenarioInput
	for rows.Next() {
		var input domain.ScenarioInput
		var terms, prepayments, purchase, rent []byte
		if err := rows.Scan(&input.Name, &terms, &prepayments, &purchase, &rent); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		if err := json.Unmarshal(terms, &input.Terms); err != nil {
			return nil, fmt.Errorf("failed to unmarshal terms: %w", err)
		}
		if err := json.Unmarshal(prepayments, &input.Prepayments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prepayments: %w", err)
		}
		if err := json.Unmarshal(purchase, &input.Purchase); err != nil {
			return nil, fmt.Errorf("failed to unmarshal purchase assumptions: %w", err)
		}
		if err := json.Unmarshal(rent, &input.Rent); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rent assumptions: %w", err)
		}
		inputs = append(inputs, input)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return inputs, nil
}
