package repository

import "github.com/kconstable/finance-tools/domain"

// ScenarioRepository persists scenario input bundles. Derived ledgers are
// never stored; they are recomputed from the inputs on demand.
type ScenarioRepository interface {
	Save(input domain.ScenarioInput) error
	List() ([]domain.ScenarioInput, error)
}
