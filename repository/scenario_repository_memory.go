package repository

import (
	"sync"

	"github.com/kconstable/finance-tools/domain"
)

// ScenarioRepositoryMemory is an in-memory implementation of
// ScenarioRepository.
type ScenarioRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.ScenarioInput
}

// NewScenarioRepositoryMemory creates a new in-memory scenario repository.
func NewScenarioRepositoryMemory() *ScenarioRepositoryMemory {
	return &ScenarioRepositoryMemory{
		data: []domain.ScenarioInput{},
	}
}

// Save stores the scenario inputs in memory.
func (r *ScenarioRepositoryMemory) Save(input domain.ScenarioInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, input)
	return nil
}

// List returns all stored scenario inputs in insertion order.
func (r *ScenarioRepositoryMemory) List() ([]domain.ScenarioInput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ScenarioInput, len(r.data))
	copy(out, r.data)
	return out, nil
}
