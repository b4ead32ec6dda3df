package http

import (
	"encoding/json"
	"net/http"

	"github.com/kconstable/finance-tools/domain"
	"github.com/kconstable/finance-tools/repository"
)

// ScenarioHandler stores and lists scenario input bundles. Ledgers are never
// persisted; they are re-derived from the inputs on demand.
type ScenarioHandler struct {
	repo repository.ScenarioRepository
}

func NewScenarioHandler(repo repository.ScenarioRepository) *ScenarioHandler {
	return &ScenarioHandler{repo: repo}
}

// Save stores a scenario input bundle.
func (h *ScenarioHandler) Save(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		http.Error(w, "scenario name is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.Save(input); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List returns all stored scenario input bundles.
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	inputs, err := h.repo.List()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inputs)
}
