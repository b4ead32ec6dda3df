package http

import (
	"encoding/json"
	"net/http"

	"github.com/kconstable/finance-tools/domain"
	"github.com/kconstable/finance-tools/service"
)

// ScenarioRequest is the input bundle for one amortization run.
type ScenarioRequest struct {
	Name        string              `json:"name"`
	Terms       domain.LoanTerms    `json:"terms"`
	Prepayments []domain.Prepayment `json:"prepayments,omitempty"`
}

type AmortizationHandler struct {
	service *service.AmortizationService
}

func NewAmortizationHandler(service *service.AmortizationService) *AmortizationHandler {
	return &AmortizationHandler{service: service}
}

// Amortize computes the full ledger for one scenario.
func (h *AmortizationHandler) Amortize(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := h.service.RunScenario(req.Name, req.Terms, req.Prepayments)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scenario)
}
