package http

import (
	"encoding/json"
	"net/http"

	"github.com/kconstable/finance-tools/domain"
	"github.com/kconstable/finance-tools/service"
)

type EquityHandler struct {
	amortization *service.AmortizationService
	equity       *service.EquityService
}

func NewEquityHandler(
	amortization *service.AmortizationService,
	equity *service.EquityService,
) *EquityHandler {
	return &EquityHandler{amortization: amortization, equity: equity}
}

type rentVsOwnRequest struct {
	Name        string                     `json:"name"`
	Terms       domain.LoanTerms           `json:"terms"`
	Prepayments []domain.Prepayment        `json:"prepayments,omitempty"`
	Purchase    domain.PurchaseAssumptions `json:"purchase"`
	Rent        domain.RentAssumptions     `json:"rent"`
}

type rentVsOwnResponse struct {
	Scenario domain.Scenario     `json:"scenario"`
	Equity   domain.EquityResult `json:"equity"`
}

// RentVsOwn runs the mortgage scenario and projects owner equity against
// investor equity over the life of the ledger.
func (h *EquityHandler) RentVsOwn(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rentVsOwnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := h.amortization.RunScenario(req.Name, req.Terms, req.Prepayments)
	if err != nil {
		writeError(w, err)
		return
	}

	equity, err := h.equity.ComputeEquity(scenario, req.Purchase, req.Rent)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rentVsOwnResponse{Scenario: scenario, Equity: equity})
}
