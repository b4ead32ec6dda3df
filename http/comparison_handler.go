package http

import (
	"encoding/json"
	"net/http"

	"github.com/kconstable/finance-tools/service"
)

type ComparisonHandler struct {
	amortization *service.AmortizationService
	comparison   *service.ComparisonService
}

func NewComparisonHandler(
	amortization *service.AmortizationService,
	comparison *service.ComparisonService,
) *ComparisonHandler {
	return &ComparisonHandler{amortization: amortization, comparison: comparison}
}

type compareRequest struct {
	A ScenarioRequest `json:"a"`
	B ScenarioRequest `json:"b"`
}

// Compare runs two scenarios and returns their aligned deltas and summary
// totals.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.amortization.RunScenario(req.A.Name, req.A.Terms, req.A.Prepayments)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.amortization.RunScenario(req.B.Name, req.B.Terms, req.B.Prepayments)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.comparison.Compare(a, b)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
