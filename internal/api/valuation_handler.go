package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/report"
)

func (s *Server) handleValuationReport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var input report.ValuationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, KindValidation, "Failed to generate valuation report", err)
		return
	}
	if missing := input.MissingFields(); len(missing) > 0 {
		writeMissingFields(w, missing)
		return
	}

	doc := report.BuildValuationReport(r.Context(), s.assembler, input, time.Now())
	logger.Info("api: valuation report generated", "company", input.CompanyName, "methodologies", len(input.Methodologies))
	writeJSON(w, http.StatusOK, valuationResponse{Report: doc})
}
