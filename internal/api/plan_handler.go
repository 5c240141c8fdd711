package api

import (
	"encoding/json"
	"net/http"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/plan"
)

func (s *Server) handleBusinessPlan(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, KindValidation, "Failed to generate business plan", err)
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		writeMissingFields(w, missing)
		return
	}
	format, ok := req.Format()
	if !ok {
		logger.Warn("api: unrecognized plan format", "format", format)
		writeJSON(w, http.StatusBadRequest, planResponse{
			Success: false,
			Error:   "planFormat must be one of: comprehensive, concise, investor",
		})
		return
	}

	businessPlan := plan.Generate(r.Context(), s.provider, req)
	logger.Info("api: business plan generated", "business", req.BusinessName, "format", format)
	writeJSON(w, http.StatusOK, planResponse{Success: true, BusinessPlan: businessPlan})
}
