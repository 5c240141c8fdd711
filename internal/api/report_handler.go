package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/report"
)

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req report.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, KindValidation, "Failed to generate report", err)
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		writeMissingFields(w, missing)
		return
	}

	doc := report.Compose(req, time.Now())
	doc.Factors = s.assembler.ConclusionFactors(r.Context(), req.CompanyDescription)

	logger.Info("api: report generated", "company", req.CompanyName)
	writeJSON(w, http.StatusOK, generateReportResponse{
		Status:  "success",
		Message: "Report generated successfully",
		Report:  doc.Pages(),
	})
}

func (s *Server) handleTextReport(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req report.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, KindValidation, "Failed to generate text report", err)
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		writeMissingFields(w, missing)
		return
	}

	doc := report.Compose(req, time.Now())
	doc.Factors = s.assembler.ConclusionFactors(r.Context(), req.CompanyDescription)
	text := doc.Text()

	if s.store == nil {
		writeFailure(w, KindPersistence, "Failed to generate text report", errors.New("report store not configured"))
		return
	}
	companyID, err := s.store.SaveReport(r.Context(), req, text)
	if err != nil {
		writeFailure(w, KindPersistence, "Failed to generate text report", err)
		return
	}

	logger.Info("api: text report persisted", "company", req.CompanyName, "company_id", companyID)
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
