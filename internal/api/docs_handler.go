package api

import (
	"net/http"
	"time"

	"github.com/numberleader/reportgen/internal/common"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, logsResponse{Entries: common.LogEntries()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "Valuation Report Generator API",
		"version":     "1.0.0",
		"description": "API for generating company valuation reports",
		"endpoints": []map[string]interface{}{
			{
				"path":        "/generate-report",
				"method":      "POST",
				"description": "Generate a valuation report for a company",
				"parameters": map[string]string{
					"companyName":        "string (required) - The name of the company",
					"companyDescription": "string (required) - Detailed description of the company",
					"dcf":                "string (required) - Discounted Cash Flow value",
					"cca":                "string (required) - Comparable Company Analysis value",
					"ptm":                "string (required) - Precedent Transaction Method value",
					"abv":                "string (required) - Asset-Based Valuation value",
				},
				"response": map[string]interface{}{
					"report": map[string]string{
						"page1": "string - First page content of the report",
						"page2": "string - Second page content of the report",
						"page3": "string - Third page content of the report",
					},
				},
			},
			{
				"path":        "/api/text-report",
				"method":      "POST",
				"description": "Generate and persist a plain-text valuation report",
			},
			{
				"path":        "/generate-valuation-report",
				"method":      "POST",
				"description": "Generate a full valuation report from structured methodology data",
			},
			{
				"path":        "/generate-business-plan",
				"method":      "POST",
				"description": "Generate a business plan (planFormat: comprehensive, concise or investor)",
			},
			{
				"path":        "/api-health",
				"method":      "GET",
				"description": "Check the health status of the API",
				"response": map[string]string{
					"status":    "string - Health status of the API",
					"timestamp": "string - Current timestamp",
				},
			},
		},
	})
}
