package api

import "github.com/numberleader/reportgen/internal/report"

type generateReportResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Report  report.Pages `json:"report"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type validationResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields"`
}

type valuationResponse struct {
	Report string `json:"report"`
}

type planResponse struct {
	Success      bool   `json:"success"`
	BusinessPlan string `json:"businessPlan,omitempty"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type logsResponse struct {
	Entries interface{} `json:"entries"`
}
