package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/numberleader/reportgen/internal/llm"
	"github.com/numberleader/reportgen/internal/store"
)

// failingProvider simulates an unreachable generative backend; every report
// must still complete from template defaults.
type failingProvider struct{}

func (failingProvider) Chat(context.Context, []llm.Message) (string, error) {
	return "", errors.New("provider down")
}

func (failingProvider) Name() string { return "failing" }

func newTestServer(t *testing.T, st *store.Store) *Server {
	t.Helper()
	return NewServer(st, failingProvider{})
}

func postJSON(t *testing.T, srv *Server, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func reportPayload() map[string]string {
	return map[string]string{
		"companyName":        "Acme",
		"companyDescription": "A tech startup",
		"dcf":                "$1M",
		"cca":                "$1.2M",
		"ptm":                "$0.9M",
		"abv":                "$0.8M",
	}
}

func TestGenerateReportEndToEnd(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv, "/generate-report", reportPayload())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp generateReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status field = %q", resp.Status)
	}
	if !strings.Contains(resp.Report.Page1, "Acme") || !strings.Contains(resp.Report.Page1, "A tech startup") {
		t.Errorf("page1 missing request fields:\n%s", resp.Report.Page1)
	}
	for _, figure := range []string{"$1M", "$1.2M", "$0.9M", "$0.8M"} {
		if !strings.Contains(resp.Report.Page2, figure) {
			t.Errorf("page2 missing figure %q", figure)
		}
	}
	// The provider is down, so the conclusion carries the default factors.
	if !strings.Contains(resp.Report.Page3, "The company's growth potential") {
		t.Errorf("page3 missing default factors:\n%s", resp.Report.Page3)
	}
}

func TestGenerateReportMissingFieldPerField(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, field := range []string{"companyName", "companyDescription", "dcf", "cca", "ptm", "abv"} {
		payload := reportPayload()
		delete(payload, field)
		rec := postJSON(t, srv, "/generate-report", payload)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("field %s: status = %d", field, rec.Code)
		}
		var resp validationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("field %s: decode response: %v", field, err)
		}
		if resp.Error != "All fields are required" {
			t.Errorf("field %s: error = %q", field, resp.Error)
		}
		if len(resp.MissingFields) != 1 || resp.MissingFields[0] != field {
			t.Errorf("field %s: missingFields = %v", field, resp.MissingFields)
		}
	}
}

func TestGenerateReportRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/generate-report", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestTextReportPersistsAndReturnsPlainText(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	srv := newTestServer(t, st)

	rec := postJSON(t, srv, "/api/text-report", reportPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"VALUATION REPORT", "ABOUT ACME", "$1M", "$0.8M"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	count, err := st.CompanyCount(context.Background())
	if err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if count != 1 {
		t.Errorf("company count = %d, want 1", count)
	}
}

func TestTextReportWithoutStore(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv, "/api/text-report", reportPayload())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "The report could not be saved" {
		t.Errorf("error = %q", resp.Error)
	}
	if strings.Contains(rec.Body.String(), "not configured") {
		t.Errorf("internal error text leaked to caller: %s", rec.Body.String())
	}
}

func TestValuationReportEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	payload := map[string]interface{}{
		"company_name":         "Acme Private Limited",
		"incorporation_date":   "2019-06-01",
		"business_description": "A SaaS analytics platform",
		"company_status":       "Active",
		"registered_office":    "Bengaluru, Karnataka",
		"valuation_methodologies": []map[string]string{
			{"method_name": "Discounted Cash Flow (DCF)", "description": "Projected cash flows", "valuation_amount": "10 crores", "currency": "INR"},
		},
		"valuation_output": map[string]string{
			"equity_value_pre_money": "₹11 crores",
			"fair_value_per_share":   "₹110",
			"face_value":             "₹10",
		},
	}
	rec := postJSON(t, srv, "/generate-valuation-report", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp valuationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, want := range []string{"# Valuation Report", "## Executive Summary", "Acme Private Limited", "## Valuation Output", "## Disclaimer"} {
		if !strings.Contains(resp.Report, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if count := strings.Count(resp.Report, "### Method "); count != 4 {
		t.Errorf("expected 4 method sections, got %d", count)
	}
}

func TestValuationReportMissingFields(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := postJSON(t, srv, "/generate-valuation-report", map[string]string{"company_name": "Acme"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp validationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, want := range []string{"incorporation_date", "valuation_methodologies", "valuation_output.face_value"} {
		found := false
		for _, field := range resp.MissingFields {
			if field == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missingFields %v lacks %q", resp.MissingFields, want)
		}
	}
}

func TestBusinessPlanEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	payload := map[string]string{
		"businessName":   "Brightside Foods",
		"industry":       "packaged foods",
		"targetMarket":   "urban households",
		"productService": "ready-to-eat meal kits",
	}
	rec := postJSON(t, srv, "/generate-business-plan", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp planResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !strings.Contains(resp.BusinessPlan, "Brightside Foods") {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestBusinessPlanRejectsUnknownFormat(t *testing.T) {
	srv := newTestServer(t, nil)
	payload := map[string]string{
		"businessName":   "Brightside Foods",
		"industry":       "packaged foods",
		"targetMarket":   "urban households",
		"productService": "ready-to-eat meal kits",
		"planFormat":     "poem",
	}
	rec := postJSON(t, srv, "/generate-business-plan", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp planResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || !strings.Contains(resp.Error, "planFormat must be one of") {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api-health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q: %v", resp.Timestamp, err)
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["entries"]; !ok {
		t.Errorf("response missing entries: %v", resp)
	}
}

func TestIndexDocumentsEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"/generate-report", "/api/text-report", "/generate-valuation-report", "/generate-business-plan", "/api-health"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}
