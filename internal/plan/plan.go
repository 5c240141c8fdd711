// Package plan generates business-plan documents from form fields, with
// optional generative augmentation.
package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/llm"
	"github.com/numberleader/reportgen/internal/report"
)

// DefaultFormat is applied when the caller omits planFormat.
const DefaultFormat = "comprehensive"

// Request carries the business-plan form fields.
type Request struct {
	BusinessName   string `json:"businessName"`
	Industry       string `json:"industry"`
	TargetMarket   string `json:"targetMarket"`
	ProductService string `json:"productService"`
	PlanFormat     string `json:"planFormat,omitempty"`
}

var formatInstructions = map[string]string{
	"comprehensive": "Write a comprehensive business plan with sections for executive summary, market analysis, products and services, marketing strategy, operations, and financial outlook.",
	"concise":       "Write a concise one-page business plan covering the opportunity, the offering, the target market, and the path to revenue.",
	"investor":      "Write an investor-oriented business plan pitch emphasising the market opportunity, competitive advantage, traction, and the funding ask.",
}

// MissingFields lists empty required fields by their wire names.
func (r Request) MissingFields() []string {
	var missing []string
	if r.BusinessName == "" {
		missing = append(missing, "businessName")
	}
	if r.Industry == "" {
		missing = append(missing, "industry")
	}
	if r.TargetMarket == "" {
		missing = append(missing, "targetMarket")
	}
	if r.ProductService == "" {
		missing = append(missing, "productService")
	}
	return missing
}

// Format resolves the requested plan format, defaulting when absent. ok is
// false for an unrecognized value.
func (r Request) Format() (string, bool) {
	format := strings.TrimSpace(r.PlanFormat)
	if format == "" {
		return DefaultFormat, true
	}
	if _, known := formatInstructions[format]; !known {
		return format, false
	}
	return format, true
}

// Generate produces the business-plan text. The prompt is a single attempt;
// on failure the fixed outline is returned so the request still succeeds.
func Generate(ctx context.Context, provider llm.Provider, req Request) string {
	logger := common.Logger()
	format, _ := req.Format()
	prompt := fmt.Sprintf("%s\n\nBusiness: %s\nIndustry: %s\nTarget market: %s\nProduct or service: %s\n\n"+
		"Do not add introductions before the plan.",
		formatInstructions[format], req.BusinessName, req.Industry, req.TargetMarket, req.ProductService)

	if provider != nil {
		text, err := provider.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
		if err == nil && strings.TrimSpace(text) != "" {
			return report.Sanitize(text)
		}
		logger.Warn("plan: generation prompt failed, using outline", "format", format, "error", err)
	}
	return defaultPlan(req, format)
}

func defaultPlan(req Request, format string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business Plan: %s (%s)\n\n", req.BusinessName, format)
	fmt.Fprintf(&b, "Overview\n%s operates in the %s industry, offering %s to %s.\n\n",
		req.BusinessName, req.Industry, req.ProductService, req.TargetMarket)
	fmt.Fprintf(&b, "Market\nThe target market is %s. Demand drivers and competitive positioning should be validated with primary research.\n\n",
		req.TargetMarket)
	fmt.Fprintf(&b, "Offering\n%s\n\n", req.ProductService)
	fmt.Fprintf(&b, "Next Steps\n1. Validate pricing with early customers.\n2. Establish distribution partnerships.\n3. Prepare a 12-month financial forecast.")
	return b.String()
}
