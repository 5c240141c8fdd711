package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValuationInput is the structured body accepted by the full valuation
// report endpoint. Amounts are opaque display strings.
type ValuationInput struct {
	CompanyName         string             `json:"company_name"`
	IncorporationDate   string             `json:"incorporation_date"`
	BusinessDescription string             `json:"business_description"`
	CompanyStatus       string             `json:"company_status"`
	RegisteredOffice    string             `json:"registered_office"`
	Methodologies       []InputMethodology `json:"valuation_methodologies"`
	DCFAssumptions      map[string]string  `json:"dcf_assumptions,omitempty"`
	Output              ValuationOutput    `json:"valuation_output"`
}

// InputMethodology is one caller-supplied methodology result.
type InputMethodology struct {
	MethodName      string `json:"method_name"`
	Description     string `json:"description"`
	ValuationAmount string `json:"valuation_amount"`
	Currency        string `json:"currency"`
}

// ValuationOutput carries the headline figures of the valuation exercise.
type ValuationOutput struct {
	EquityValuePreMoney string `json:"equity_value_pre_money"`
	FairValuePerShare   string `json:"fair_value_per_share"`
	FaceValue           string `json:"face_value"`
}

// MissingFields lists empty required fields by their wire names.
func (v ValuationInput) MissingFields() []string {
	var missing []string
	if v.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if v.IncorporationDate == "" {
		missing = append(missing, "incorporation_date")
	}
	if v.BusinessDescription == "" {
		missing = append(missing, "business_description")
	}
	if v.CompanyStatus == "" {
		missing = append(missing, "company_status")
	}
	if v.RegisteredOffice == "" {
		missing = append(missing, "registered_office")
	}
	if len(v.Methodologies) == 0 {
		missing = append(missing, "valuation_methodologies")
	}
	if v.Output.EquityValuePreMoney == "" {
		missing = append(missing, "valuation_output.equity_value_pre_money")
	}
	if v.Output.FairValuePerShare == "" {
		missing = append(missing, "valuation_output.fair_value_per_share")
	}
	if v.Output.FaceValue == "" {
		missing = append(missing, "valuation_output.face_value")
	}
	return missing
}

// SynthesizedMethods projects the caller-supplied methodologies onto the
// canonical four-entry shape, padding gaps with catalog prose so the
// four-entry invariant holds regardless of what was submitted.
func (v ValuationInput) SynthesizedMethods() []MethodEntry {
	entries := make([]MethodEntry, 0, methodCount)
	for i := 0; i < methodCount; i++ {
		def := Methods[i]
		entry := MethodEntry{
			Index:       i + 1,
			Name:        def.Name,
			Description: def.Describe(v.CompanyName),
		}
		if i < len(v.Methodologies) {
			m := v.Methodologies[i]
			if strings.TrimSpace(m.MethodName) != "" {
				entry.Name = strings.TrimSpace(m.MethodName)
			}
			if strings.TrimSpace(m.Description) != "" {
				entry.Description = strings.TrimSpace(m.Description)
			}
			entry.Valuation = strings.TrimSpace(strings.TrimSpace(m.Currency) + " " + strings.TrimSpace(m.ValuationAmount))
		}
		entry.Recommendation = fmt.Sprintf("Number Leader values %s at %s using the %s.", v.CompanyName, entry.Valuation, entry.Name)
		entries = append(entries, entry)
	}
	return entries
}

const (
	promptExecutiveSummary     = "executive_summary"
	promptCompanyInfo          = "company_info"
	promptBusinessOverview     = "business_overview"
	promptMethodologyRationale = "methodology_rationale"
	promptFinalOpinion         = "final_opinion"
	promptRecommendations      = "recommendations"
)

// BuildValuationReport assembles the full markdown report for a structured
// valuation request. The six augmentation prompts run concurrently; every
// failed prompt resolves to template prose, so the report always completes.
func BuildValuationReport(ctx context.Context, assembler *Assembler, input ValuationInput, now time.Time) string {
	jobs := valuationPromptJobs(input)
	results := assembler.Augment(ctx, jobs)

	methods := input.SynthesizedMethods()
	if rationale := results[promptMethodologyRationale]; rationale.FromAI {
		methods = ExtractMethods(rationale.Text, methods)
		for i := range methods {
			methods[i].Description = Sanitize(methods[i].Description)
			methods[i].Valuation = NormalizeCurrency(methods[i].Valuation)
			methods[i].Recommendation = Sanitize(methods[i].Recommendation)
		}
	}

	section := func(key string) string {
		result := results[key]
		if !result.FromAI {
			return result.Text
		}
		return Sanitize(result.Text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Valuation Report\n\n")
	fmt.Fprintf(&b, "Produced By: %s\nDate: %s\n\n", producerName, now.Format("January 2, 2006"))

	fmt.Fprintf(&b, "## Executive Summary\n\n%s\n\n", section(promptExecutiveSummary))

	fmt.Fprintf(&b, "## Company Information\n\n")
	fmt.Fprintf(&b, "- Company Name: %s\n", input.CompanyName)
	fmt.Fprintf(&b, "- Incorporation Date: %s\n", input.IncorporationDate)
	fmt.Fprintf(&b, "- Company Status: %s\n", input.CompanyStatus)
	fmt.Fprintf(&b, "- Registered Office: %s\n\n", input.RegisteredOffice)
	fmt.Fprintf(&b, "%s\n\n", section(promptCompanyInfo))

	fmt.Fprintf(&b, "## Business Overview\n\n%s\n\n", section(promptBusinessOverview))

	fmt.Fprintf(&b, "## Valuation Methodologies\n")
	for _, m := range methods {
		fmt.Fprintf(&b, "\n### Method %d: %s\n\n", m.Index, m.Name)
		fmt.Fprintf(&b, "%s\n\n", m.Description)
		fmt.Fprintf(&b, "Valuation: %s\n\n", m.Valuation)
		fmt.Fprintf(&b, "%s\n", m.Recommendation)
	}
	b.WriteString("\n")

	if len(input.DCFAssumptions) > 0 {
		fmt.Fprintf(&b, "## DCF Assumptions\n\n")
		keys := make([]string, 0, len(input.DCFAssumptions))
		for key := range input.DCFAssumptions {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", key, input.DCFAssumptions[key])
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Valuation Output\n\n")
	fmt.Fprintf(&b, "- Equity Value (Pre-Money): %s\n", input.Output.EquityValuePreMoney)
	fmt.Fprintf(&b, "- Fair Value per Share: %s\n", input.Output.FairValuePerShare)
	fmt.Fprintf(&b, "- Face Value: %s\n\n", input.Output.FaceValue)

	fmt.Fprintf(&b, "## Final Opinion\n\n%s\n\n", section(promptFinalOpinion))
	fmt.Fprintf(&b, "## Recommendations\n\n%s\n\n", section(promptRecommendations))
	fmt.Fprintf(&b, "## Disclaimer\n\n%s\n", fmt.Sprintf(disclaimerText, input.CompanyName))
	return b.String()
}

func valuationPromptJobs(input ValuationInput) []PromptJob {
	var methodLines []string
	for i, m := range input.Methodologies {
		methodLines = append(methodLines, fmt.Sprintf("%d. %s: %s %s (%s)", i+1, m.MethodName, m.Currency, m.ValuationAmount, m.Description))
	}
	methodSummary := strings.Join(methodLines, "\n")

	return []PromptJob{
		{
			Key: promptExecutiveSummary,
			Prompt: fmt.Sprintf("Write a two-paragraph executive summary for a valuation report on %s. Business: %s. "+
				"Equity value (pre-money): %s. Do not add headings or introductions.",
				input.CompanyName, input.BusinessDescription, input.Output.EquityValuePreMoney),
			Fallback: fmt.Sprintf("%s engaged %s to determine the fair value of its equity. Based on the methodologies applied, "+
				"the pre-money equity value is estimated at %s, with a fair value per share of %s against a face value of %s.",
				input.CompanyName, producerName, input.Output.EquityValuePreMoney, input.Output.FairValuePerShare, input.Output.FaceValue),
		},
		{
			Key: promptCompanyInfo,
			Prompt: fmt.Sprintf("Write one short paragraph describing %s, a %s company incorporated on %s with registered office at %s. "+
				"Do not add headings or introductions.",
				input.CompanyName, input.CompanyStatus, input.IncorporationDate, input.RegisteredOffice),
			Fallback: fmt.Sprintf("%s was incorporated on %s and is currently registered as %s, with its registered office at %s.",
				input.CompanyName, input.IncorporationDate, input.CompanyStatus, input.RegisteredOffice),
		},
		{
			Key: promptBusinessOverview,
			Prompt: fmt.Sprintf("Write a concise business overview for %s based on this description: %q. "+
				"Do not add headings or introductions.", input.CompanyName, input.BusinessDescription),
			Fallback: input.BusinessDescription,
		},
		{
			Key: promptMethodologyRationale,
			Prompt: fmt.Sprintf("Present these valuation methodologies for %s as markdown. For each, use exactly this structure:\n"+
				"## Method N: NAME\n- **Description:**\nDESCRIPTION\n- **Valuation:** AMOUNT\n%s RECOMMENDATION\n\nMethodologies:\n%s",
				input.CompanyName, recommendationMarker, methodSummary),
			Fallback: "",
		},
		{
			Key: promptFinalOpinion,
			Prompt: fmt.Sprintf("Write a short final opinion on the fair value of %s given an equity value of %s and fair value per share of %s. "+
				"Do not add headings or introductions.",
				input.CompanyName, input.Output.EquityValuePreMoney, input.Output.FairValuePerShare),
			Fallback: fmt.Sprintf("In our opinion, the fair value of %s's equity as at the valuation date is reasonably stated at %s, "+
				"corresponding to a fair value per share of %s.",
				input.CompanyName, input.Output.EquityValuePreMoney, input.Output.FairValuePerShare),
		},
		{
			Key:      promptRecommendations,
			Prompt:   fmt.Sprintf(factorsPromptTemplate, input.BusinessDescription),
			Fallback: DefaultFactors,
		},
	}
}
