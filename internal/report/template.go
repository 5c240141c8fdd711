package report

import (
	"fmt"
	"strings"
	"time"
)

const (
	producerName    = "Number Leader"
	producerWebsite = "https://www.numberleader.com"
	producerCity    = "BENGALURU, INDIA"
	producerEmail   = "info@numberleader.com"
)

const aboutProducer = "At Number Leader, we are more than just an investment bank; we are at the forefront of financial innovation. " +
	"We specialize in delivering cutting-edge valuation, benchmarking, and market research services by leveraging data, technology, " +
	"and artificial intelligence. Our mission is to empower businesses with actionable insights and strategic financial solutions " +
	"to drive growth and success."

const serviceProvided = "Number Leader has been engaged to provide a comprehensive valuation service for %s. This report outlines " +
	"the valuation methodologies employed, the results derived, and the conclusions drawn to determine the fair value of %s."

const conclusionRange = "Based on the four valuation methodologies\u2014Discounted Cash Flow (DCF), Comparable Company Analysis (CCA), " +
	"Precedent Transaction Method (PTM), and Asset-Based Valuation (ABV)\u2014the estimated value of %s ranges between %s and %s."

const conclusionClosing = "This valuation report is a foundation for strategic decision-making, whether for fundraising, " +
	"mergers and acquisitions, or internal planning purposes."

const disclaimerText = "This report is intended solely for the use of %s and its authorized representatives. The valuations provided " +
	"are based on the information available at the time of analysis and are subject to change based on market conditions, additional " +
	"data, or other factors. Number Leader assumes no liability for decisions made based on this report."

// DefaultFactors is the conclusion factor list used whenever AI-generated
// recommendations are unavailable.
const DefaultFactors = "1. The company's growth potential and scalability in its target market.\n" +
	"2. The strength of its intellectual property and technological assets.\n" +
	"3. Market trends and investor sentiment in the industry."

// Describe renders the methodology description for a company.
func (d MethodDefinition) Describe(company string) string {
	return fmt.Sprintf(d.description, company)
}

// Recommend renders the one-line valuation recommendation for a company and
// figure.
func (d MethodDefinition) Recommend(company, value string) string {
	return fmt.Sprintf("Number Leader values %s at %s using the %s method.", company, value, d.Code)
}

// SynthesizeMethods builds the four canonical method entries directly from
// form values, using the fixed catalog prose.
func SynthesizeMethods(company string, values [4]string) []MethodEntry {
	entries := make([]MethodEntry, 0, len(Methods))
	for i, def := range Methods {
		entries = append(entries, MethodEntry{
			Index:          i + 1,
			Name:           def.Name,
			Description:    def.Describe(company),
			Valuation:      values[i],
			Recommendation: def.Recommend(company, values[i]),
		})
	}
	return entries
}

// Document is the single internal report model. Every output surface (the
// page map, the plain-text document) is a projection of this struct, so the
// formats cannot drift apart.
type Document struct {
	Company     string
	Description string
	Date        time.Time
	Methods     []MethodEntry
	// Factors is the numbered conclusion factor list; AI augmentation may
	// replace the default block.
	Factors string
}

// Compose builds the report document from validated form fields. Callers
// must reject requests with missing fields before composition.
func Compose(req ReportRequest, now time.Time) Document {
	return Document{
		Company:     req.CompanyName,
		Description: req.CompanyDescription,
		Date:        now,
		Methods:     SynthesizeMethods(req.CompanyName, req.Values()),
		Factors:     DefaultFactors,
	}
}

// FormattedDate renders the report date in the long US form used on every
// surface.
func (d Document) FormattedDate() string {
	return d.Date.Format("January 2, 2006")
}

// Pages is the three-page report surface returned by the JSON endpoint.
type Pages struct {
	Page1 string `json:"page1"`
	Page2 string `json:"page2"`
	Page3 string `json:"page3"`
}

// Pages projects the document onto the segmented markdown surface.
func (d Document) Pages() Pages {
	var p1 strings.Builder
	fmt.Fprintf(&p1, "\n# Valuation Report\n\n")
	fmt.Fprintf(&p1, "Produced By: %s\nDate: %s\n\n", producerName, d.FormattedDate())
	fmt.Fprintf(&p1, "## About %s\n\n%s\n\n", producerName, aboutProducer)
	fmt.Fprintf(&p1, "## About %s\n\n%s\n\n", d.Company, d.Description)
	fmt.Fprintf(&p1, "## Service Provided\n\n%s\n", fmt.Sprintf(serviceProvided, d.Company, d.Company))

	var p2 strings.Builder
	fmt.Fprintf(&p2, "\n# Valuation Methodologies\n")
	for _, m := range d.Methods {
		fmt.Fprintf(&p2, "\n## Method %d: %s\n\n", m.Index, m.Name)
		fmt.Fprintf(&p2, "- **Description:**\n%s\n", m.Description)
		fmt.Fprintf(&p2, "- **Valuation:** %s\n", m.Valuation)
		fmt.Fprintf(&p2, "\U0001F449 %s\n", m.Recommendation)
	}

	var p3 strings.Builder
	fmt.Fprintf(&p3, "\n# Conclusion\n\n")
	fmt.Fprintf(&p3, "%s\n\n", fmt.Sprintf(conclusionRange, d.Company, d.valueOf("PTM"), d.valueOf("ABV")))
	fmt.Fprintf(&p3, "Number Leader recommends considering the following factors to arrive at a fair and strategic valuation for %s:\n%s\n\n", d.Company, d.Factors)
	fmt.Fprintf(&p3, "%s\n\n---\n\n", conclusionClosing)
	fmt.Fprintf(&p3, "## Prepared by\n\n%s\n%s\n%s\n%s\n\n", producerName, producerWebsite, producerCity, producerEmail)
	fmt.Fprintf(&p3, "## Disclaimer\n\n%s\n", fmt.Sprintf(disclaimerText, d.Company))

	return Pages{Page1: p1.String(), Page2: p2.String(), Page3: p3.String()}
}

// Text projects the document onto the single plain-text surface persisted by
// the text endpoint.
func (d Document) Text() string {
	var b strings.Builder
	writeHeading := func(title, underline string) {
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat(underline, len(title)) + "\n")
	}

	writeHeading("VALUATION REPORT", "=")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Produced By: %s\nDate: %s\n\n", producerName, d.FormattedDate())

	writeHeading("ABOUT NUMBER LEADER", "-")
	b.WriteString(aboutProducer + "\n\n")

	writeHeading("ABOUT "+strings.ToUpper(d.Company), "-")
	b.WriteString(d.Description + "\n\n")

	writeHeading("SERVICE PROVIDED", "-")
	b.WriteString(fmt.Sprintf(serviceProvided, d.Company, d.Company) + "\n\n")

	writeHeading("VALUATION METHODOLOGIES", "=")
	b.WriteString("\n")
	for _, m := range d.Methods {
		writeHeading(fmt.Sprintf("Method %d: %s", m.Index, m.Name), "-")
		fmt.Fprintf(&b, "Description: %s\n", m.Description)
		fmt.Fprintf(&b, "Valuation: %s\n\n", m.Valuation)
	}

	writeHeading("CONCLUSION", "=")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(conclusionRange, d.Company, d.valueOf("PTM"), d.valueOf("ABV")) + "\n\n")

	writeHeading("RECOMMENDATIONS", "-")
	b.WriteString(d.Factors + "\n\n")

	writeHeading("DISCLAIMER", "-")
	b.WriteString(fmt.Sprintf(disclaimerText, d.Company) + "\n\n")

	fmt.Fprintf(&b, "Prepared by %s\n%s\n%s\n", producerName, producerCity, producerEmail)
	return b.String()
}

func (d Document) valueOf(code string) string {
	for i, def := range Methods {
		if def.Code == code && i < len(d.Methods) {
			return d.Methods[i].Valuation
		}
	}
	return ""
}
