package report

// ReportRequest carries the six caller-supplied form fields. Valuation
// figures are opaque display strings; nothing here is parsed as a number.
type ReportRequest struct {
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	DCF                string `json:"dcf"`
	CCA                string `json:"cca"`
	PTM                string `json:"ptm"`
	ABV                string `json:"abv"`
}

// MissingFields lists the names of required fields that are empty, in the
// order the API documents them.
func (r ReportRequest) MissingFields() []string {
	var missing []string
	if r.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if r.CompanyDescription == "" {
		missing = append(missing, "companyDescription")
	}
	if r.DCF == "" {
		missing = append(missing, "dcf")
	}
	if r.CCA == "" {
		missing = append(missing, "cca")
	}
	if r.PTM == "" {
		missing = append(missing, "ptm")
	}
	if r.ABV == "" {
		missing = append(missing, "abv")
	}
	return missing
}

// Values returns the four valuation figures in canonical method order.
func (r ReportRequest) Values() [4]string {
	return [4]string{r.DCF, r.CCA, r.PTM, r.ABV}
}

// MethodEntry is one rendered valuation methodology. Every methodology
// surface carries exactly four entries in canonical order.
type MethodEntry struct {
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Valuation      string `json:"valuation"`
	Recommendation string `json:"recommendation"`
}

// MethodDefinition holds the canonical prose for one methodology. The
// company name is interpolated at render time.
type MethodDefinition struct {
	Code        string
	Name        string
	description string
}

// PTMLabel is the single canonical name for the PTM methodology. Earlier
// revisions rendered two different expansions of the abbreviation from
// near-duplicate code paths; everything now reads from this one label.
const PTMLabel = "Precedent Transaction Method (PTM)"

// Methods is the fixed methodology catalog, in the order every report
// renders them: DCF, CCA, PTM, ABV.
var Methods = [4]MethodDefinition{
	{
		Code: "DCF",
		Name: "Discounted Cash Flow (DCF)",
		description: "The Discounted Cash Flow (DCF) method estimates the value of %s based on its projected future cash flows, " +
			"discounted to their present value using an appropriate discount rate. This approach reflects the company's ability " +
			"to generate cash flows over time and accounts for the time value of money.",
	},
	{
		Code: "CCA",
		Name: "Comparable Company Analysis (CCA)",
		description: "The Comparable Company Analysis (CCA) method values %s by comparing it to similar companies in the industry. " +
			"Key financial metrics and valuation multiples are analyzed to derive a fair market value.",
	},
	{
		Code: "PTM",
		Name: PTMLabel,
		description: "The Precedent Transaction Method (PTM) evaluates %s based on the purchase prices of similar companies in " +
			"recent transactions. This method provides insight into the premiums paid for comparable businesses in the market.",
	},
	{
		Code: "ABV",
		Name: "Asset-Based Valuation (ABV)",
		description: "The Asset-Based Valuation (ABV) method calculates the value of %s based on its tangible and intangible assets. " +
			"This approach is particularly relevant for companies with significant intellectual property or other valuable assets.",
	},
}
