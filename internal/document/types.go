package document

import "finpal-guardian/internal/model"

// Product types recognised by extraction.
const (
	ProductHomeLoan        = "home_loan"
	ProductBikeLoan        = "bike_loan"
	ProductPersonalLoan    = "personal_loan"
	ProductCarLoan         = "car_loan"
	ProductCreditCard      = "credit_card"
	ProductHealthInsurance = "health_insurance"
	ProductOther           = "other"
)

// Risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Source points at the document: literal text, a sample identifier or a stored file.
type Source struct {
	FileID      string `json:"file_id,omitempty"`
	TextContent string `json:"text_content,omitempty"`
}

// Request is the Document-Risk pipeline input.
type Request struct {
	Language string `json:"language"`
	Source   Source `json:"source"`
}

// Clause is an important clause as understood by the model.
type Clause struct {
	Title          string `json:"title" validate:"required"`
	Summary        string `json:"summary" validate:"required"`
	RiskLevel      string `json:"risk_level"`
	RawTextSnippet string `json:"raw_text_snippet,omitempty"`
}

// ExtractedData holds the structured fields of a loan or insurance document.
// Amounts stay as strings ("₹1,00,000", "14% p.a.").
type ExtractedData struct {
	ProductType        string   `json:"product_type"`
	PrincipalAmount    string   `json:"principal_amount,omitempty"`
	InterestRate       string   `json:"interest_rate,omitempty"`
	TenureMonths       *int     `json:"tenure_months,omitempty"`
	ProcessingFee      string   `json:"processing_fee,omitempty"`
	PrepaymentCharges  string   `json:"prepayment_charges,omitempty"`
	LatePaymentPenalty string   `json:"late_payment_penalty,omitempty"`
	OtherCharges       []string `json:"other_charges"`
	ImportantClauses   []Clause `json:"important_clauses" validate:"dive"`
}

// RiskData is the scoring result. RiskScore is in [0,1].
type RiskData struct {
	RiskScore        float64  `json:"risk_score"`
	OverallRiskLevel string   `json:"overall_risk_level"`
	FlaggedClauses   []Clause `json:"flagged_clauses"`
	Explanation      string   `json:"explanation,omitempty"`
}

// Summary is the pipeline result.
type Summary struct {
	Language                  string        `json:"language"`
	Extracted                 ExtractedData `json:"extracted"`
	Risk                      RiskData      `json:"risk"`
	PlainSummary              string        `json:"plain_summary"`
	KeyNumbers                []string      `json:"key_numbers"`
	RiskExplanation           []string      `json:"risk_explanation"`
	SuggestedQuestionsForBank []string      `json:"suggested_questions_for_bank"`
}

// Category implements the router's result contract.
func (Summary) Category() model.Category {
	return model.CategoryDocumentRisk
}

// UploadInput is a document to store.
type UploadInput struct {
	Filename string
	Data     []byte
}

// UploadOutput identifies a stored document.
type UploadOutput struct {
	FileID string `json:"file_id"`
	Size   int    `json:"size"`
}
