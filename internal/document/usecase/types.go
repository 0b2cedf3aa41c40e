package usecase

import "finpal-guardian/internal/document"

type extractInput struct {
	RawText  string `json:"raw_text"`
	Language string `json:"language"`
}

type scoreInput struct {
	Extracted document.ExtractedData `json:"extracted"`
	Language  string                 `json:"language"`
}

type scoreOutput struct {
	RiskScore        *float64          `json:"risk_score" validate:"required,gte=0,lte=1"`
	OverallRiskLevel string            `json:"overall_risk_level" validate:"required"`
	FlaggedClauses   []document.Clause `json:"flagged_clauses" validate:"dive"`
	Explanation      string            `json:"explanation"`
}

type narrateInput struct {
	Extracted document.ExtractedData `json:"extracted"`
	Risk      document.RiskData      `json:"risk"`
	Language  string                 `json:"language"`
}

type narrateOutput struct {
	PlainSummary              string   `json:"plain_summary" validate:"required"`
	KeyNumbers                []string `json:"key_numbers"`
	RiskExplanation           []string `json:"risk_explanation"`
	SuggestedQuestionsForBank []string `json:"suggested_questions_for_bank"`
}
