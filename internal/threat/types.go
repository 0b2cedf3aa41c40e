package threat

import (
	"time"

	"finpal-guardian/internal/model"
)

// Scam categories
const (
	CategoryUPIRefund       = "upi_refund"
	CategoryPhishingLink    = "phishing_link"
	CategoryOTPPhishing     = "otp_phishing"
	CategoryKYCVerification = "kyc_verification"
	CategoryInvestment      = "investment"
	CategoryLottery         = "lottery"
	CategoryOther           = "other"
)

// Pattern is a known scam in the normalized shape used for matching.
// TriggerPhrases are lower-cased.
type Pattern struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Channel           string   `json:"channel,omitempty"`
	Description       string   `json:"description"`
	TriggerPhrases    []string `json:"trigger_phrases"`
	RedFlags          []string `json:"red_flags"`
	RecommendedAction string   `json:"recommended_action,omitempty"`
	Example           string   `json:"example,omitempty"`
	SourceURL         string   `json:"source_url,omitempty"`
}

// Request is the Threat-Triage pipeline input.
type Request struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	URL      string `json:"url,omitempty"`
	UPIID    string `json:"upi_id,omitempty"`
	Channel  string `json:"channel,omitempty"`
}

// Result is the pipeline output. RiskScore, IsScam and MatchedPatterns are
// decided by pattern matching alone.
type Result struct {
	Language            string   `json:"language"`
	Classification      string   `json:"classification"`
	RiskScore           float64  `json:"risk_score"`
	IsScam              bool     `json:"is_scam"`
	MatchedPatterns     []string `json:"matched_patterns"`
	RedFlags            []string `json:"red_flags"`
	RecommendedAction   string   `json:"recommended_action"`
	ShortWarning        string   `json:"short_warning"`
	DetailedExplanation []string `json:"detailed_explanation"`
}

// Category implements the router's result contract.
func (Result) Category() model.Category {
	return model.CategoryThreatTriage
}

// HarvestInput tunes the news query. Zero values use defaults.
type HarvestInput struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	PageSize int    `json:"page_size"`
}

// Article is a scam news item considered by Harvest.
type Article struct {
	Headline  string    `json:"headline"`
	RawText   string    `json:"raw_text"`
	Published time.Time `json:"published"`
	URL       string    `json:"url,omitempty"`
}

type HarvestOutput struct {
	ArticlesFound     int       `json:"articles_found"`
	PatternsExtracted int       `json:"patterns_extracted"`
	Patterns          []Pattern `json:"patterns"`
	Articles          []Article `json:"articles"`
}
