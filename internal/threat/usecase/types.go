package usecase

import "finpal-guardian/internal/threat"

type enrichInput struct {
	Result   threat.Result `json:"result"`
	Text     string        `json:"text"`
	Language string        `json:"language"`
	Channel  string        `json:"channel,omitempty"`
	URL      string        `json:"url,omitempty"`
	UPIID    string        `json:"upi_id,omitempty"`
}

// enrichOutput accepts recommended_action as a synonym of what_to_do_now.
type enrichOutput struct {
	ShortWarning        string   `json:"short_warning"`
	DetailedExplanation []string `json:"detailed_explanation"`
	WhatToDoNow         string   `json:"what_to_do_now"`
	RecommendedAction   string   `json:"recommended_action"`
}

type extractInput struct {
	Headline string `json:"headline"`
	RawText  string `json:"raw_text"`
	URL      string `json:"url,omitempty"`
}

type extractOutput struct {
	ScamName              string   `json:"scam_name" validate:"required"`
	Category              string   `json:"category"`
	Channel               string   `json:"channel"`
	ModusOperandi         string   `json:"modus_operandi" validate:"required"`
	KeyPhrases            []string `json:"key_phrases"`
	RedFlags              []string `json:"red_flags"`
	RecommendedUserAction string   `json:"recommended_user_action"`
	ExampleMessage        *string  `json:"example_message"`
}
