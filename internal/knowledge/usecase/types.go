package usecase

import "finpal-guardian/internal/knowledge"

type summarizeInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	RawText string `json:"raw_text"`
}

type entryOutput struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	TargetUser        string   `json:"target_user"`
	SummaryBullets    []string `json:"summary_bullets" validate:"min=1"`
	WhenItApplies     *string  `json:"when_it_applies"`
	ActionsIfAffected []string `json:"actions_if_affected"`
}

type answerInput struct {
	Question string            `json:"question"`
	Language string            `json:"language"`
	Policies []knowledge.Entry `json:"policies"`
}

type answerOutput struct {
	Language    string   `json:"language"`
	Answer      string   `json:"answer" validate:"required"`
	Steps       []string `json:"steps"`
	Disclaimers []string `json:"disclaimers"`
	SourceIDs   []string `json:"source_ids"`
}
