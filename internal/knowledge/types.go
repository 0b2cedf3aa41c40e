package knowledge

import "finpal-guardian/internal/model"

// RawDocument is a policy or regulation text as stored in the corpus.
type RawDocument struct {
	ID      string `json:"id" yaml:"id"`
	Source  string `json:"source,omitempty" yaml:"source"`
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url,omitempty" yaml:"url"`
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// Entry is the FAQ-style summary of one document.
type Entry struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	TargetUser        string   `json:"target_user"`
	SummaryBullets    []string `json:"summary_bullets"`
	WhenItApplies     string   `json:"when_it_applies,omitempty"`
	ActionsIfAffected []string `json:"actions_if_affected"`
}

// Request is the Knowledge-QA pipeline input.
type Request struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// Answer is the pipeline result. SourceIDs is never empty when the corpus is not.
type Answer struct {
	Language    string   `json:"language"`
	Answer      string   `json:"answer"`
	Steps       []string `json:"steps"`
	Disclaimers []string `json:"disclaimers"`
	SourceIDs   []string `json:"source_ids"`
}

// Category implements the router's result contract.
func (Answer) Category() model.Category {
	return model.CategoryKnowledgeQA
}
