package intent

import "finpal-guardian/internal/model"

// Decision is the routing decision for one request.
type Decision struct {
	Category  model.Category
	Rationale string
}

// Input is the user payload sent to the model.
type Input struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// Output is the model's answer. "route"/"reason" are accepted as synonyms.
// Both a category and a rationale are required.
type Output struct {
	Category  string `json:"category" validate:"required_without=Route"`
	Route     string `json:"route" validate:"required_without=Category"`
	Rationale string `json:"rationale" validate:"required_without=Reason"`
	Reason    string `json:"reason" validate:"required_without=Rationale"`
}
