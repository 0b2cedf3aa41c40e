package http

import (
	"strings"

	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/model"
)

type routeReq struct {
	RouteHint string         `json:"route_hint" example:"THREAT_TRIAGE"`
	Text      string         `json:"text" example:"Your KYC is pending, update now at http://kyc-verify.in"`
	Language  string         `json:"language" example:"en"`
	FileID    string         `json:"file_id" example:"sample_personal_loan"`
	Metadata  map[string]any `json:"metadata"`
}

// toInput normalizes a known hint and keeps an unknown one as written, upper-cased,
// so the router can report it.
func (r routeReq) toInput() guardian.InboundRequest {
	hint := strings.TrimSpace(r.RouteHint)
	if hint != "" {
		if c, err := model.ParseCategory(hint); err == nil {
			hint = c.String()
		} else {
			hint = strings.ToUpper(hint)
		}
	}

	md := r.Metadata
	if md == nil {
		md = map[string]any{}
	}

	return guardian.InboundRequest{
		RouteHint: model.Category(hint),
		Text:      r.Text,
		Language:  model.Language(r.Language),
		FileID:    strings.TrimSpace(r.FileID),
		Metadata:  md,
	}
}
