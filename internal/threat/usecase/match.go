package usecase

import (
	"strings"

	"finpal-guardian/internal/threat"
)

// fastMatch scans the lower-cased text for every pattern's trigger phrases.
// The first matching pattern in store order is primary.
func fastMatch(text, lang string, patterns []threat.Pattern) threat.Result {
	lower := strings.ToLower(text)

	var matched []threat.Pattern
	for _, p := range patterns {
		for _, phrase := range p.TriggerPhrases {
			if phrase != "" && strings.Contains(lower, phrase) {
				matched = append(matched, p)
				break
			}
		}
	}

	if len(matched) == 0 {
		return threat.Result{
			Language:            lang,
			Classification:      classificationSafe,
			RiskScore:           scoreUnmatched,
			IsScam:              false,
			MatchedPatterns:     []string{},
			RedFlags:            []string{},
			RecommendedAction:   safeAction,
			ShortWarning:        safeWarning,
			DetailedExplanation: append([]string(nil), safeExplanation...),
		}
	}

	primary := matched[0]
	names := make([]string, 0, len(matched))
	var flags []string
	seen := map[string]bool{}
	for _, p := range matched {
		names = append(names, p.Name)
		for _, f := range p.RedFlags {
			if !seen[f] {
				seen[f] = true
				flags = append(flags, f)
			}
		}
	}
	if flags == nil {
		flags = []string{}
	}

	explanation := make([]string, 0, len(flags)+2)
	if primary.Description != "" {
		explanation = append(explanation, primary.Description)
	}
	explanation = append(explanation, flags...)
	if primary.Example != "" {
		explanation = append(explanation, "Typical message: "+primary.Example)
	}

	action := primary.RecommendedAction
	if action == "" {
		action = defaultScamAction
	}

	return threat.Result{
		Language:            lang,
		Classification:      primary.Name,
		RiskScore:           scoreMatched,
		IsScam:              true,
		MatchedPatterns:     names,
		RedFlags:            flags,
		RecommendedAction:   action,
		ShortWarning:        "This looks like a known scam: " + primary.Name + ".",
		DetailedExplanation: explanation,
	}
}
