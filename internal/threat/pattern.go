package threat

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// RawPattern accepts both stored pattern shapes: the simple {name, description}
// record and the rich record with scam_name, modus_operandi, key_phrases and so on.
type RawPattern struct {
	ID       string `json:"id,omitempty" yaml:"id"`
	Name     string `json:"name,omitempty" yaml:"name"`
	ScamName string `json:"scam_name,omitempty" yaml:"scam_name"`
	Category string `json:"category,omitempty" yaml:"category"`
	Channel  string `json:"channel,omitempty" yaml:"channel"`

	Description   string `json:"description,omitempty" yaml:"description"`
	ModusOperandi string `json:"modus_operandi,omitempty" yaml:"modus_operandi"`

	TriggerPhrases []string `json:"trigger_phrases,omitempty" yaml:"trigger_phrases"`
	KeyPhrases     []string `json:"key_phrases,omitempty" yaml:"key_phrases"`
	RedFlags       []string `json:"red_flags,omitempty" yaml:"red_flags"`

	RecommendedAction     string `json:"recommended_action,omitempty" yaml:"recommended_action"`
	RecommendedUserAction string `json:"recommended_user_action,omitempty" yaml:"recommended_user_action"`

	Example        string `json:"example,omitempty" yaml:"example"`
	ExampleMessage string `json:"example_message,omitempty" yaml:"example_message"`
	SourceURL      string `json:"source_url,omitempty" yaml:"source_url"`
}

// Normalize converts either shape into a Pattern. A simple record without
// phrases matches on its own name. The id defaults to a slug of the name.
func (r RawPattern) Normalize() (Pattern, error) {
	name := firstNonEmpty(r.Name, r.ScamName)
	if name == "" {
		return Pattern{}, fmt.Errorf("%w: name is required", ErrInvalidPattern)
	}

	phrases := cleanPhrases(append(append([]string{}, r.TriggerPhrases...), r.KeyPhrases...))
	if len(phrases) == 0 {
		phrases = []string{strings.ToLower(name)}
	}

	p := Pattern{
		ID:                firstNonEmpty(r.ID, slug(name)),
		Name:              name,
		Category:          strings.ToLower(firstNonEmpty(r.Category, CategoryOther)),
		Channel:           strings.TrimSpace(r.Channel),
		Description:       firstNonEmpty(r.Description, r.ModusOperandi),
		TriggerPhrases:    phrases,
		RedFlags:          cleanList(r.RedFlags),
		RecommendedAction: firstNonEmpty(r.RecommendedAction, r.RecommendedUserAction),
		Example:           firstNonEmpty(r.Example, r.ExampleMessage),
		SourceURL:         strings.TrimSpace(r.SourceURL),
	}
	return p, nil
}

// NormalizeAll normalizes every record and fails on the first invalid one
// or on a repeated id.
func NormalizeAll(raws []RawPattern) ([]Pattern, error) {
	out := make([]Pattern, 0, len(raws))
	seen := make(map[string]int, len(raws))
	for i, r := range raws {
		p, err := r.Normalize()
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		if j, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("pattern %d: %w: id %q already used by pattern %d", i, ErrInvalidPattern, p.ID, j)
		}
		seen[p.ID] = i
		out = append(out, p)
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func cleanPhrases(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// slug keeps letters, digits and combining marks of any script. Names with
// none of those fall back to a hash of the name.
func slug(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r) && b.Len() > 0:
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	if out := strings.TrimSuffix(b.String(), "_"); out != "" {
		return out
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.TrimSpace(s)))
	return fmt.Sprintf("pattern_%016x", h.Sum64())
}
