package usecase

import (
	"sort"
	"strings"
	"unicode"

	"finpal-guardian/internal/knowledge"
)

// tokenize lower-cases the question and returns its distinct words.
func tokenize(question string) []string {
	fields := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func entryText(e knowledge.Entry) string {
	return strings.ToLower(strings.Join(e.SummaryBullets, " ") + " " + e.WhenItApplies + " " + strings.Join(e.ActionsIfAffected, " "))
}

// score counts question tokens that occur in the entry's bullets, applicability and actions.
func score(tokens []string, e knowledge.Entry) int {
	text := entryText(e)
	n := 0
	for _, t := range tokens {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// rankEntries keeps the k best entries with a positive score, ties in corpus order.
// When nothing scores it falls back to the first k entries.
func rankEntries(question string, entries []knowledge.Entry, k int) []knowledge.Entry {
	tokens := tokenize(question)

	type scored struct {
		entry knowledge.Entry
		score int
	}
	ranked := make([]scored, 0, len(entries))
	for _, e := range entries {
		if s := score(tokens, e); s > 0 {
			ranked = append(ranked, scored{entry: e, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) == 0 {
		if len(entries) < k {
			k = len(entries)
		}
		out := make([]knowledge.Entry, k)
		copy(out, entries[:k])
		return out
	}

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	out := make([]knowledge.Entry, len(ranked))
	for i, r := range ranked {
		out[i] = r.entry
	}
	return out
}

func entryIDs(entries []knowledge.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
