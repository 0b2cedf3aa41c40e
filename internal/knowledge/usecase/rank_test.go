package usecase

import (
	"fmt"
	"testing"

	"finpal-guardian/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRankEntries_OverlapOrder(t *testing.T) {
	e1 := knowledge.Entry{ID: "E1", SummaryBullets: []string{"refund upi"}}
	e2 := knowledge.Entry{ID: "E2", SummaryBullets: []string{"loan"}}

	got := rankEntries("how to report a upi refund scam", []knowledge.Entry{e2, e1}, 3)
	assert.Equal(t, []string{"E1", "E2"}, entryIDs(got))
}

func TestRankEntries_NoOverlapKeepsCorpusOrder(t *testing.T) {
	entries := []knowledge.Entry{
		{ID: "a", SummaryBullets: []string{"xx"}},
		{ID: "b", SummaryBullets: []string{"yy"}},
		{ID: "c", SummaryBullets: []string{"zz"}},
		{ID: "d", SummaryBullets: []string{"ww"}},
	}
	assert.Equal(t, []string{"a", "b", "c"}, entryIDs(rankEntries("qqq", entries, 3)))
	assert.Equal(t, []string{"a", "b"}, entryIDs(rankEntries("qqq", entries[:2], 3)))
}

func TestRankEntries_UsesActionsAndApplicability(t *testing.T) {
	entries := []knowledge.Entry{
		{ID: "title-only", Title: "pension", SummaryBullets: []string{"nothing"}},
		{ID: "when", WhenItApplies: "pension payments stop"},
		{ID: "actions", ActionsIfAffected: []string{"visit the pension office"}},
	}
	got := rankEntries("pension", entries, 3)
	assert.Equal(t, []string{"when", "actions"}, entryIDs(got))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"what", "is", "upi", "pin"}, tokenize("What is UPI? UPI-PIN!"))
	assert.Empty(t, tokenize("  ?! "))
}

func TestRankEntries_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := []string{"upi", "loan", "otp", "refund", "fee", "kyc"}
		n := rapid.IntRange(0, 8).Draw(t, "n")
		entries := make([]knowledge.Entry, n)
		for i := range entries {
			bullets := rapid.SliceOfN(rapid.SampledFrom(words), 0, 4).Draw(t, fmt.Sprintf("bullets%d", i))
			entries[i] = knowledge.Entry{ID: fmt.Sprintf("e%d", i), SummaryBullets: bullets}
		}
		question := rapid.StringMatching(`[a-z ]{0,30}`).Draw(t, "question")

		got := rankEntries(question, entries, topK)

		want := n
		if want > topK {
			want = topK
		}
		if len(got) > want {
			t.Fatalf("got %d entries, want at most %d", len(got), want)
		}
		if n > 0 && len(got) == 0 {
			t.Fatalf("non-empty corpus ranked to nothing")
		}

		tokens := tokenize(question)
		for i := 1; i < len(got); i++ {
			if score(tokens, got[i-1]) < score(tokens, got[i]) {
				t.Fatalf("ranking not descending at %d", i)
			}
		}
	})
}
