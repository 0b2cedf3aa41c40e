package telegram

import (
	"fmt"
	"strings"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/threat"
)

// render turns an envelope into a plain-text chat reply.
func render(env guardian.Envelope) string {
	if env.Error != nil {
		return "⚠️ I could not finish this check: " + env.Error.Message
	}

	switch res := env.Data.(type) {
	case threat.Result:
		return renderThreat(res)
	case document.Summary:
		return renderDocument(res)
	case knowledge.Answer:
		return renderAnswer(res)
	}
	return "⚠️ No result."
}

func renderThreat(r threat.Result) string {
	var b strings.Builder
	if r.IsScam {
		fmt.Fprintf(&b, "🚨 Likely scam: %s (risk %.0f%%)\n\n", r.Classification, r.RiskScore*100)
	} else {
		fmt.Fprintf(&b, "✅ %s (risk %.0f%%)\n\n", capitalize(r.Classification), r.RiskScore*100)
	}
	if r.ShortWarning != "" {
		b.WriteString(r.ShortWarning + "\n\n")
	}
	bullets(&b, r.DetailedExplanation)
	if r.RecommendedAction != "" {
		b.WriteString("👉 " + r.RecommendedAction)
	}
	return strings.TrimSpace(b.String())
}

func renderDocument(s document.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📄 %s - risk %s (%.2f)\n\n", strings.ReplaceAll(s.Extracted.ProductType, "_", " "), s.Risk.OverallRiskLevel, s.Risk.RiskScore)
	if s.PlainSummary != "" {
		b.WriteString(s.PlainSummary + "\n\n")
	}
	if len(s.KeyNumbers) > 0 {
		b.WriteString("Key numbers:\n")
		bullets(&b, s.KeyNumbers)
	}
	if len(s.SuggestedQuestionsForBank) > 0 {
		b.WriteString("Ask your bank:\n")
		bullets(&b, s.SuggestedQuestionsForBank)
	}
	return strings.TrimSpace(b.String())
}

func renderAnswer(a knowledge.Answer) string {
	var b strings.Builder
	b.WriteString(a.Answer + "\n\n")
	for i, s := range a.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	if len(a.Steps) > 0 {
		b.WriteString("\n")
	}
	if len(a.SourceIDs) > 0 {
		b.WriteString("Sources: " + strings.Join(a.SourceIDs, ", ") + "\n")
	}
	for _, d := range a.Disclaimers {
		b.WriteString("ℹ️ " + d + "\n")
	}
	return strings.TrimSpace(b.String())
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		b.WriteString("• " + it + "\n")
	}
	if len(items) > 0 {
		b.WriteString("\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
