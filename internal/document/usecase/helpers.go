package usecase

import (
	"strings"

	"finpal-guardian/internal/document"
)

var productTypes = map[string]bool{
	document.ProductHomeLoan:        true,
	document.ProductBikeLoan:        true,
	document.ProductPersonalLoan:    true,
	document.ProductCarLoan:         true,
	document.ProductCreditCard:      true,
	document.ProductHealthInsurance: true,
	document.ProductOther:           true,
}

func normalizeProductType(s string) string {
	p := strings.ToLower(strings.TrimSpace(s))
	p = strings.ReplaceAll(p, " ", "_")
	if productTypes[p] {
		return p
	}
	return document.ProductOther
}

// normalizeClauses defaults missing risk levels to medium.
func normalizeClauses(clauses []document.Clause) []document.Clause {
	out := make([]document.Clause, len(clauses))
	for i, c := range clauses {
		c.RiskLevel = strings.ToLower(strings.TrimSpace(c.RiskLevel))
		if c.RiskLevel == "" {
			c.RiskLevel = document.RiskMedium
		}
		out[i] = c
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
