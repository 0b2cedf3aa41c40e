package model

import (
	"fmt"
	"strings"
)

// Category is the intent a request is routed by.
type Category string

const (
	CategoryDocumentRisk Category = "DOCUMENT_RISK"
	CategoryKnowledgeQA  Category = "KNOWLEDGE_QA"
	CategoryThreatTriage Category = "THREAT_TRIAGE"
)

// DefaultLanguage is used when a request carries no language tag.
const DefaultLanguage = "en"

// Wire aliases still accepted from older clients.
var categoryAliases = map[string]Category{
	"LOAN_DOC":   CategoryDocumentRisk,
	"POLICY_QA":  CategoryKnowledgeQA,
	"SCAM_CHECK": CategoryThreatTriage,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{CategoryDocumentRisk, CategoryKnowledgeQA, CategoryThreatTriage}
}

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDocumentRisk, CategoryKnowledgeQA, CategoryThreatTriage:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory normalizes case and separators ("threat-triage", "Threat Triage")
// and resolves legacy aliases. Unknown values return an error.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(norm)

	if c := Category(norm); c.IsValid() {
		return c, nil
	}
	if c, ok := categoryAliases[norm]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Language returns lang, or DefaultLanguage when lang is blank.
func Language(lang string) string {
	if l := strings.TrimSpace(lang); l != "" {
		return l
	}
	return DefaultLanguage
}
