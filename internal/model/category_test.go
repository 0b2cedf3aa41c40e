package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"DOCUMENT_RISK", CategoryDocumentRisk},
		{"knowledge_qa", CategoryKnowledgeQA},
		{" threat-triage ", CategoryThreatTriage},
		{"Threat Triage", CategoryThreatTriage},
		{"LOAN_DOC", CategoryDocumentRisk},
		{"policy_qa", CategoryKnowledgeQA},
		{"scam-check", CategoryThreatTriage},
	}
	for _, tc := range tests {
		got, err := ParseCategory(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "GENERAL", "DOCUMENT"} {
		_, err := ParseCategory(bad)
		assert.Error(t, err, bad)
	}
}

func TestCategories_AllValid(t *testing.T) {
	assert.Len(t, Categories(), 3)
	for _, c := range Categories() {
		assert.True(t, c.IsValid())
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.False(t, Category("OTHER").IsValid())
}

func TestParseCategory_CaseInsensitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.SampledFrom(Categories()).Draw(t, "category")
		mask := rapid.SliceOfN(rapid.Bool(), len(c), len(c)).Draw(t, "mask")

		b := []byte(c)
		for i, lower := range mask {
			if lower && b[i] >= 'A' && b[i] <= 'Z' {
				b[i] += 'a' - 'A'
			}
		}
		got, err := ParseCategory(string(b))
		if err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = %q, %v", b, got, err)
		}
	})
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "en", Language("  "))
	assert.Equal(t, "hi", Language("hi"))
}
