package memory

import (
	"context"
	"testing"

	"finpal-guardian/internal/knowledge"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorpus(t *testing.T) {
	docs, err := New(DefaultDocuments()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "rbi_upi_fraud_reporting", docs[0].ID)
	assert.Equal(t, "upi_never_share_otp_pin", docs[1].ID)
	assert.Equal(t, "digital_lending_charges_transparency", docs[2].ID)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New(DefaultDocuments())
	docs, _ := c.List(context.Background())
	docs[0].ID = "mutated"

	again, _ := c.List(context.Background())
	assert.Equal(t, "rbi_upi_fraud_reporting", again[0].ID)
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "corpus.yaml", []byte(`
documents:
  - id: sebi_investor_complaints
    source: SEBI
    title: Filing complaints on SCORES
    raw_text: Investors can lodge complaints against listed companies on SCORES.
`), 0o644))

	docs, err := LoadFile(fsys, "corpus.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "SEBI", docs[0].Source)
}

func TestLoadFile_Invalid(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "bad.yaml", []byte("documents: [{id: a, title: t}]"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "dup.yaml", []byte(`
documents:
  - {id: a, title: t, raw_text: x}
  - {id: a, title: t, raw_text: y}
`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "broken.yaml", []byte("documents: ["), 0o644))

	for _, p := range []string{"bad.yaml", "dup.yaml", "broken.yaml"} {
		_, err := LoadFile(fsys, p)
		assert.ErrorIs(t, err, knowledge.ErrInvalidCorpus, p)
	}

	_, err := LoadFile(fsys, "missing.yaml")
	assert.Error(t, err)
}
