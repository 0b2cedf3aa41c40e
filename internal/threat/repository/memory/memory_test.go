package memory

import (
	"context"
	"testing"

	"finpal-guardian/internal/threat"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	patterns := Defaults()
	require.Len(t, patterns, len(DefaultPatterns()))

	ids := map[string]bool{}
	for _, p := range patterns {
		assert.NotEmpty(t, p.TriggerPhrases, p.Name)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
	assert.True(t, ids["electricity_bill_disconnection"])
}

func TestStore_SaveReplacesByID(t *testing.T) {
	ctx := context.Background()
	s := New([]threat.Pattern{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})

	require.NoError(t, s.Save(ctx, []threat.Pattern{{ID: "a", Name: "A2"}, {ID: "c", Name: "C"}}))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A2", got[0].Name)
	assert.Equal(t, "c", got[2].ID)
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "patterns.yaml", []byte(`
patterns:
  - name: Courier customs fee
    description: Parcel held at customs until you pay a fee
  - scam_name: Fake loan app
    modus_operandi: Instant loan app that harvests contacts
    key_phrases: [instant loan, no cibil]
    recommended_user_action: Uninstall the app
`), 0o644))

	got, err := LoadFile(fsys, "patterns.yaml")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"courier customs fee"}, got[0].TriggerPhrases)
	assert.Equal(t, []string{"instant loan", "no cibil"}, got[1].TriggerPhrases)
	assert.Equal(t, "Uninstall the app", got[1].RecommendedAction)
}

func TestLoadFile_Invalid(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "bad.yaml", []byte("patterns:\n  - description: nameless\n"), 0o644))

	_, err := LoadFile(fsys, "bad.yaml")
	assert.ErrorIs(t, err, threat.ErrInvalidPattern)
}

func TestLoadFile_NonLatinNamesAllStored(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "patterns.yaml", []byte(`
patterns:
  - name: केवाईसी धोखा
    description: Fake KYC call
  - name: लॉटरी धोखा
    description: Fake lottery win
`), 0o644))

	patterns, err := LoadFile(fsys, "patterns.yaml")
	require.NoError(t, err)

	stored, err := New(patterns).List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, []string{"लॉटरी धोखा"}, stored[1].TriggerPhrases)
}

func TestLoadFile_DuplicateIDs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "patterns.yaml", []byte(`
patterns:
  - {id: kyc, name: KYC update}
  - {id: kyc, name: KYC refresh}
`), 0o644))

	_, err := LoadFile(fsys, "patterns.yaml")
	assert.ErrorIs(t, err, threat.ErrInvalidPattern)
}
