package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionaryLoads(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Greater(t, d.Len(), 40)

	for _, e := range d.Entries() {
		assert.NotEmpty(t, e.Synonyms, "skill %q has no synonyms", e.Canonical)
		got, ok := d.Lookup(e.Canonical)
		require.True(t, ok)
		assert.Equal(t, e.Canonical, got.Canonical)
	}
}

func TestNewDictionaryRejectsKeyCollision(t *testing.T) {
	_, err := NewDictionary([]SkillEntry{
		{Canonical: "Go", Synonyms: []string{"golang"}},
		{Canonical: "Golang Tools", Synonyms: []string{"go-lang"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "golang")
}

func TestNewDictionaryRejectsEmptyKey(t *testing.T) {
	_, err := NewDictionary([]SkillEntry{{Canonical: "###"}})
	require.Error(t, err)

	_, err = NewDictionary([]SkillEntry{{Canonical: ""}})
	require.Error(t, err)
}

func TestLoadDictionaryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- canonical: Haskell
  synonyms: [haskell, ghc]
`), 0o600))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "Haskell", d.NormalizeSkill("GHC"))

	d, err = LoadDictionary("")
	require.NoError(t, err)
	assert.Same(t, Default(), d)

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
