package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jinford/founder-scout/internal/core/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCompanyName(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":     "Acme-Corp",
		"approval.ai":   "approvalai",
		"Big_Co - West": "Big_Co---West",
		"Söze & Co":     "Sze--Co",
		"plain":         "plain",
	}
	for input, want := range cases {
		assert.Equal(t, want, SanitizeCompanyName(input), "input=%q", input)
	}
}

func TestSaveSearchArtifact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "info"), filepath.Join(dir, "founders.json"))

	path, err := store.SaveSearchArtifact("Acme Corp", []byte(`{"organic_results":[]}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "info", "info-Acme-Corp.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"organic_results":[]}`, string(data))
}

func TestWriteAndLoadFounders(t *testing.T) {
	dir := t.TempDir()
	foundersPath := filepath.Join(dir, "founders.json")
	store := NewStore(filepath.Join(dir, "info"), foundersPath)

	founders := extraction.FounderMap{
		"Acme Corp": {"Jane Doe", "John Van Smith"},
	}
	require.NoError(t, store.WriteFounders(founders))

	loaded, err := LoadFounders(foundersPath)
	require.NoError(t, err)
	assert.Equal(t, founders, loaded)
}

func TestLoadGroundTruth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "correct_founders.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Acme Corp":["Jane Doe"]}`), 0644))

	truth, err := LoadGroundTruth(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, truth["Acme Corp"])
}

func TestLoadGroundTruth_MissingFile(t *testing.T) {
	_, err := LoadGroundTruth(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadGroundTruth_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "correct_founders.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))

	_, err := LoadGroundTruth(path)
	assert.Error(t, err)
}
