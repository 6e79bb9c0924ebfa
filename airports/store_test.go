package airports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/airports"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.json")
	list := sample(t)

	require.NoError(t, airports.Save(path, list))
	got, err := airports.Load(path)
	require.NoError(t, err)
	require.Equal(t, list, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// apostrophes and ampersands stay readable
	require.Contains(t, string(raw), "O'Hare")
}

func TestSave_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.json")
	require.NoError(t, airports.Save(path, nil))

	got, err := airports.Load(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := airports.Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = airports.Load(bad)
	require.Error(t, err)
}
