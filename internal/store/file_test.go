package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAdapterMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")

	adapter, err := NewFileAdapter(path, nil)
	require.NoError(t, err)

	index, err := adapter.Load()
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestFileAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "categories.yaml")
	adapter, err := NewFileAdapter(path, nil)
	require.NoError(t, err)

	saved := map[string]string{
		"CHEESECAKE FACTORY": "RESTAURANTS",
		"PAYROLL DEPOSIT":    "INCOME",
	}
	require.NoError(t, adapter.Save(saved))

	reloaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, reloaded)
}

func TestFileAdapterSaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	adapter, err := NewFileAdapter(path, nil)
	require.NoError(t, err)

	require.NoError(t, adapter.Save(map[string]string{"OLD KEY": "OLD"}))
	require.NoError(t, adapter.Save(map[string]string{"NEW KEY": "NEW"}))

	reloaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"NEW KEY": "NEW"}, reloaded)
}

func TestFileAdapterMalformedContentDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[not, a, mapping]"), 0o644))

	adapter, err := NewFileAdapter(path, nil)
	require.NoError(t, err)

	index, err := adapter.Load()
	require.NoError(t, err, "malformed state degrades to empty rather than failing")
	assert.Empty(t, index)
}

func TestFileAdapterEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	adapter, err := NewFileAdapter(path, nil)
	require.NoError(t, err)

	index, err := adapter.Load()
	require.NoError(t, err)
	assert.NotNil(t, index)
	assert.Empty(t, index)
}
