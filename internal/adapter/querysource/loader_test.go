package querysource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Embedded(t *testing.T) {
	for _, driver := range []string{"bigquery", "sqlite"} {
		l := NewLoader(driver, "")
		for _, name := range []string{"insert_new_releases", "get_new_releases"} {
			text, err := l.Load(name)
			require.NoError(t, err, "%s/%s", driver, name)
			assert.Contains(t, text, "{{ .current_timestamp }}")
		}
	}
}

func TestLoader_OverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "get_new_releases.sql"), []byte("SELECT 1"), 0o600))

	l := NewLoader("sqlite", dir)
	text, err := l.Load("get_new_releases")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", text)

	// Files missing from the override directory fall back to the embedded ones.
	text, err = l.Load("insert_new_releases")
	require.NoError(t, err)
	assert.Contains(t, text, "ON CONFLICT")
}

func TestLoader_NotFound(t *testing.T) {
	_, err := NewLoader("postgres", "").Load("get_new_releases")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query not found")
}

func TestDrivers(t *testing.T) {
	assert.ElementsMatch(t, []string{"bigquery", "sqlite"}, Drivers())
}
