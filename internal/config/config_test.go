package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"release-notes-bot/internal/adapter/querysource"
	"release-notes-bot/internal/domain/model"
)

func writeStatic(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GCP_PROJECT", "my-project")
	t.Setenv("RELEASEBOT_CONFIG", writeStatic(t, "webhook_url: https://chat.example.com/hook\ndataset: releases\nlookback_days: 3\n"))
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SCHEDULE_CRON", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("RUN_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.ProjectID)
	assert.Equal(t, DriverBigQuery, cfg.StoreDriver)
	assert.Equal(t, "0 8 * * *", cfg.ScheduleCron)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.RunTimeout)
	assert.Equal(t, "https://chat.example.com/hook", cfg.Static["webhook_url"])
	assert.Equal(t, "releases", cfg.Static["dataset"])
	assert.Equal(t, 3, cfg.Static["lookback_days"])
}

func TestLoad_SQLiteWithoutProject(t *testing.T) {
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/notes.db")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("RELEASEBOT_CONFIG", writeStatic(t, "webhook_url: https://chat.example.com/hook\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/notes.db", cfg.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_BigQueryRequiresProject(t *testing.T) {
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("STORE_DRIVER", "bigquery")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Contains(t, err.Error(), "GCP_PROJECT")
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Contains(t, err.Error(), `unknown STORE_DRIVER "postgres"`)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestLoad_AcceptsEveryTemplatedDriver(t *testing.T) {
	for _, driver := range querysource.Drivers() {
		t.Run(driver, func(t *testing.T) {
			t.Setenv("GCP_PROJECT", "my-project")
			t.Setenv("STORE_DRIVER", driver)
			t.Setenv("RELEASEBOT_CONFIG", writeStatic(t, "webhook_url: https://chat.example.com/hook\n"))

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, driver, cfg.StoreDriver)
		})
	}
	assert.Contains(t, querysource.Drivers(), DriverBigQuery)
	assert.Contains(t, querysource.Drivers(), DriverSQLite)
}

func TestLoadStatic_RequiresWebhookURL(t *testing.T) {
	_, err := LoadStatic(writeStatic(t, "dataset: releases\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Contains(t, err.Error(), "webhook_url is required")
}

func TestLoadStatic_MissingFile(t *testing.T) {
	_, err := LoadStatic(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestLoadStatic_InvalidYAML(t *testing.T) {
	_, err := LoadStatic(writeStatic(t, "webhook_url: [unterminated\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}
