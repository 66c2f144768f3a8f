package querysource

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"release-notes-bot/internal/domain/ports"
)

// embeddedQueries holds the default query templates, one directory per store driver.
//
//go:embed queries/*/*.sql
var embeddedQueries embed.FS

// Loader loads query templates for a store driver. Files in the override
// directory take precedence over the embedded defaults.
type Loader struct {
	driver string
	dir    string
}

var _ ports.QuerySource = (*Loader)(nil)

// NewLoader creates a loader for driver. dir may be empty.
func NewLoader(driver, dir string) *Loader {
	return &Loader{
		driver: strings.ToLower(strings.TrimSpace(driver)),
		dir:    strings.TrimSpace(dir),
	}
}

// Load returns the template text for name, without the .sql suffix.
func (l *Loader) Load(name string) (string, error) {
	filename := name + ".sql"

	if l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, filename))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read query %s: %w", name, err)
		}
	}

	data, err := embeddedQueries.ReadFile("queries/" + l.driver + "/" + filename)
	if err != nil {
		return "", fmt.Errorf("query not found: %s (driver %q)", name, l.driver)
	}
	return string(data), nil
}

// Drivers lists the store drivers that ship embedded templates.
func Drivers() []string {
	entries, err := embeddedQueries.ReadDir("queries")
	if err != nil {
		return nil
	}
	drivers := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			drivers = append(drivers, entry.Name())
		}
	}
	return drivers
}
