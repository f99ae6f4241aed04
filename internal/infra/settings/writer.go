// Package settings edits Drupal site settings files.
package settings

import (
	"fmt"
	"os"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Writer appends the database connection to settings.local.php.
type Writer struct{}

// Ensure Writer implements domain.SettingsWriter interface.
var _ domain.SettingsWriter = (*Writer)(nil)

// NewWriter creates a settings writer.
func NewWriter() *Writer {
	return &Writer{}
}

// AppendDatabase appends the $databases snippet for db to path.
// The file must exist. Nothing is written when it already defines $databases.
func (w *Writer) AppendDatabase(path string, db domain.DatabaseConfig) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", domain.ErrSettingsNotFound, path)
		}
		return false, fmt.Errorf("read settings: %w", err)
	}
	if domain.HasDatabases(content) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return false, fmt.Errorf("open settings: %w", err)
	}
	if _, err := f.WriteString("\r\n" + domain.DatabaseSnippet(db)); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write settings: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close settings: %w", err)
	}
	return true, nil
}
