package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/deskboard/internal/db"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const keyTheme = "theme"

// ErrInvalidTheme is returned when saving anything but ThemeDark or ThemeLight.
var ErrInvalidTheme = errors.New("invalid theme")

// GetTheme returns the saved theme, or ThemeDark when none was saved.
func (m *Manager) GetTheme() (string, error) {
	v, ok, err := getSetting(m.db, keyTheme)
	if err != nil {
		return ThemeDark, err
	}
	if !ok || !validTheme(v) {
		return ThemeDark, nil
	}
	return v, nil
}

// SaveTheme persists the theme flag.
func (m *Manager) SaveTheme(theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	return saveSetting(m.db, keyTheme, theme)
}

func validTheme(s string) bool {
	return s == ThemeDark || s == ThemeLight
}

func getSetting(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dbutil.NullStringValue(value), true, nil
}

func saveSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
