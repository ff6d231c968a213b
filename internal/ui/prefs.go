package ui

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/claude/liftlog/internal/i18n"
)

// Prefs is the local key-value store for client preferences. Today it holds
// a single key: the selected language code.
type Prefs struct {
	db *sql.DB
}

const langKey = "lang"

// OpenPrefs opens (or creates) the SQLite preferences database at
// dir/prefs.db.
func OpenPrefs(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating prefs dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "prefs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating prefs table: %w", err)
	}

	return &Prefs{db: db}, nil
}

// Language reads the stored language code, defaulting when absent.
func (p *Prefs) Language() (string, error) {
	var lang string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, langKey).Scan(&lang)
	if errors.Is(err, sql.ErrNoRows) {
		return i18n.DefaultLang, nil
	}
	if err != nil {
		return i18n.DefaultLang, err
	}
	return lang, nil
}

// SetLanguage persists the language code, written on every switch.
func (p *Prefs) SetLanguage(lang string) error {
	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`,
		langKey, lang,
	)
	return err
}

// Close closes the preferences database.
func (p *Prefs) Close() error {
	return p.db.Close()
}
