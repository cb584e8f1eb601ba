// Package state persists the volume level across runs in a small SQLite
// database under the XDG data directory.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "tremolo"
	dbFileName   = "tremolo.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager wraps the state database. Volume saves are debounced so holding
// a volume key does not hammer the disk; Close flushes any pending save.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *float64
}

// Open opens the state database at its default XDG location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at the given path, creating it and its
// schema as needed.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS player_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			volume REAL NOT NULL
		)
	`)
	return err
}

// Close flushes any pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveVolume(m.db, *pending)
	}

	return m.db.Close()
}

// GetVolume returns the saved volume level, or 1.0 when none was saved.
func (m *Manager) GetVolume() (float64, error) {
	var volume float64
	row := m.db.QueryRow(`SELECT volume FROM player_state WHERE id = 1`)
	err := row.Scan(&volume)
	if err == sql.ErrNoRows {
		return 1.0, nil
	}
	if err != nil {
		return 0, err
	}
	return volume, nil
}

// SaveVolume schedules a debounced write of the volume level.
func (m *Manager) SaveVolume(volume float64) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &volume

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveVolume(m.db, *pending)
		}
	})
}

func saveVolume(db *sql.DB, volume float64) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, volume)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET volume = excluded.volume
	`, volume)
	return err
}
