package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Stats holds persistent preferences and counters
type Stats struct {
	DefaultRoot    string `json:"default_root,omitempty"`  // folder scanned on startup
	DefaultLimit   int    `json:"default_limit,omitempty"` // last limit the user set
	ScansCompleted int64  `json:"scans_completed"`
}

// Manager handles loading and saving stats
type Manager struct {
	path         string
	stats        Stats
	mu           sync.RWMutex
	dirty        bool
	saveTimer    *time.Timer
	saveDuration time.Duration
}

// NewManager creates a new stats manager
func NewManager() *Manager {
	return &Manager{
		path:         defaultPath(),
		saveDuration: 2 * time.Second, // Debounce saves
	}
}

// defaultPath returns the default stats file path
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pathdive-stats.json"
	}
	return filepath.Join(home, ".pathdive", "stats.json")
}

// Load loads stats from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			// No stats file yet, start fresh
			m.stats = Stats{}
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &m.stats)
}

// Save saves stats to disk immediately
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveLocked()
}

// saveLocked saves stats without acquiring the lock (caller must hold lock)
func (m *Manager) saveLocked() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m.stats, "", "  ")
	if err != nil {
		return err
	}

	m.dirty = false
	return os.WriteFile(m.path, data, 0644)
}

// DefaultRoot returns the saved default scan root
func (m *Manager) DefaultRoot() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats.DefaultRoot
}

// SetDefaultRoot sets the default scan root and schedules a save
func (m *Manager) SetDefaultRoot(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stats.DefaultRoot == path {
		return
	}

	m.stats.DefaultRoot = path
	m.scheduleSaveLocked()
}

// DefaultLimit returns the saved path length limit, 0 when unset
func (m *Manager) DefaultLimit() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats.DefaultLimit
}

// SetDefaultLimit sets the saved path length limit and schedules a save
func (m *Manager) SetDefaultLimit(limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stats.DefaultLimit == limit {
		return
	}

	m.stats.DefaultLimit = limit
	m.scheduleSaveLocked()
}

// ScansCompleted returns the lifetime completed scan count
func (m *Manager) ScansCompleted() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats.ScansCompleted
}

// AddScan increments the lifetime completed scan count
func (m *Manager) AddScan() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.ScansCompleted++
	m.scheduleSaveLocked()
}

// scheduleSaveLocked marks the stats dirty and schedules a debounced save
// (caller must hold lock)
func (m *Manager) scheduleSaveLocked() {
	m.dirty = true

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.saveDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.dirty {
			_ = m.saveLocked() // Ignore errors for background save
		}
	})
}

// Close ensures any pending saves are written
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}

	if m.dirty {
		return m.saveLocked()
	}
	return nil
}
