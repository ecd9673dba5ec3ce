// Package localstate persists the client's browser-local equivalents: one
// JSON document per key under the state directory. Keys mirror the original
// storage names (textSize, theme, userToken, favorites, recentlyViewed,
// userInteractions, brandTheme). Reads and writes are atomic per key but
// deliberately not transactional across keys; the data is low-stakes.
package localstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persisted key names, kept identical to the web client's storage keys.
const (
	KeyTextSize         = "textSize"
	KeyTheme            = "theme"
	KeyUserToken        = "userToken"
	KeyFavorites        = "favorites"
	KeyRecentlyViewed   = "recentlyViewed"
	KeyUserInteractions = "userInteractions"
	KeyBrandTheme       = "brandTheme"
)

// Store is the per-key JSON persistence layer.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open creates the state directory if needed and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing a key, for watchers.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the value stored under key into out. The second return is
// false when the key has never been written.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return true, nil
}

// Set stores a JSON-serializable value under key.
func (s *Store) Set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.Path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key; absent keys are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// TextSize returns the persisted text size, defaulting to "medium".
func (s *Store) TextSize() string {
	var size string
	if ok, _ := s.Get(KeyTextSize, &size); !ok || size == "" {
		return "medium"
	}
	return size
}

// SetTextSize persists the text size.
func (s *Store) SetTextSize(size string) error {
	return s.Set(KeyTextSize, size)
}

// Theme returns the persisted display theme, defaulting to "light".
func (s *Store) Theme() string {
	var theme string
	if ok, _ := s.Get(KeyTheme, &theme); !ok || theme == "" {
		return "light"
	}
	return theme
}

// SetTheme persists the display theme.
func (s *Store) SetTheme(theme string) error {
	return s.Set(KeyTheme, theme)
}

// UserToken returns the anonymous visitor token, generating and persisting
// one on first use. The shape user_<timestamp>_<random> pseudo-identifies
// this install across requests; no account is implied.
func (s *Store) UserToken() (string, error) {
	var token string
	if ok, _ := s.Get(KeyUserToken, &token); ok && token != "" {
		return token, nil
	}
	token = newUserToken()
	if err := s.Set(KeyUserToken, token); err != nil {
		return "", err
	}
	return token, nil
}

func newUserToken() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), random)
}
