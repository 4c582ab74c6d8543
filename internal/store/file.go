package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fileEntry struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// File is a Store persisted as a JSON file, so a session survives process
// restarts the way browser cookies survive page loads. Expiries are
// enforced on read.
type File struct {
	mu      sync.Mutex
	path    string
	entries map[string]fileEntry
}

// OpenFile loads (or creates) the store at path. A corrupt file is
// discarded rather than surfaced: worst case the user logs in again.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	f := &File{path: path, entries: make(map[string]fileEntry)}
	raw, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(raw, &f.entries); jsonErr != nil {
			log.Printf("discarding corrupt session file %s: %v", path, jsonErr)
			f.entries = make(map[string]fileEntry)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok {
		return "", false
	}
	if !e.Expires.IsZero() && time.Now().After(e.Expires) {
		delete(f.entries, key)
		f.persist()
		return "", false
	}
	return e.Value, true
}

func (f *File) Set(key, value string, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := fileEntry{Value: value}
	if ttl > 0 {
		e.Expires = time.Now().Add(ttl)
	}
	f.entries[key] = e
	f.persist()
}

func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	f.persist()
}

// persist writes the whole map; callers hold the lock. Tokens are secrets,
// hence the tight file mode.
func (f *File) persist() {
	raw, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		log.Printf("persist session file %s: %v", f.path, err)
	}
}
