package prefs

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/jobdash/dashboard/internal/db"
)

const storeKey = "preferences"

// Store owns the current Preferences value. The in-memory copy is
// authoritative for the session; persistence is best-effort and a
// malformed or absent stored record falls back to defaults.
type Store struct {
	mu      sync.RWMutex
	current Preferences
	kv      db.KV
}

func NewStore(kv db.KV) *Store {
	s := &Store{current: Default(), kv: kv}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.kv.Get(storeKey)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("Preferences load failed, using defaults: %v", err)
		}
		return
	}

	// Unmarshal over a default value so partial records keep default
	// fields and malformed data leaves the defaults untouched.
	merged := Default()
	if err := json.Unmarshal(data, &merged); err != nil {
		log.Printf("Preferences record malformed, using defaults: %v", err)
		return
	}
	s.current = merged
}

func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Put replaces the stored preferences wholesale and persists them.
// A failed write is logged and otherwise ignored.
func (s *Store) Put(p Preferences) {
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Preferences marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(storeKey, data); err != nil {
		log.Printf("Preferences persist failed: %v", err)
	}
}
