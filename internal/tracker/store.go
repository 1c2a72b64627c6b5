package tracker

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/jobdash/dashboard/internal/db"
)

const (
	statusKey = "statuses"
	savedKey  = "saved"
)

// Store owns the status map and saved set. In-memory state is
// authoritative; every mutation persists the whole value best-effort.
type Store struct {
	mu       sync.RWMutex
	statuses map[int]Record
	saved    []int
	savedSet map[int]bool
	kv       db.KV
	now      func() time.Time
}

func NewStore(kv db.KV) *Store {
	s := &Store{
		statuses: make(map[int]Record),
		savedSet: make(map[int]bool),
		kv:       kv,
		now:      time.Now,
	}
	s.loadStatuses()
	s.loadSaved()
	return s
}

func (s *Store) loadStatuses() {
	data, err := s.kv.Get(statusKey)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("Status map load failed, starting empty: %v", err)
		}
		return
	}

	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Status map malformed, starting empty: %v", err)
		return
	}

	// Keys are string-encoded job ids; anything non-numeric is dropped.
	for k, rec := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		if _, err := ParseStatus(string(rec.Status)); err != nil {
			continue
		}
		s.statuses[id] = rec
	}
}

func (s *Store) loadSaved() {
	data, err := s.kv.Get(savedKey)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("Saved set load failed, starting empty: %v", err)
		}
		return
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("Saved set malformed, starting empty: %v", err)
		return
	}
	for _, id := range ids {
		if !s.savedSet[id] {
			s.savedSet[id] = true
			s.saved = append(s.saved, id)
		}
	}
}

// Status returns the tracked status for a job, defaulting to Not Applied
// for jobs with no record.
func (s *Store) Status(jobID int) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.statuses[jobID]; ok {
		return rec
	}
	return Record{Status: StatusNotApplied}
}

// SetStatus records a status change. Setting Not Applied removes the
// record, since that state is implicit.
func (s *Store) SetStatus(jobID int, st Status) Record {
	s.mu.Lock()
	rec := Record{Status: st, UpdatedAt: s.now().UTC()}
	if st == StatusNotApplied {
		delete(s.statuses, jobID)
	} else {
		s.statuses[jobID] = rec
	}
	snapshot := s.statusSnapshotLocked()
	s.mu.Unlock()

	s.persist(statusKey, snapshot)
	return rec
}

// Statuses returns a copy of the status map.
func (s *Store) Statuses() map[int]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]Record, len(s.statuses))
	for id, rec := range s.statuses {
		out[id] = rec
	}
	return out
}

// Save bookmarks a job. The saved set is monotonic: re-saving is a no-op
// and there is no unsave.
func (s *Store) Save(jobID int) bool {
	s.mu.Lock()
	if s.savedSet[jobID] {
		s.mu.Unlock()
		return false
	}
	s.savedSet[jobID] = true
	s.saved = append(s.saved, jobID)
	snapshot := append([]int{}, s.saved...)
	s.mu.Unlock()

	s.persist(savedKey, snapshot)
	return true
}

func (s *Store) IsSaved(jobID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedSet[jobID]
}

// Saved returns bookmarked job ids in the order they were first saved.
func (s *Store) Saved() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int{}, s.saved...)
}

func (s *Store) statusSnapshotLocked() map[string]Record {
	out := make(map[string]Record, len(s.statuses))
	for id, rec := range s.statuses {
		out[strconv.Itoa(id)] = rec
	}
	return out
}

func (s *Store) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Tracker marshal %s failed: %v", key, err)
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		log.Printf("Tracker persist %s failed: %v", key, err)
	}
}
