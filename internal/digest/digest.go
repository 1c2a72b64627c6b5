// Package digest computes the once-per-day snapshot of top-scoring
// jobs. Snapshots are keyed by local calendar date and, once written,
// immutable for the remainder of that date: regenerating returns the
// stored snapshot even if preferences changed meanwhile.
package digest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/db"
	"github.com/jobdash/dashboard/internal/match"
	"github.com/jobdash/dashboard/internal/prefs"
)

// ErrNoPreferences means generation was requested before the user set
// any matching criteria.
var ErrNoPreferences = errors.New("digest: preferences are empty")

// DefaultSize is the maximum number of jobs in a snapshot.
const DefaultSize = 10

// State describes the snapshot lifecycle for a given date.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateEmpty         State = "empty"
	StatePopulated     State = "populated"
)

// Item is one (job, score) pair of a snapshot.
type Item struct {
	JobID int `json:"jobId"`
	Score int `json:"score"`
}

// Snapshot is the persisted digest for one calendar date.
type Snapshot struct {
	Items []Item `json:"items"`
}

func (s Snapshot) State() State {
	if len(s.Items) == 0 {
		return StateEmpty
	}
	return StatePopulated
}

// Generator owns digest computation and persistence.
type Generator struct {
	kv      db.KV
	catalog *catalog.Catalog
	prefs   *prefs.Store
	size    int
	now     func() time.Time
}

func NewGenerator(kv db.KV, c *catalog.Catalog, p *prefs.Store, size int) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Generator{kv: kv, catalog: c, prefs: p, size: size, now: time.Now}
}

// Today returns the local calendar date key.
func (g *Generator) Today() string {
	return g.now().Format("2006-01-02")
}

func storageKey(date string) string {
	return "digest/" + date
}

// Get loads the snapshot for a date. An absent or unreadable record
// reports StateUninitialized.
func (g *Generator) Get(date string) (Snapshot, State) {
	data, err := g.kv.Get(storageKey(date))
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("Digest load %s failed: %v", date, err)
		}
		return Snapshot{}, StateUninitialized
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Digest record %s malformed, treating as absent: %v", date, err)
		return Snapshot{}, StateUninitialized
	}
	return snap, snap.State()
}

// Generate produces the snapshot for a date, or re-opens the existing
// one unchanged. Requires non-empty preferences.
func (g *Generator) Generate(date string) (Snapshot, State, error) {
	if g.prefs.Get().Empty() {
		return Snapshot{}, StateUninitialized, ErrNoPreferences
	}

	if snap, state := g.Get(date); state != StateUninitialized {
		return snap, state, nil
	}

	snap := g.compute()
	data, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, StateUninitialized, fmt.Errorf("digest marshal: %w", err)
	}
	if err := g.kv.Set(storageKey(date), data); err != nil {
		// In-memory result is still served; only durability is lost.
		log.Printf("Digest persist %s failed: %v", date, err)
	}

	return snap, snap.State(), nil
}

func (g *Generator) compute() Snapshot {
	p := g.prefs.Get()

	type scored struct {
		job   catalog.Job
		score int
	}
	var qualifying []scored
	for _, job := range g.catalog.Jobs() {
		if s := match.Score(job, p); s > 0 {
			qualifying = append(qualifying, scored{job: job, score: s})
		}
	}

	// Highest score first; ties go to the fresher posting.
	sort.SliceStable(qualifying, func(i, j int) bool {
		if qualifying[i].score != qualifying[j].score {
			return qualifying[i].score > qualifying[j].score
		}
		return qualifying[i].job.PostedDaysAgo < qualifying[j].job.PostedDaysAgo
	})

	if len(qualifying) > g.size {
		qualifying = qualifying[:g.size]
	}

	snap := Snapshot{Items: make([]Item, 0, len(qualifying))}
	for _, q := range qualifying {
		snap.Items = append(snap.Items, Item{JobID: q.job.ID, Score: q.score})
	}
	return snap
}
