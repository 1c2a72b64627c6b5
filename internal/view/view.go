// Package view combines the catalog, computed match scores and tracked
// statuses into the filtered, ordered list the dashboard renders.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/match"
	"github.com/jobdash/dashboard/internal/prefs"
	"github.com/jobdash/dashboard/internal/tracker"
)

// Sort selects the ordering of the result list.
type Sort string

const (
	SortLatest     Sort = "latest"
	SortMatchScore Sort = "matchScore"
	SortSalary     Sort = "salary"
)

func ParseSort(s string) (Sort, error) {
	if s == "" {
		return SortLatest, nil
	}
	v := Sort(s)
	switch v {
	case SortLatest, SortMatchScore, SortSalary:
		return v, nil
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// Filters are conjunctive: a job must pass every set predicate. The zero
// value applies no filtering.
type Filters struct {
	Keyword            string
	Location           string
	Mode               string
	Experience         string
	Source             string
	Status             tracker.Status
	OnlyAboveThreshold bool
}

// Entry is one row of the rendered list.
type Entry struct {
	Job   catalog.Job `json:"job"`
	Score int         `json:"score"`
}

// Results scores the whole catalog and applies filters and sort. The
// returned slice is never nil: an empty result is a valid state,
// distinct from "catalog not loaded".
func Results(c *catalog.Catalog, p prefs.Preferences, statuses map[int]tracker.Record, f Filters, order Sort) []Entry {
	entries := make([]Entry, 0, c.Len())

	// The threshold filter only engages once the user has customized
	// preferences; the threshold's own value is irrelevant to gating.
	thresholdActive := f.OnlyAboveThreshold && p.Customized()

	for _, job := range c.Jobs() {
		score := match.Score(job, p)
		if !passes(job, score, statuses, f, p, thresholdActive) {
			continue
		}
		entries = append(entries, Entry{Job: job, Score: score})
	}

	switch order {
	case SortMatchScore:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
	case SortSalary:
		sort.SliceStable(entries, func(i, j int) bool {
			return match.SalaryValue(entries[i].Job.Salary) > match.SalaryValue(entries[j].Job.Salary)
		})
	default: // SortLatest: freshest first
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Job.PostedDaysAgo < entries[j].Job.PostedDaysAgo
		})
	}

	return entries
}

func passes(job catalog.Job, score int, statuses map[int]tracker.Record, f Filters, p prefs.Preferences, thresholdActive bool) bool {
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(job.Title), kw) &&
			!strings.Contains(strings.ToLower(job.Company), kw) {
			return false
		}
	}
	if f.Location != "" && job.Location != f.Location {
		return false
	}
	if f.Mode != "" && string(job.Mode) != f.Mode {
		return false
	}
	if f.Experience != "" && string(job.Experience) != f.Experience {
		return false
	}
	if f.Source != "" && job.Source != f.Source {
		return false
	}
	if f.Status != "" {
		current := tracker.StatusNotApplied
		if rec, ok := statuses[job.ID]; ok {
			current = rec.Status
		}
		if current != f.Status {
			return false
		}
	}
	if thresholdActive && score < p.MinMatchScore {
		return false
	}
	return true
}
