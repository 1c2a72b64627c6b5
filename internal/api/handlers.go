package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/config"
	"github.com/jobdash/dashboard/internal/digest"
	"github.com/jobdash/dashboard/internal/match"
	"github.com/jobdash/dashboard/internal/notify"
	"github.com/jobdash/dashboard/internal/prefs"
	"github.com/jobdash/dashboard/internal/tracker"
	"github.com/jobdash/dashboard/internal/view"
)

var startTime = time.Now()

type Handlers struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	prefs   *prefs.Store
	tracker *tracker.Store
	digest  *digest.Generator
	notices *notify.Center
}

func NewHandlers(cfg *config.Config, c *catalog.Catalog, p *prefs.Store, t *tracker.Store, d *digest.Generator, n *notify.Center) *Handlers {
	return &Handlers{cfg: cfg, catalog: c, prefs: p, tracker: t, digest: d, notices: n}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	statuses := h.tracker.Statuses()
	counts := map[tracker.Status]int{
		tracker.StatusNotApplied: h.catalog.Len(),
	}
	for _, rec := range statuses {
		counts[rec.Status]++
		counts[tracker.StatusNotApplied]--
	}

	_, digestState := h.digest.Get(h.digest.Today())

	writeJSON(w, http.StatusOK, map[string]any{
		"uptime_seconds": int(time.Since(startTime).Seconds()),
		"catalog_jobs":   h.catalog.Len(),
		"saved_jobs":     len(h.tracker.Saved()),
		"statuses": map[string]int{
			"not_applied": counts[tracker.StatusNotApplied],
			"applied":     counts[tracker.StatusApplied],
			"rejected":    counts[tracker.StatusRejected],
			"selected":    counts[tracker.StatusSelected],
		},
		"digest_today": string(digestState),
	})
}

// JobEntry is one row of the jobs response: the scored posting plus the
// user's tracked state.
type JobEntry struct {
	Job    catalog.Job    `json:"job"`
	Score  int            `json:"score"`
	Status tracker.Status `json:"status"`
	Saved  bool           `json:"saved"`
}

func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	order, err := view.ParseSort(q.Get("sort"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	filters := view.Filters{
		Keyword:    q.Get("keyword"),
		Location:   q.Get("location"),
		Mode:       q.Get("mode"),
		Experience: q.Get("experience"),
		Source:     q.Get("source"),
	}
	if s := q.Get("status"); s != "" {
		st, err := tracker.ParseStatus(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		filters.Status = st
	}
	if q.Get("aboveThreshold") == "true" {
		filters.OnlyAboveThreshold = true
	}

	p := h.prefs.Get()
	results := view.Results(h.catalog, p, h.tracker.Statuses(), filters, order)

	entries := make([]JobEntry, 0, len(results))
	for _, e := range results {
		entries = append(entries, JobEntry{
			Job:    e.Job,
			Score:  e.Score,
			Status: h.tracker.Status(e.Job.ID).Status,
			Saved:  h.tracker.IsSaved(e.Job.ID),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  entries,
		"total": len(entries),
		"sort":  order,
	})
}

func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prefs.Get())
}

func (h *Handlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	// Decode over defaults so omitted fields keep their default values.
	p := prefs.Default()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if p.MinMatchScore < 0 || p.MinMatchScore > 100 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minMatchScore must be between 0 and 100"})
		return
	}
	if p.Experience != "" {
		if _, err := catalog.ParseExperience(p.Experience); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}
	for _, m := range p.Modes {
		if _, err := catalog.ParseMode(m); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	h.prefs.Put(p)
	h.notices.Push(notify.LevelSuccess, "Preferences saved")
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := h.jobFromURL(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	st, err := tracker.ParseStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rec := h.tracker.SetStatus(job.ID, st)
	h.notices.Push(notify.LevelInfo, "Status updated: "+job.Title)
	writeJSON(w, http.StatusOK, map[string]any{
		"jobId":  job.ID,
		"status": rec.Status,
	})
}

func (h *Handlers) SaveJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.jobFromURL(w, r)
	if !ok {
		return
	}

	added := h.tracker.Save(job.ID)
	if added {
		h.notices.Push(notify.LevelSuccess, "Saved: "+job.Title)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"jobId": job.ID,
		"saved": true,
		"added": added,
	})
}

func (h *Handlers) ListSaved(w http.ResponseWriter, r *http.Request) {
	p := h.prefs.Get()

	ids := h.tracker.Saved()
	entries := make([]JobEntry, 0, len(ids))
	for _, id := range ids {
		job, ok := h.catalog.ByID(id)
		if !ok {
			continue
		}
		entries = append(entries, JobEntry{
			Job:    job,
			Score:  match.Score(job, p),
			Status: h.tracker.Status(id).Status,
			Saved:  true,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  entries,
		"total": len(entries),
	})
}

func (h *Handlers) GenerateDigest(w http.ResponseWriter, r *http.Request) {
	date := h.digest.Today()
	snap, state, err := h.digest.Generate(date)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "set preferences before generating a digest"})
		return
	}

	h.notices.Push(notify.LevelSuccess, "Daily digest ready")
	writeJSON(w, http.StatusOK, h.digestPayload(date, snap, state))
}

func (h *Handlers) GetDigest(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.digest.Today()
	}

	snap, state := h.digest.Get(date)
	if state == digest.StateUninitialized {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"date":  date,
			"state": string(state),
		})
		return
	}
	writeJSON(w, http.StatusOK, h.digestPayload(date, snap, state))
}

func (h *Handlers) DigestText(w http.ResponseWriter, r *http.Request) {
	date := h.digest.Today()
	snap, state := h.digest.Get(date)
	if state != digest.StatePopulated {
		writeJSON(w, http.StatusNotFound, map[string]string{"state": string(state)})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(digest.Text(snap, h.catalog, date)))
}

func (h *Handlers) DigestEmailLink(w http.ResponseWriter, r *http.Request) {
	date := h.digest.Today()
	snap, state := h.digest.Get(date)
	if state != digest.StatePopulated {
		writeJSON(w, http.StatusNotFound, map[string]string{"state": string(state)})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"link": digest.MailtoLink(snap, h.catalog, date),
	})
}

func (h *Handlers) CurrentNotice(w http.ResponseWriter, r *http.Request) {
	n := h.notices.Current()
	if n == nil {
		writeJSON(w, http.StatusOK, map[string]any{"notice": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notice": n})
}

func (h *Handlers) digestPayload(date string, snap digest.Snapshot, state digest.State) map[string]any {
	type digestEntry struct {
		Rank  int         `json:"rank"`
		Job   catalog.Job `json:"job"`
		Score int         `json:"score"`
	}

	items := make([]digestEntry, 0, len(snap.Items))
	for _, item := range snap.Items {
		job, ok := h.catalog.ByID(item.JobID)
		if !ok {
			continue
		}
		items = append(items, digestEntry{Rank: len(items) + 1, Job: job, Score: item.Score})
	}

	return map[string]any{
		"date":  date,
		"state": string(state),
		"items": items,
	}
}

func (h *Handlers) jobFromURL(w http.ResponseWriter, r *http.Request) (catalog.Job, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid job id"})
		return catalog.Job{}, false
	}
	job, ok := h.catalog.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "job not found"})
		return catalog.Job{}, false
	}
	return job, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
