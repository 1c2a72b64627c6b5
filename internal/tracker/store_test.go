package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jobdash/dashboard/internal/db"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Not Applied", "Applied", "Rejected", "Selected"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := ParseStatus("Interviewing"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStore_DefaultStatusIsNotApplied(t *testing.T) {
	s := NewStore(db.NewMemKV())

	rec := s.Status(42)
	if rec.Status != StatusNotApplied {
		t.Errorf("expected Not Applied, got %s", rec.Status)
	}
	if !rec.UpdatedAt.IsZero() {
		t.Error("implicit default must carry no timestamp")
	}
}

func TestStore_SetStatusPersistsAndStamps(t *testing.T) {
	kv := db.NewMemKV()
	s := NewStore(kv)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	rec := s.SetStatus(3, StatusApplied)
	if rec.Status != StatusApplied || rec.UpdatedAt.IsZero() {
		t.Errorf("unexpected record: %+v", rec)
	}

	reloaded := NewStore(kv)
	got := reloaded.Status(3)
	if got.Status != StatusApplied {
		t.Errorf("expected Applied after reload, got %s", got.Status)
	}
	if !got.UpdatedAt.Equal(rec.UpdatedAt) {
		t.Errorf("timestamp mismatch: %v vs %v", got.UpdatedAt, rec.UpdatedAt)
	}
}

func TestStore_NotAppliedNeverPersisted(t *testing.T) {
	kv := db.NewMemKV()
	s := NewStore(kv)

	s.SetStatus(1, StatusApplied)
	s.SetStatus(1, StatusNotApplied)

	data, err := kv.Get("statuses")
	if err != nil {
		t.Fatalf("get statuses: %v", err)
	}
	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("Not Applied must be removed from the persisted map, got %v", raw)
	}
}

func TestStore_LoadDropsMalformedKeys(t *testing.T) {
	kv := db.NewMemKV()
	kv.Set("statuses", []byte(`{
		"7":    {"status":"Applied","updatedAt":"2025-06-01T09:00:00Z"},
		"oops": {"status":"Applied","updatedAt":"2025-06-01T09:00:00Z"},
		"8":    {"status":"Ghosted","updatedAt":"2025-06-01T09:00:00Z"}
	}`))

	s := NewStore(kv)
	if s.Status(7).Status != StatusApplied {
		t.Error("numeric key with valid status must survive load")
	}
	if len(s.Statuses()) != 1 {
		t.Errorf("malformed entries must be dropped, got %v", s.Statuses())
	}
}

func TestStore_MalformedStatusBlobStartsEmpty(t *testing.T) {
	kv := db.NewMemKV()
	kv.Set("statuses", []byte(`not json at all`))

	s := NewStore(kv)
	if len(s.Statuses()) != 0 {
		t.Errorf("expected empty map, got %v", s.Statuses())
	}
}

func TestStore_SavedSetMonotonicOrdered(t *testing.T) {
	kv := db.NewMemKV()
	s := NewStore(kv)

	if !s.Save(5) {
		t.Error("first save must report true")
	}
	s.Save(2)
	if s.Save(5) {
		t.Error("re-save must be a no-op")
	}

	got := s.Saved()
	if len(got) != 2 || got[0] != 5 || got[1] != 2 {
		t.Errorf("expected insertion order [5 2], got %v", got)
	}
	if !s.IsSaved(2) || s.IsSaved(9) {
		t.Error("IsSaved mismatch")
	}

	reloaded := NewStore(kv)
	got = reloaded.Saved()
	if len(got) != 2 || got[0] != 5 || got[1] != 2 {
		t.Errorf("expected persisted order [5 2], got %v", got)
	}
}
