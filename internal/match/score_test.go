package match

import (
	"testing"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/prefs"
)

func baseJob() catalog.Job {
	return catalog.Job{
		ID:            1,
		Title:         "Backend Engineer",
		Company:       "Acme",
		Location:      "Pune",
		Mode:          catalog.ModeOnsite,
		Experience:    catalog.ExperienceOneToThree,
		Salary:        "10 LPA",
		Source:        "Naukri",
		Skills:        []string{"Go", "SQL"},
		Description:   "Build APIs in Go.",
		PostedDaysAgo: 7,
	}
}

func TestScore_EmptyPreferences(t *testing.T) {
	p := prefs.Default()

	stale := baseJob()
	if got := Score(stale, p); got != 0 {
		t.Errorf("stale non-premium job with empty prefs: expected 0, got %d", got)
	}

	fresh := baseJob()
	fresh.PostedDaysAgo = 1
	fresh.Source = "LinkedIn"
	if got := Score(fresh, p); got != 10 {
		t.Errorf("recency+source bonuses only: expected 10, got %d", got)
	}
}

func TestScore_IndividualCriteria(t *testing.T) {
	tests := []struct {
		name  string
		prefs prefs.Preferences
		job   func() catalog.Job
		want  int
	}{
		{
			name:  "keyword in title",
			prefs: prefs.Preferences{RoleKeywords: "backend"},
			job:   baseJob,
			want:  25,
		},
		{
			name:  "keyword in description only",
			prefs: prefs.Preferences{RoleKeywords: "apis"},
			job:   baseJob,
			want:  15,
		},
		{
			name:  "keyword in both title and description",
			prefs: prefs.Preferences{RoleKeywords: "engineer, go"},
			job:   baseJob,
			want:  40,
		},
		{
			name:  "location exact match",
			prefs: prefs.Preferences{Locations: []string{"Pune"}},
			job:   baseJob,
			want:  15,
		},
		{
			name:  "location is case-sensitive",
			prefs: prefs.Preferences{Locations: []string{"pune"}},
			job:   baseJob,
			want:  0,
		},
		{
			name:  "mode match",
			prefs: prefs.Preferences{Modes: []string{"Onsite"}},
			job:   baseJob,
			want:  10,
		},
		{
			name:  "experience match",
			prefs: prefs.Preferences{Experience: "1-3"},
			job:   baseJob,
			want:  10,
		},
		{
			name:  "skill overlap is case-insensitive",
			prefs: prefs.Preferences{Skills: "sql, rust"},
			job:   baseJob,
			want:  15,
		},
		{
			name:  "whitespace and empty tokens discarded",
			prefs: prefs.Preferences{RoleKeywords: " , BACKEND ,, "},
			job:   baseJob,
			want:  25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.job(), tt.prefs); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_ClampedTo100(t *testing.T) {
	job := baseJob()
	job.PostedDaysAgo = 0
	job.Source = "LinkedIn"
	p := prefs.Preferences{
		RoleKeywords: "backend, apis",
		Locations:    []string{"Pune"},
		Modes:        []string{"Onsite"},
		Experience:   "1-3",
		Skills:       "go",
	}

	// All eight criteria satisfied: 25+15+15+10+10+15+5+5 = 100.
	if got := Score(job, p); got != 100 {
		t.Errorf("expected clamp at 100, got %d", got)
	}
}

// Adding a satisfied criterion while holding the rest fixed never
// decreases the score.
func TestScore_Monotonic(t *testing.T) {
	job := baseJob()

	steps := []func(*prefs.Preferences){
		func(p *prefs.Preferences) { p.RoleKeywords = "backend" },
		func(p *prefs.Preferences) { p.Locations = []string{"Pune"} },
		func(p *prefs.Preferences) { p.Modes = []string{"Onsite"} },
		func(p *prefs.Preferences) { p.Experience = "1-3" },
		func(p *prefs.Preferences) { p.Skills = "go" },
	}

	p := prefs.Default()
	prev := Score(job, p)
	for i, step := range steps {
		step(&p)
		got := Score(job, p)
		if got < prev {
			t.Errorf("step %d: score decreased from %d to %d", i, prev, got)
		}
		prev = got
	}
}

// The three-job scenario: scores derived mechanically from the scoring
// rules with empty descriptions.
func TestScore_ThreeJobScenario(t *testing.T) {
	p := prefs.Preferences{RoleKeywords: "react", MinMatchScore: 40}

	jobA := catalog.Job{
		ID: 1, Title: "React Developer", Company: "A Co", Location: "Bangalore",
		Mode: catalog.ModeRemote, Experience: catalog.ExperienceZeroToOne,
		Salary: "12 LPA", Source: "LinkedIn", PostedDaysAgo: 1,
	}
	jobB := catalog.Job{
		ID: 2, Title: "Java Backend", Company: "B Co", Location: "Pune",
		Mode: catalog.ModeOnsite, Experience: catalog.ExperienceOneToThree,
		Salary: "8k", Source: "Naukri", PostedDaysAgo: 10,
	}
	jobC := catalog.Job{
		ID: 3, Title: "React Intern", Company: "C Co", Location: "Delhi",
		Mode: catalog.ModeOnsite, Experience: catalog.ExperienceFresher,
		Salary: "15k", Source: "Indeed", PostedDaysAgo: 0,
	}

	// A: title keyword 25 + recency 5 + premium source 5.
	if got := Score(jobA, p); got != 35 {
		t.Errorf("job A: expected 35, got %d", got)
	}
	// B: nothing matches, posted too long ago, non-premium source.
	if got := Score(jobB, p); got != 0 {
		t.Errorf("job B: expected 0, got %d", got)
	}
	// C: title keyword 25 + recency 5.
	if got := Score(jobC, p); got != 30 {
		t.Errorf("job C: expected 30, got %d", got)
	}
}

func TestSalaryValue(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"12k", 12000},
		{"10 LPA", 1000000},
		{"no digits", 0},
		{"", 0},
		{"6 lpa", 600000},
		{"4.5 LPA", 400000}, // first digit run only
		{"15K/month", 15000},
		{"45000", 45000},
	}

	for _, tt := range tests {
		if got := SalaryValue(tt.text); got != tt.want {
			t.Errorf("SalaryValue(%q): expected %d, got %d", tt.text, tt.want, got)
		}
	}
}
