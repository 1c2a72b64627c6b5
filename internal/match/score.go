package match

import (
	"strings"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/prefs"
)

// Point weights for each scoring criterion. Each contributes
// independently; the total is clamped to 100.
const (
	pointsTitleKeyword = 25
	pointsDescKeyword  = 15
	pointsLocation     = 15
	pointsMode         = 10
	pointsExperience   = 10
	pointsSkill        = 15
	pointsRecency      = 5
	pointsSource       = 5

	recencyWindowDays = 2
)

// Score rates how well a job fits the stated preferences, 0–100.
// Pure and deterministic: same inputs always produce the same score.
func Score(job catalog.Job, p prefs.Preferences) int {
	score := 0

	keywords := splitTerms(p.RoleKeywords)
	if anySubstring(job.Title, keywords) {
		score += pointsTitleKeyword
	}
	if anySubstring(job.Description, keywords) {
		score += pointsDescKeyword
	}

	if containsString(p.Locations, job.Location) {
		score += pointsLocation
	}

	if containsMode(p.Modes, job.Mode) {
		score += pointsMode
	}

	if p.Experience != "" && p.Experience == string(job.Experience) {
		score += pointsExperience
	}

	if skillOverlap(job.Skills, splitTerms(p.Skills)) {
		score += pointsSkill
	}

	if job.PostedDaysAgo <= recencyWindowDays {
		score += pointsRecency
	}
	if job.Source == catalog.PremiumSource {
		score += pointsSource
	}

	if score > 100 {
		score = 100
	}
	return score
}

// splitTerms normalizes comma-separated free text into lowercase terms,
// dropping empties.
func splitTerms(text string) []string {
	var terms []string
	for _, t := range strings.Split(text, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// anySubstring reports whether any term occurs in text, case-insensitively.
func anySubstring(text string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsMode(set []string, m catalog.Mode) bool {
	for _, s := range set {
		if s == string(m) {
			return true
		}
	}
	return false
}

func skillOverlap(jobSkills []string, prefSkills []string) bool {
	if len(prefSkills) == 0 {
		return false
	}
	want := make(map[string]bool, len(prefSkills))
	for _, s := range prefSkills {
		want[s] = true
	}
	for _, s := range jobSkills {
		if want[strings.ToLower(s)] {
			return true
		}
	}
	return false
}
