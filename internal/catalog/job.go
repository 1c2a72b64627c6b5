package catalog

import "fmt"

// Mode is a job's work arrangement.
type Mode string

const (
	ModeRemote Mode = "Remote"
	ModeHybrid Mode = "Hybrid"
	ModeOnsite Mode = "Onsite"
)

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	switch m {
	case ModeRemote, ModeHybrid, ModeOnsite:
		return m, nil
	}
	return "", fmt.Errorf("unknown work mode %q", s)
}

// Experience is the experience band a posting asks for.
type Experience string

const (
	ExperienceFresher     Experience = "Fresher"
	ExperienceZeroToOne   Experience = "0-1"
	ExperienceOneToThree  Experience = "1-3"
	ExperienceThreeToFive Experience = "3-5"
)

func ParseExperience(s string) (Experience, error) {
	e := Experience(s)
	switch e {
	case ExperienceFresher, ExperienceZeroToOne, ExperienceOneToThree, ExperienceThreeToFive:
		return e, nil
	}
	return "", fmt.Errorf("unknown experience band %q", s)
}

// PremiumSource is the origin platform that earns the scorer's source bonus.
const PremiumSource = "LinkedIn"

// Job is a single catalog posting. Jobs are loaded once at startup and
// never mutated.
type Job struct {
	ID            int        `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Company       string     `json:"company" yaml:"company"`
	Location      string     `json:"location" yaml:"location"`
	Mode          Mode       `json:"mode" yaml:"mode"`
	Experience    Experience `json:"experience" yaml:"experience"`
	Salary        string     `json:"salary" yaml:"salary"`
	Source        string     `json:"source" yaml:"source"`
	Skills        []string   `json:"skills" yaml:"skills"`
	Description   string     `json:"description" yaml:"description"`
	PostedDaysAgo int        `json:"postedDaysAgo" yaml:"postedDaysAgo"`
	ApplyURL      string     `json:"applyUrl" yaml:"applyUrl"`
}
