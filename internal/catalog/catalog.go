package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the read-only collection of job postings the dashboard
// serves. Construct once with Load or New and share freely.
type Catalog struct {
	jobs []Job
	byID map[int]Job
}

// New builds a catalog from an in-memory job list, validating every entry.
func New(jobs []Job) (*Catalog, error) {
	c := &Catalog{
		jobs: make([]Job, 0, len(jobs)),
		byID: make(map[int]Job, len(jobs)),
	}
	for _, j := range jobs {
		if err := validate(j); err != nil {
			return nil, err
		}
		if _, dup := c.byID[j.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %d", j.ID)
		}
		c.jobs = append(c.jobs, j)
		c.byID[j.ID] = j
	}
	return c, nil
}

// Load reads a YAML fixture file and builds the catalog from it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc struct {
		Jobs []Job `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	if len(doc.Jobs) == 0 {
		return nil, fmt.Errorf("catalog %s contains no jobs", path)
	}

	return New(doc.Jobs)
}

func validate(j Job) error {
	if j.ID <= 0 {
		return fmt.Errorf("job %q: id must be positive", j.Title)
	}
	if j.Title == "" || j.Company == "" {
		return fmt.Errorf("job %d: title and company are required", j.ID)
	}
	if _, err := ParseMode(string(j.Mode)); err != nil {
		return fmt.Errorf("job %d: %w", j.ID, err)
	}
	if _, err := ParseExperience(string(j.Experience)); err != nil {
		return fmt.Errorf("job %d: %w", j.ID, err)
	}
	if j.PostedDaysAgo < 0 {
		return fmt.Errorf("job %d: postedDaysAgo must be non-negative", j.ID)
	}
	return nil
}

// Jobs returns the postings in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) Jobs() []Job {
	return c.jobs
}

func (c *Catalog) ByID(id int) (Job, bool) {
	j, ok := c.byID[id]
	return j, ok
}

func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Locations returns the distinct locations present in the catalog, in
// first-seen order.
func (c *Catalog) Locations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, j := range c.jobs {
		if !seen[j.Location] {
			seen[j.Location] = true
			out = append(out, j.Location)
		}
	}
	return out
}
