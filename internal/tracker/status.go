// Package tracker keeps the user's per-job application state: the
// status map and the saved-set bookmark list. Jobs with no stored
// record are implicitly Not Applied; that default is never persisted.
package tracker

import (
	"fmt"
	"time"
)

// Status is the application lifecycle label for a job.
type Status string

const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Record pairs a status with the time it was last changed.
type Record struct {
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}
