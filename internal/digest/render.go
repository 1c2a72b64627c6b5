package digest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jobdash/dashboard/internal/catalog"
)

const (
	textTitle   = "Your Daily Job Digest"
	textTrailer = "Update your preferences on the dashboard to tune tomorrow's picks."
)

// Text renders a populated snapshot as the plain-text digest document
// used for clipboard copy and the email draft. It is a pure projection:
// scores come from the snapshot, never recomputed.
func Text(snap Snapshot, c *catalog.Catalog, date string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n\n", textTitle, date)

	rank := 0
	for _, item := range snap.Items {
		job, ok := c.ByID(item.JobID)
		if !ok {
			// Snapshot from an older catalog revision; skip the orphan.
			continue
		}
		rank++
		fmt.Fprintf(&b, "%d. %s at %s\n", rank, job.Title, job.Company)
		fmt.Fprintf(&b, "   %s | %s | Match: %d%%\n", job.Location, job.Experience, item.Score)
		fmt.Fprintf(&b, "   Apply: %s\n\n", job.ApplyURL)
	}

	b.WriteString(textTrailer)
	b.WriteString("\n")
	return b.String()
}

// MailtoLink composes a mail-draft link with percent-encoded subject
// and body for the given snapshot.
func MailtoLink(snap Snapshot, c *catalog.Catalog, date string) string {
	subject := fmt.Sprintf("%s (%s)", textTitle, date)
	body := Text(snap, c, date)
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent percent-encodes for mailto links, where spaces must be
// %20 rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
