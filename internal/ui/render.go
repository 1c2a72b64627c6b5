// Package ui renders dashboard views in the terminal.
package ui

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/digest"
	"github.com/jobdash/dashboard/internal/match"
	"github.com/jobdash/dashboard/internal/tracker"
	"github.com/jobdash/dashboard/internal/view"
)

// JobTable prints the filtered job list as a table.
func JobTable(entries []view.Entry, statuses *tracker.Store) error {
	if len(entries) == 0 {
		pterm.Info.Println("No jobs match the current filters.")
		return nil
	}

	data := pterm.TableData{
		{"#", "Title", "Company", "Location", "Mode", "Salary", "Posted", "Score", "Status"},
	}
	for _, e := range entries {
		j := e.Job
		data = append(data, []string{
			strconv.Itoa(j.ID),
			j.Title,
			j.Company,
			j.Location,
			string(j.Mode),
			formatSalary(j.Salary),
			formatPosted(j.PostedDaysAgo),
			colorizeScore(e.Score),
			string(statuses.Status(j.ID).Status),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Digest prints a snapshot as a ranked list.
func Digest(snap digest.Snapshot, c *catalog.Catalog, date string) {
	if len(snap.Items) == 0 {
		pterm.Info.Printf("No matching jobs in the digest for %s.\n", date)
		return
	}

	pterm.DefaultHeader.Printf("Daily Job Digest (%s)", date)
	for rank, item := range snap.Items {
		job, ok := c.ByID(item.JobID)
		if !ok {
			continue
		}
		fmt.Printf("%2d. %s at %s\n", rank+1, job.Title, job.Company)
		fmt.Printf("    %s | %s | %s | Match: %s\n",
			job.Location, job.Experience, formatSalary(job.Salary), colorizeScore(item.Score))
		fmt.Printf("    %s\n", job.ApplyURL)
	}
}

func formatSalary(text string) string {
	v := match.SalaryValue(text)
	if v == 0 {
		return text
	}
	return fmt.Sprintf("%s (₹%s)", text, humanize.Comma(int64(v)))
}

func formatPosted(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

func colorizeScore(score int) string {
	s := fmt.Sprintf("%d%%", score)
	switch {
	case score >= 70:
		return pterm.Green(s)
	case score >= 40:
		return pterm.Yellow(s)
	}
	return pterm.Red(s)
}
