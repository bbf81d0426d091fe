package cli

import (
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"freshd/internal/api"
)

// PrintStatusTable renders the update status as a two-column table.
func PrintStatusTable(w io.Writer, status api.UpdateStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Current version", status.CurrentVersion})
	t.AppendRow(table.Row{"Latest version", status.LatestVersion})
	t.AppendRow(table.Row{"Update available", formatBool(status.UpdateAvailable)})
	t.AppendRow(table.Row{"Checking", formatBool(status.Checking)})
	t.AppendRow(table.Row{"Updating", formatBool(status.Updating)})
	t.AppendRow(table.Row{"Last check", formatTime(status.LastCheck)})
	t.AppendRow(table.Row{"Features", formatFeatures(status.NewFeatures)})
	if status.Error != "" {
		t.AppendRow(table.Row{"Error", status.Error})
	}

	t.Render()
}

// PrintFeaturesTable renders the capability list as a numbered table.
func PrintFeaturesTable(w io.Writer, features []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Feature"})
	for i, f := range features {
		t.AppendRow(table.Row{i + 1, f})
	}
	t.Render()
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatTime(ts *time.Time) string {
	if ts == nil {
		return "never"
	}
	return ts.Format(time.RFC3339)
}

func formatFeatures(features []string) string {
	if len(features) == 0 {
		return "-"
	}
	return strings.Join(features, ", ")
}
