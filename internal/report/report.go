// Package report renders scan outcomes in several output formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/appsweep/appsweep/internal/scanner"
	"github.com/appsweep/appsweep/pkg/bytefmt"
)

// Format represents the output format type.
type Format string

const (
	FormatSummary Format = "summary"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Reporter handles report generation.
type Reporter struct {
	writer io.Writer
	format Format
}

// New creates a Reporter.
func New(writer io.Writer, format Format) *Reporter {
	return &Reporter{writer: writer, format: format}
}

// document is the serialized shape used for json and yaml output.
type document struct {
	App              appDoc          `json:"app" yaml:"app"`
	Entries          []scanner.Entry `json:"entries" yaml:"entries"`
	TotalCount       int             `json:"total_count" yaml:"total_count"`
	TotalSize        int64           `json:"total_size" yaml:"total_size"`
	PermissionIssues bool            `json:"permission_issues" yaml:"permission_issues"`
}

type appDoc struct {
	Name     string `json:"name" yaml:"name"`
	BundleID string `json:"bundle_id" yaml:"bundle_id"`
	Path     string `json:"path" yaml:"path"`
}

// Report renders the outcome of a scan for app.
func (r *Reporter) Report(app scanner.App, outcome *scanner.Outcome) error {
	if outcome == nil {
		return fmt.Errorf("no scan outcome to report")
	}
	switch r.format {
	case FormatSummary:
		return r.reportSummary(app, outcome)
	case FormatTable:
		return r.reportTable(app, outcome)
	case FormatJSON:
		return r.reportJSON(app, outcome)
	case FormatYAML:
		return r.reportYAML(app, outcome)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(app scanner.App, outcome *scanner.Outcome) error {
	fmt.Fprintf(r.writer, "=== %s (%s) ===\n", app.Name, app.BundleID)
	fmt.Fprintf(r.writer, "Entries found: %d\n", len(outcome.Entries))
	fmt.Fprintf(r.writer, "Total size: %s\n", bytefmt.Format(outcome.TotalSize()))

	byParent := make(map[string]int)
	var parents []string
	for _, entry := range outcome.Entries {
		if byParent[entry.Parent] == 0 {
			parents = append(parents, entry.Parent)
		}
		byParent[entry.Parent]++
	}
	fmt.Fprintf(r.writer, "\nBy location:\n")
	for _, parent := range parents {
		fmt.Fprintf(r.writer, "  %s: %d\n", parent, byParent[parent])
	}

	if outcome.PermissionIssues {
		fmt.Fprintf(r.writer, "\nSome locations were inaccessible; consider granting broader disk access.\n")
	}
	return nil
}

func (r *Reporter) reportTable(app scanner.App, outcome *scanner.Outcome) error {
	fmt.Fprintf(r.writer, "%-70s | %-10s | %s\n", "Path", "Size", "Kind")
	for _, entry := range outcome.Entries {
		kind := "file"
		if entry.IsDir {
			kind = "dir"
		}
		fmt.Fprintf(r.writer, "%-70s | %-10s | %s\n", entry.Path, bytefmt.Format(entry.Size), kind)
	}
	fmt.Fprintf(r.writer, "\n%d entries, %s total\n", len(outcome.Entries), bytefmt.Format(outcome.TotalSize()))
	if outcome.PermissionIssues {
		fmt.Fprintf(r.writer, "Some locations were inaccessible.\n")
	}
	return nil
}

func (r *Reporter) reportJSON(app scanner.App, outcome *scanner.Outcome) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(r.document(app, outcome))
}

func (r *Reporter) reportYAML(app scanner.App, outcome *scanner.Outcome) error {
	return yaml.NewEncoder(r.writer).Encode(r.document(app, outcome))
}

func (r *Reporter) document(app scanner.App, outcome *scanner.Outcome) document {
	return document{
		App: appDoc{
			Name:     app.Name,
			BundleID: app.BundleID,
			Path:     app.InstallPath,
		},
		Entries:          outcome.Entries,
		TotalCount:       len(outcome.Entries),
		TotalSize:        outcome.TotalSize(),
		PermissionIssues: outcome.PermissionIssues,
	}
}
