// Package report renders link outcomes and status listings for humans, and
// in YAML for scripts that post-process them.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pviana/dotlnk/pkg/errors"
	"github.com/pviana/dotlnk/pkg/linker"
	"github.com/pviana/dotlnk/pkg/style"
)

// Format selects the output rendering
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text or yaml)", s)
	}
}

type resultDoc struct {
	Target     string `yaml:"target"`
	Source     string `yaml:"source"`
	Outcome    string `yaml:"outcome"`
	Error      string `yaml:"error,omitempty"`
	ErrorCode  string `yaml:"error_code,omitempty"`
	BackupPath string `yaml:"backup_path,omitempty"`
}

// RenderResults writes the per-request outcomes followed by a summary line
// and, when a backup session was created, its directory.
func RenderResults(w io.Writer, results []linker.Result, session *linker.Session, format Format) error {
	if format == FormatYAML {
		return renderResultsYAML(w, results, session)
	}

	counts := map[linker.Outcome]int{}
	for _, res := range results {
		counts[res.Outcome]++
		fmt.Fprintln(w, formatResult(res))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d linked, %d already linked, %d backed up and linked, %d skipped, %d failed\n",
		style.TitleStyle.Render("Summary:"),
		counts[linker.OutcomeLinked],
		counts[linker.OutcomeAlreadyLinked],
		counts[linker.OutcomeBackedUpAndLinked],
		counts[linker.OutcomeSkippedByUser],
		counts[linker.OutcomeFailed])

	if session != nil {
		fmt.Fprintf(w, "Displaced originals saved under %s\n", style.PathStyle.Render(session.Dir))
	}
	return nil
}

func formatResult(res linker.Result) string {
	target := style.PathStyle.Render(res.Request.Target)
	switch res.Outcome {
	case linker.OutcomeLinked:
		return fmt.Sprintf("%s %s -> %s", style.SuccessStyle.Render("linked"), target, res.Request.Source)
	case linker.OutcomeAlreadyLinked:
		return fmt.Sprintf("%s %s", style.MutedStyle.Render("already linked"), target)
	case linker.OutcomeBackedUpAndLinked:
		return fmt.Sprintf("%s %s -> %s (original moved to %s)",
			style.SuccessStyle.Render("backed up and linked"), target, res.Request.Source, res.BackupPath)
	case linker.OutcomeSkippedByUser:
		return fmt.Sprintf("%s %s (left untouched)", style.WarningStyle.Render("skipped"), target)
	default:
		if errors.IsErrorCode(res.Err, errors.ErrLinkAfterBackup) {
			// Loudest line in the report: data moved, link missing.
			return fmt.Sprintf("%s %s: %v", style.CriticalStyle.Render("NEEDS ATTENTION"), target, res.Err)
		}
		return fmt.Sprintf("%s %s: %v", style.ErrorStyle.Render("failed"), target, res.Err)
	}
}

func renderResultsYAML(w io.Writer, results []linker.Result, session *linker.Session) error {
	type runDoc struct {
		Results   []resultDoc `yaml:"results"`
		BackupDir string      `yaml:"backup_dir,omitempty"`
	}

	doc := runDoc{Results: make([]resultDoc, 0, len(results))}
	for _, res := range results {
		rd := resultDoc{
			Target:     res.Request.Target,
			Source:     res.Request.Source,
			Outcome:    string(res.Outcome),
			BackupPath: res.BackupPath,
		}
		if res.Err != nil {
			rd.Error = res.Err.Error()
			rd.ErrorCode = string(errors.GetErrorCode(res.Err))
		}
		doc.Results = append(doc.Results, rd)
	}
	if session != nil {
		doc.BackupDir = session.Dir
	}
	return yaml.NewEncoder(w).Encode(doc)
}

// RenderStatus writes the read-only classification of every manifest link.
func RenderStatus(w io.Writer, entries []linker.Classified, format Format) error {
	if format == FormatYAML {
		type statusDoc struct {
			Source string `yaml:"source"`
			Target string `yaml:"target"`
			State  string `yaml:"state"`
		}
		docs := make([]statusDoc, 0, len(entries))
		for _, entry := range entries {
			docs = append(docs, statusDoc{
				Source: entry.Request.Source,
				Target: entry.Request.Target,
				State:  string(entry.State),
			})
		}
		return yaml.NewEncoder(w).Encode(map[string][]statusDoc{"links": docs})
	}

	for _, entry := range entries {
		var label string
		switch entry.State {
		case linker.StateLinked:
			label = style.SuccessStyle.Render("linked")
		case linker.StateUnlinked:
			label = style.MutedStyle.Render("unlinked")
		default:
			label = style.WarningStyle.Render("conflict")
		}
		fmt.Fprintf(w, "%s %s -> %s\n", label, style.PathStyle.Render(entry.Request.Target), entry.Request.Source)
	}
	return nil
}
