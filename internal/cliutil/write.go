// Package cliutil provides output helpers for the command-line interface.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JehandadK/swagger-parser/internal/issues"
	"github.com/JehandadK/swagger-parser/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// FormatBytes formats a byte count using binary units (KiB, MiB, ...).
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// reportOrder lists severities from most to least severe.
var reportOrder = []severity.Severity{
	severity.SeverityCritical,
	severity.SeverityError,
	severity.SeverityWarning,
	severity.SeverityInfo,
}

// WriteIssues prints issues at or above minimum, grouped under one heading
// per severity, most severe first. It returns the number of issues printed.
func WriteIssues(w io.Writer, list []issues.Issue, minimum severity.Severity) int {
	titleCaser := cases.Title(language.English)
	printed := 0

	for _, sev := range reportOrder {
		if !sev.AtLeast(minimum) {
			continue
		}
		var group []issues.Issue
		for _, issue := range list {
			if issue.Severity == sev {
				group = append(group, issue)
			}
		}
		if len(group) == 0 {
			continue
		}
		Writef(w, "%s (%d):\n", titleCaser.String(sev.String()), len(group))
		for _, issue := range group {
			Writef(w, "  %s\n", issue.String())
		}
		printed += len(group)
	}
	return printed
}
