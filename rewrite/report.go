package rewrite

import (
	"fmt"
	"strings"
)

// Severity ranks report entries.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a single report line: which rule said what.
type Entry struct {
	Severity Severity
	Rule     string
	Message  string
}

// String formats the entry for terminal output.
func (e Entry) String() string {
	if e.Rule == "" {
		return fmt.Sprintf("%s: %s", e.Severity, e.Message)
	}

	return fmt.Sprintf("%s: [%s] %s", e.Severity, e.Rule, e.Message)
}

// Report collects what happened during one pipeline run over one file:
// tolerated rule failures, degradation notices, statistics.
type Report struct {
	File     string
	Errors   []Entry
	Warnings []Entry
	Infos    []Entry
}

// AddError records a rule failure that was tolerated in ModeLog.
func (r *Report) AddError(rule, message string) {
	r.Errors = append(r.Errors, Entry{Severity: SeverityError, Rule: rule, Message: message})
}

// AddWarning records a non-fatal oddity.
func (r *Report) AddWarning(rule, message string) {
	r.Warnings = append(r.Warnings, Entry{Severity: SeverityWarning, Rule: rule, Message: message})
}

// AddInfo records an informational note.
func (r *Report) AddInfo(rule, message string) {
	r.Infos = append(r.Infos, Entry{Severity: SeverityInfo, Rule: rule, Message: message})
}

// HasErrors reports whether any rule failed during the run.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge folds another report into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}

	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}

// String renders the report grouped by severity, one entry per line.
func (r *Report) String() string {
	var b strings.Builder

	for _, group := range [][]Entry{r.Errors, r.Warnings, r.Infos} {
		for _, e := range group {
			if r.File != "" {
				b.WriteString(r.File + ": ")
			}

			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}

	return b.String()
}
