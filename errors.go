package daa

import "fmt"

// Severity classifies an entry in an ErrorLog.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// LogEntry is one accumulated message in an ErrorLog.
type LogEntry struct {
	Severity Severity
	Context  string
	Message  string
}

// ErrorLog accumulates non-fatal problems encountered while running the
// core query pipeline (spec.md §7): the core never panics or exits on a
// malformed input or numeric edge case, it records the problem here and
// continues with a documented fallback (NaN, an empty band set, or a
// clamped value).
type ErrorLog struct {
	entries []LogEntry
}

// Add appends a message at the given severity, tagged with the
// subsystem/context it originated from (e.g. "CDCylinder", "ParameterData").
func (l *ErrorLog) Add(sev Severity, context, format string, args ...any) {
	l.entries = append(l.entries, LogEntry{Severity: sev, Context: context, Message: fmt.Sprintf(format, args...)})
}

// Info records an informational message.
func (l *ErrorLog) Info(context, format string, args ...any) { l.Add(SeverityInfo, context, format, args...) }

// Warn records a warning.
func (l *ErrorLog) Warn(context, format string, args ...any) { l.Add(SeverityWarning, context, format, args...) }

// Error records an error.
func (l *ErrorLog) Error(context, format string, args ...any) { l.Add(SeverityError, context, format, args...) }

// HasError reports whether any entry at SeverityError was recorded.
func (l *ErrorLog) HasError() bool {
	for _, e := range l.entries {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Entries returns every accumulated entry in the order recorded.
func (l *ErrorLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the log, typically called at the start of a fresh query
// cycle.
func (l *ErrorLog) Clear() { l.entries = l.entries[:0] }
