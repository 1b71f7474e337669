package diag

// Severity ranks how serious a diagnostic is. The constants order from
// harmless to fatal; Bag.HasErrors and the parser's fail-fast check
// compare against SevError, so the ordering is load-bearing.
type Severity uint8

const (
	// SevInfo marks purely informational output.
	SevInfo Severity = iota
	// SevWarning marks suspicious but accepted input.
	SevWarning
	// SevError marks input the phase could not accept; the first one
	// ends the run.
	SevError
)

// String returns the uppercase label used in structured output. Pretty
// rendering lowercases it.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
