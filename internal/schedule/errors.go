package schedule

import "fmt"

// InvalidSpecError indicates a template block whose start or duration
// string does not match the HH:MM grammar, or whose duration is not
// positive. It is a configuration defect and is never retried.
type InvalidSpecError struct {
	Block  string
	Field  string // "start" or "duration"
	Value  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("block %q: invalid %s %q: %s", e.Block, e.Field, e.Value, e.Reason)
}

// ConflictError indicates two template blocks whose resolved windows
// overlap. Build fails closed: nothing is persisted.
type ConflictError struct {
	BlockA  string
	WindowA string
	BlockB  string
	WindowB string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("blocks %q (%s) and %q (%s) overlap",
		e.BlockA, e.WindowA, e.BlockB, e.WindowB)
}
