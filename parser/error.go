package parser

import "fmt"

// Error reports why a string failed to parse. Begin and End are codepoint
// offsets bracketing the offending span. End is nil when the input ended
// before the span was closed, so there is no position after it to report.
type Error struct {
	Begin   int
	End     *int
	Message string
}

func (e *Error) Error() string {
	if e.End == nil {
		return fmt.Sprintf("%d: %s", e.Begin, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Begin, *e.End, e.Message)
}
