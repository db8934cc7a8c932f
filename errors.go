package mdhtml

import (
	"errors"
	"fmt"
)

// ErrClassification reports a line handler invoked on a line that its own
// predicate rejects. It indicates a dispatcher bug, not bad Markdown.
var ErrClassification = errors.New("classification contract violation")

// ClassificationError describes which handler rejected which line.
type ClassificationError struct {
	Handler string
	Line    string
	Reason  string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: %s handler: %s, got %q", ErrClassification, e.Handler, e.Reason, e.Line)
}

func (e *ClassificationError) Unwrap() error {
	return ErrClassification
}

func classificationError(handler, line, reason string) error {
	return &ClassificationError{Handler: handler, Line: line, Reason: reason}
}
