package model

import "fmt"

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindRender        ErrorKind = "render"
	KindStore         ErrorKind = "store"
	KindTransport     ErrorKind = "transport"
)

// Sentinels for errors.Is matching on the kind of a pipeline error.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrRender        = &Error{Kind: KindRender}
	ErrStore         = &Error{Kind: KindStore}
	ErrTransport     = &Error{Kind: KindTransport}
)

// Error is a classified pipeline failure. Op names the step that failed.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Op)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ConfigurationError reports missing or invalid configuration.
func ConfigurationError(op string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

// RenderError reports a template that could not be rendered.
func RenderError(op string, err error) error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

// StoreError reports a failed store query.
func StoreError(op string, err error) error {
	return &Error{Kind: KindStore, Op: op, Err: err}
}

// TransportError reports a failed webhook delivery.
func TransportError(op string, err error) error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}
