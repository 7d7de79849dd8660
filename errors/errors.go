package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindInitFailed         Kind = "init_failed"          // engine initialization
	KindStartFailed        Kind = "start_failed"         // engine start
	KindTaskCreateFailed   Kind = "task_create_failed"   // auxiliary task registration
	KindTaskScheduleFailed Kind = "task_schedule_failed" // auxiliary task scheduling
	KindPortOpenFailed     Kind = "port_open_failed"     // MIDI port open
)

// Error is the structured error type used throughout the library
type Error struct {
	Kind   Kind
	Op     string // engine operation that failed, e.g. "Bela_initAudio"
	Status int    // engine status code, 0 when not applicable
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.Status != 0 {
		b.WriteString(fmt.Sprintf(" (status %d)", e.Status))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the error taxonomy

// InitFailed reports a failed engine initialization
func InitFailed(status int) *Error {
	return &Error{
		Kind:   KindInitFailed,
		Op:     "Bela_initAudio",
		Status: status,
	}
}

// StartFailed reports a failed engine start
func StartFailed(status int) *Error {
	return &Error{
		Kind:   KindStartFailed,
		Op:     "Bela_startAudio",
		Status: status,
	}
}

// TaskCreateFailed reports a failed auxiliary task registration
func TaskCreateFailed(name string) *Error {
	return &Error{
		Kind:   KindTaskCreateFailed,
		Op:     "Bela_createAuxiliaryTask",
		Detail: fmt.Sprintf("task %q: engine returned an invalid handle", name),
	}
}

// TaskScheduleFailed reports a failed auxiliary task scheduling attempt
func TaskScheduleFailed(status int) *Error {
	return &Error{
		Kind:   KindTaskScheduleFailed,
		Op:     "Bela_scheduleAuxiliaryTask",
		Status: status,
	}
}

// PortOpenFailed reports a failed MIDI port open
func PortOpenFailed(port string, cause error) *Error {
	return &Error{
		Kind:   KindPortOpenFailed,
		Op:     "Midi_new",
		Detail: fmt.Sprintf("port %q", port),
		Cause:  cause,
	}
}
