// Package errors provides the structured error types reported by the
// bela-go library.
//
// Every recoverable failure maps to one of a small set of Kinds mirroring
// the engine operations that can fail:
//
//	init_failed           engine initialization rejected the settings
//	start_failed          the real-time thread could not be started
//	task_create_failed    auxiliary task registration returned an invalid handle
//	task_schedule_failed  auxiliary task scheduling returned a nonzero status
//	port_open_failed      a MIDI port could not be opened
//
// Errors carry the engine operation name and status code so callers can
// match with errors.Is against a Kind or inspect the raw status:
//
//	if err := app.Run(); err != nil {
//	    var e *errors.Error
//	    if stderrors.As(err, &e) && e.Kind == errors.KindStartFailed {
//	        // the board is likely already in use
//	    }
//	}
//
// Abnormal termination on the render path is deliberately NOT part of this
// taxonomy: reporting it safely would require allocation on the real-time
// thread, so it is a fatal precondition violation rather than an error value.
package errors
