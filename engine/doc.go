// Package engine defines the fixed contract of the real-time hardware I/O
// driver that owns the audio, analog, and digital buffers and drives the
// lifecycle callbacks.
//
// # Callback Contract
//
// An Engine is given three entry points before start and a per-invocation
// BufferDescriptor threads through all of them:
//
//  1. Setup is called exactly once from the audio thread before the first
//     buffer. Its boolean result tells the engine whether to proceed.
//  2. Render is called once per buffer at elevated priority for as long as
//     the engine runs. It must not allocate, block, or panic.
//  3. Cleanup is called exactly once after the engine stops, if and only if
//     Setup agreed to proceed.
//
// # Lifecycle Operations
//
// The four engine-level operations are strictly sequential:
//
//	Init -> Start -> Stop -> Cleanup
//
// Each reports failure with a nonzero status code in the style of the
// native API; Stop and Cleanup are only valid after the corresponding
// earlier step succeeded. The errors package maps statuses to typed errors.
//
// # Auxiliary Tasks
//
// CreateAuxiliaryTask transfers a callable to the engine, which retains it
// for the remainder of the process. The native API offers no unregister
// path, so registration is an intentional, permanent handover.
// ScheduleAuxiliaryTask wakes the task's lower-priority thread and is safe
// to call at buffer cadence from the render thread: implementations must
// guarantee a non-blocking, non-allocating enqueue.
//
// # Implementations
//
// The sim subpackage provides a software engine for development and testing
// off-hardware. On a real board the contract is implemented over the native
// driver; user code is insulated from the difference by the bela package.
package engine
