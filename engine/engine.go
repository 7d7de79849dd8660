package engine

// AuxiliaryTask is an opaque engine handle to a registered auxiliary task.
// The zero value is invalid and signals a failed registration.
type AuxiliaryTask uint32

// Valid reports whether the handle refers to a registered task.
func (t AuxiliaryTask) Valid() bool {
	return t != 0
}

// Callbacks carries the three lifecycle entry points registered on the
// engine before start. A single opaque descriptor pointer threads through
// all three; the pointed-to memory is owned by the engine and valid only
// for the duration of each call.
//
// Setup returns whether the engine should proceed to start the real-time
// thread. Render runs on the elevated-priority thread once per buffer and
// must not allocate, block, or panic. Cleanup runs once after the engine
// stops.
type Callbacks struct {
	Setup   func(*BufferDescriptor) bool
	Render  func(*BufferDescriptor)
	Cleanup func(*BufferDescriptor)
}

// Engine is the fixed contract of the real-time hardware I/O driver.
//
// The four lifecycle operations mirror the native API and report failure
// through nonzero status codes rather than errors; callers map statuses to
// the typed taxonomy in the errors package. Stop and Cleanup are only valid
// after the corresponding prior step succeeded.
//
// ScheduleAuxiliaryTask is called from the real-time render thread and
// implementations must make it a non-blocking, non-allocating enqueue.
type Engine interface {
	// Init validates the settings, allocates engine-owned buffers, and
	// registers the callbacks. Nonzero means failure.
	Init(settings *Settings, cb Callbacks) int

	// Start launches the elevated-priority audio thread. Nonzero means
	// failure.
	Start() int

	// StopRequested reports whether a stop has been requested, either via
	// RequestStop or by the engine itself (e.g. the stop button).
	StopRequested() bool

	// RequestStop asks the engine to stop. Safe to call from a signal
	// handling context.
	RequestStop()

	// Stop halts the audio thread. Only valid after a successful Start.
	Stop()

	// Cleanup releases engine resources. Only valid after a successful Init.
	Cleanup()

	// CreateAuxiliaryTask registers fn to run on a lower-priority thread
	// whenever the returned handle is scheduled. The engine retains fn for
	// the remainder of the process; there is no unregister operation. The
	// name must be globally unique across cooperating processes, which the
	// engine cannot verify. Returns the zero handle on failure.
	//
	// Only valid between Init and Start.
	CreateAuxiliaryTask(fn func(), priority int, name string) AuxiliaryTask

	// ScheduleAuxiliaryTask wakes the task's thread. Nonzero means failure.
	ScheduleAuxiliaryTask(t AuxiliaryTask) int
}

// MidiPort is a sequential reader over an engine MIDI port. Messages are at
// most three bytes.
type MidiPort interface {
	// Available reports the number of buffered incoming messages.
	Available() int

	// Read copies the next message into buf and returns its length,
	// 0 if no message is pending.
	Read(buf []byte) int

	// Close releases the port.
	Close() error
}

// MidiOpener is implemented by engines that expose MIDI ports.
type MidiOpener interface {
	// OpenMidi opens the named port, e.g. "hw:0,0,0".
	OpenMidi(port string) (MidiPort, error)
}

// Auxiliary task priorities, relative to the engine's real-time thread.
// Mirrors the native priority scale where 0 is the highest auxiliary
// priority available.
const (
	MaxAuxiliaryPriority = 0
	MinAuxiliaryPriority = 99
)
