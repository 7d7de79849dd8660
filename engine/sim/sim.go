package sim

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/l0calh05t/bela-go/engine"
)

// engine states
type state int

const (
	stateCreated state = iota
	stateInitialized
	stateStarted
	stateStopped
	stateCleaned
)

const audioSampleRate = 44100

// Engine is a software implementation of the engine contract. It owns the
// period buffers, drives the lifecycle callbacks at buffer cadence from a
// dedicated locked OS thread, and runs one goroutine per auxiliary task.
//
// It exists so applications can be developed and tested off-hardware; it
// makes no hard real-time guarantees beyond honoring the callback contract.
type Engine struct {
	mu    sync.Mutex
	state state

	settings engine.Settings
	cb       engine.Callbacks
	desc     engine.BufferDescriptor

	stopRequested atomic.Bool
	loopDone      chan struct{}

	tasks     []*auxTask
	taskNames map[string]bool
	midiPorts map[string]engine.MidiPort

	pace        bool
	bufferLimit uint64
	inputFill   func(*engine.BufferDescriptor)
	outputSink  func(*engine.BufferDescriptor)
}

type auxTask struct {
	name     string
	priority int
	fn       func()
	wake     chan struct{}
}

// Option configures the software engine.
type Option func(*Engine)

// WithoutPacing disables the period-cadence ticker so buffers are processed
// back to back. Intended for tests.
func WithoutPacing() Option {
	return func(e *Engine) { e.pace = false }
}

// WithBufferLimit makes the engine request its own stop after n buffers.
// 0 means no limit.
func WithBufferLimit(n uint64) Option {
	return func(e *Engine) { e.bufferLimit = n }
}

// WithInputFill installs a hook that populates the input regions of the
// descriptor before each render call, standing in for the hardware ADCs.
func WithInputFill(fill func(*engine.BufferDescriptor)) Option {
	return func(e *Engine) { e.inputFill = fill }
}

// WithOutputSink installs a hook that observes the descriptor after each
// render call, standing in for the hardware DACs.
func WithOutputSink(sink func(*engine.BufferDescriptor)) Option {
	return func(e *Engine) { e.outputSink = sink }
}

// New creates a software engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		pace:      true,
		taskNames: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init negotiates buffer dimensions from the settings and allocates the
// period buffers. Audio runs at 44.1 kHz with twice the analog period size;
// analog runs at half the audio rate; digital runs at audio rate.
func (e *Engine) Init(settings *engine.Settings, cb engine.Callbacks) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateCreated {
		return 1
	}
	if settings == nil || settings.PeriodSize <= 0 {
		return 1
	}
	if cb.Render == nil {
		return 1
	}

	e.settings = *settings
	e.cb = cb

	d := &e.desc
	d.AudioFrames = 2 * settings.PeriodSize
	d.AudioInChannels = 2
	d.AudioOutChannels = 2
	d.AudioSampleRate = audioSampleRate
	d.AudioIn = make([]float32, d.AudioFrames*d.AudioInChannels)
	d.AudioOut = make([]float32, d.AudioFrames*d.AudioOutChannels)

	if settings.UseAnalog {
		d.AnalogFrames = settings.PeriodSize
		d.AnalogInChannels = settings.AnalogInChannels
		d.AnalogOutChannels = settings.AnalogOutChannels
		d.AnalogSampleRate = audioSampleRate / 2
		d.AnalogIn = make([]float32, d.AnalogFrames*d.AnalogInChannels)
		d.AnalogOut = make([]float32, d.AnalogFrames*d.AnalogOutChannels)
	}

	if settings.UseDigital {
		d.DigitalFrames = d.AudioFrames
		d.DigitalChannels = settings.DigitalChannels
		d.DigitalSampleRate = audioSampleRate
		d.Digital = make([]uint32, d.DigitalFrames)
	}

	if settings.Interleave {
		d.Flags |= engine.FlagInterleaved
	}
	if settings.AnalogOutputsPersist {
		d.Flags |= engine.FlagAnalogOutputsPersist
	}
	if settings.DetectUnderruns {
		d.Flags |= engine.FlagDetectUnderruns
	}
	d.MultiplexerChannels = settings.MuxChannels

	e.state = stateInitialized
	engine.Logger().Info("sim engine initialized",
		zap.Int("audio_frames", d.AudioFrames),
		zap.Int("analog_frames", d.AnalogFrames),
		zap.Int("digital_frames", d.DigitalFrames),
		zap.Float32("audio_sample_rate", d.AudioSampleRate),
		zap.String("board", e.settings.Board.String()))
	return 0
}

// Start launches the audio loop on a dedicated locked OS thread.
func (e *Engine) Start() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateInitialized {
		return 1
	}

	e.loopDone = make(chan struct{})
	e.state = stateStarted
	go e.audioLoop()

	engine.Logger().Info("sim engine started")
	return 0
}

func (e *Engine) audioLoop() {
	defer close(e.loopDone)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if e.cb.Setup != nil && !e.cb.Setup(&e.desc) {
		// The application declined to start; report a stop so the poll
		// loop in the caller terminates.
		e.stopRequested.Store(true)
		return
	}

	period := time.Duration(float64(e.desc.AudioFrames) / audioSampleRate * float64(time.Second))
	var ticker *time.Ticker
	if e.pace {
		ticker = time.NewTicker(period)
		defer ticker.Stop()
	}

	var buffers uint64
	for !e.stopRequested.Load() {
		e.prepareBuffers()
		if e.inputFill != nil {
			e.inputFill(&e.desc)
		}

		e.cb.Render(&e.desc)

		if e.outputSink != nil {
			e.outputSink(&e.desc)
		}
		e.desc.AudioFramesElapsed += uint64(e.desc.AudioFrames)

		buffers++
		if e.bufferLimit != 0 && buffers >= e.bufferLimit {
			e.stopRequested.Store(true)
			break
		}

		if ticker != nil {
			<-ticker.C
		}
	}

	if e.cb.Cleanup != nil {
		e.cb.Cleanup(&e.desc)
	}
}

// prepareBuffers re-initializes the engine-owned regions for the next
// period: outputs are zeroed (analog only when persistence is off) and the
// digital words are seeded from the final frame of the previous period, so
// the last driven pin state carries forward while per-buffer writes do not.
func (e *Engine) prepareBuffers() {
	d := &e.desc
	clear(d.AudioOut)
	if d.Flags&engine.FlagAnalogOutputsPersist == 0 {
		clear(d.AnalogOut)
	}
	if n := len(d.Digital); n > 0 {
		last := d.Digital[n-1]
		for i := range d.Digital {
			d.Digital[i] = last
		}
	}
}

// StopRequested reports whether a stop was requested.
func (e *Engine) StopRequested() bool {
	return e.stopRequested.Load()
}

// RequestStop asks the audio loop to exit after the current buffer.
func (e *Engine) RequestStop() {
	e.stopRequested.Store(true)
}

// Stop halts the audio loop and waits for the in-flight buffer to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateStarted {
		return
	}
	e.stopRequested.Store(true)
	<-e.loopDone
	e.state = stateStopped
	engine.Logger().Info("sim engine stopped")
}

// Cleanup releases engine resources and lets the auxiliary task workers
// exit. Registered callables remain referenced for the process lifetime,
// matching the native engine's lack of an unregister path.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateStopped && e.state != stateInitialized {
		return
	}
	for _, t := range e.tasks {
		close(t.wake)
	}
	e.state = stateCleaned
	engine.Logger().Info("sim engine cleaned up")
}

// CreateAuxiliaryTask registers fn and starts its worker goroutine. Valid
// only between Init and Start. Duplicate names are rejected, approximating
// the native engine's process-global name requirement.
func (e *Engine) CreateAuxiliaryTask(fn func(), priority int, name string) engine.AuxiliaryTask {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateInitialized || fn == nil || name == "" {
		return 0
	}
	if priority < engine.MaxAuxiliaryPriority || priority > engine.MinAuxiliaryPriority {
		return 0
	}
	if e.taskNames[name] {
		engine.Logger().Warn("duplicate auxiliary task name", zap.String("name", name))
		return 0
	}
	e.taskNames[name] = true

	t := &auxTask{
		name:     name,
		priority: priority,
		fn:       fn,
		// Capacity 1: a schedule during execution coalesces into one
		// pending wakeup, and the enqueue never blocks.
		wake: make(chan struct{}, 1),
	}
	e.tasks = append(e.tasks, t)
	go t.run()

	engine.Logger().Info("auxiliary task created",
		zap.String("name", name),
		zap.Int("priority", priority))
	return engine.AuxiliaryTask(len(e.tasks))
}

func (t *auxTask) run() {
	for range t.wake {
		t.fn()
	}
}

// ScheduleAuxiliaryTask wakes the task's worker without blocking or
// allocating. Scheduling an already-pending task coalesces and succeeds.
func (e *Engine) ScheduleAuxiliaryTask(task engine.AuxiliaryTask) int {
	idx := int(task) - 1
	if idx < 0 || idx >= len(e.tasks) {
		return 1
	}
	select {
	case e.tasks[idx].wake <- struct{}{}:
	default:
	}
	return 0
}
