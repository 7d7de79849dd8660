package bela

import (
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l0calh05t/bela-go/engine"
	"github.com/l0calh05t/bela-go/engine/sim"
	"github.com/l0calh05t/bela-go/errors"
)

// Application is the interface Bela applications must implement.
//
// Render operates in the engine's primary, elevated-priority mode: it must
// not allocate, block, log, or panic. There is no containment boundary on
// this path, since containment would itself require operations that are
// disallowed on the real-time thread; an escaping panic is a fatal
// contract violation, not a recoverable error. Offload anything that needs
// the operating system to an auxiliary task.
type Application interface {
	Render(*RenderContext)
}

// CleanupHandler may optionally be implemented by an Application to
// release resources when the engine shuts down. It runs once, off the
// real-time thread, inside a containment boundary.
type CleanupHandler interface {
	Cleanup()
}

// Constructor builds the Application during the engine's one-time setup
// callback, with the negotiated hardware configuration available through
// the context. Returning nil declines to start: the engine will not run
// and the surrounding Run returns nil.
type Constructor func(*SetupContext) Application

// userData is the controller's process-wide application state, a tagged
// union over exactly one of constructor, application, or nothing. It has a
// single owner and a single writer (the engine's audio thread); the only
// legal transitions are constructor -> {application, none} during setup
// and application -> none during cleanup.
type userData struct {
	state       userState
	constructor Constructor
	application Application

	// renderCtx is rebound to the fresh descriptor on every render call and
	// reused, so the render entry point does not allocate. User code must
	// still treat the context as call-bound.
	renderCtx RenderContext
}

type userState uint8

const (
	userConstructor userState = iota
	userApplication
	userNone
)

// Bela configures and runs an Application. It follows the builder
// pattern: create it with New, chain settings calls, then call Run.
type Bela struct {
	settings    *engine.Settings
	constructor Constructor
	engine      engine.Engine
}

// New creates a Bela builder with default settings. The software engine is
// used unless Engine selects another implementation.
func New(constructor Constructor) *Bela {
	return &Bela{
		settings:    engine.DefaultSettings(),
		constructor: constructor,
		engine:      sim.New(),
	}
}

// Engine selects the engine implementation driving the callbacks.
func (b *Bela) Engine(e engine.Engine) *Bela {
	b.engine = e
	return b
}

// PeriodSize sets the number of analog frames per period (buffer). The
// number of audio frames depends on the relative sample rates of the two;
// by default audio runs at twice the analog rate and so has twice the
// period size.
func (b *Bela) PeriodSize(size int) *Bela {
	b.settings.PeriodSize = size
	return b
}

// UseAnalog sets whether to use the analog inputs and outputs.
func (b *Bela) UseAnalog(use bool) *Bela {
	b.settings.UseAnalog = use
	return b
}

// UseDigital sets whether to use the digital inputs and outputs.
func (b *Bela) UseDigital(use bool) *Bela {
	b.settings.UseDigital = use
	return b
}

// NumAnalogInChannels sets the number of requested analog input channels.
func (b *Bela) NumAnalogInChannels(num int) *Bela {
	b.settings.AnalogInChannels = num
	return b
}

// NumAnalogOutChannels sets the number of requested analog output channels.
func (b *Bela) NumAnalogOutChannels(num int) *Bela {
	b.settings.AnalogOutChannels = num
	return b
}

// NumDigitalChannels sets the number of requested digital channels.
func (b *Bela) NumDigitalChannels(num int) *Bela {
	b.settings.DigitalChannels = num
	return b
}

// BeginMuted sets whether the application starts with the speakers muted.
func (b *Bela) BeginMuted(muted bool) *Bela {
	b.settings.BeginMuted = muted
	return b
}

// DACLevel sets the initial audio DAC level in dB.
func (b *Bela) DACLevel(level float32) *Bela {
	mustFinite("DAC level", level)
	b.settings.DACLevel = level
	return b
}

// ADCLevel sets the initial audio ADC level in dB.
func (b *Bela) ADCLevel(level float32) *Bela {
	mustFinite("ADC level", level)
	b.settings.ADCLevel = level
	return b
}

// PGAGain sets the initial gain for the left and right PGA channels in dB.
func (b *Bela) PGAGain(gain [2]float32) *Bela {
	mustFinite("PGA gain", gain[0])
	mustFinite("PGA gain", gain[1])
	b.settings.PGAGain = gain
	return b
}

// HeadphoneLevel sets the initial headphone level in dB.
func (b *Bela) HeadphoneLevel(level float32) *Bela {
	mustFinite("headphone level", level)
	b.settings.HeadphoneLevel = level
	return b
}

// NumMuxChannels sets the number of requested multiplexer channels.
func (b *Bela) NumMuxChannels(num int) *Bela {
	b.settings.MuxChannels = num
	return b
}

// AudioExpanderInputs sets the number of requested audio expander inputs.
func (b *Bela) AudioExpanderInputs(num int) *Bela {
	b.settings.AudioExpanderInputs = num
	return b
}

// AudioExpanderOutputs sets the number of requested audio expander outputs.
func (b *Bela) AudioExpanderOutputs(num int) *Bela {
	b.settings.AudioExpanderOutputs = num
	return b
}

// PRUNumber sets the PRU (0 or 1) the low-level I/O code runs on.
func (b *Bela) PRUNumber(num int) *Bela {
	if num != 0 && num != 1 {
		panic("bela: PRU number must be 0 or 1")
	}
	b.settings.PRUNumber = num
	return b
}

// PRUFilename sets an external PRU .bin file to load instead of the
// built-in code. The file's behavior cannot be validated here.
func (b *Bela) PRUFilename(name string) *Bela {
	b.settings.PRUFilename = name
	return b
}

// DetectUnderruns enables or disables underrun detection and logging.
func (b *Bela) DetectUnderruns(detect bool) *Bela {
	b.settings.DetectUnderruns = detect
	return b
}

// Verbose enables or disables verbose engine logging.
func (b *Bela) Verbose(verbose bool) *Bela {
	b.settings.Verbose = verbose
	return b
}

// EnableLED enables or disables the LED that blinks while running.
func (b *Bela) EnableLED(enable bool) *Bela {
	b.settings.EnableLED = enable
	return b
}

// StopButtonPin sets the stop button pin (0-127); a negative value
// disables the stop button.
func (b *Bela) StopButtonPin(pin int) *Bela {
	if pin > 127 {
		panic("bela: stop button pin out of range")
	}
	b.settings.StopButtonPin = pin
	return b
}

// HighPerformanceMode enables or disables high performance mode. May
// degrade IDE and Linux responsiveness on the board.
func (b *Bela) HighPerformanceMode(enable bool) *Bela {
	b.settings.HighPerformanceMode = enable
	return b
}

// Interleave enables or disables interleaving of audio samples.
func (b *Bela) Interleave(interleave bool) *Bela {
	b.settings.Interleave = interleave
	return b
}

// AnalogOutputsPersist sets whether analog output values persist across
// frames until overwritten.
func (b *Bela) AnalogOutputsPersist(persist bool) *Bela {
	b.settings.AnalogOutputsPersist = persist
	return b
}

// UniformSampleRate sets whether analog I/O is resampled to the audio rate.
func (b *Bela) UniformSampleRate(uniform bool) *Bela {
	b.settings.UniformSampleRate = uniform
	return b
}

// AudioThreadStackSize sets the requested audio thread stack size in bytes.
func (b *Bela) AudioThreadStackSize(size int) *Bela {
	b.settings.AudioThreadStackSize = size
	return b
}

// AuxiliaryTaskStackSize sets the requested stack size for all auxiliary
// task threads in bytes.
func (b *Bela) AuxiliaryTaskStackSize(size int) *Bela {
	b.settings.AuxiliaryTaskStackSize = size
	return b
}

// AmpMutePin sets the amplifier mute pin (0-127); a negative value
// disables it.
func (b *Bela) AmpMutePin(pin int) *Bela {
	if pin > 127 {
		panic("bela: amp mute pin out of range")
	}
	b.settings.AmpMutePin = pin
	return b
}

// Board selects the board to drive, overriding hardware detection.
func (b *Bela) Board(hw Hardware) *Bela {
	b.settings.Board = hw
	return b
}

func mustFinite(what string, v float32) {
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		panic("bela: " + what + " must be finite")
	}
}

// stopPollInterval is how often Run checks for a requested stop.
const stopPollInterval = 10 * time.Microsecond

// Run consumes the builder and runs the application until the engine stops
// or the process receives SIGINT or SIGTERM.
//
// The sequence is: install termination handlers, initialize the engine
// with the three lifecycle entry points, start it, poll for a requested
// stop, then stop and clean up the engine. Initialization or start
// failures short-circuit the sequence: steps that would only be valid
// after the failed one are skipped and a typed error is returned. A
// constructor that declines to produce an application is not an error; the
// engine never starts rendering and Run returns nil.
func (b *Bela) Run() error {
	user := &userData{
		state:       userConstructor,
		constructor: b.constructor,
	}

	cb := engine.Callbacks{
		Setup:   func(d *engine.BufferDescriptor) bool { return b.setup(user, d) },
		Render:  func(d *engine.BufferDescriptor) { b.render(user, d) },
		Cleanup: func(d *engine.BufferDescriptor) { b.cleanup(user) },
	}

	restore := installStopHandler(b.engine)
	defer restore()

	if status := b.engine.Init(b.settings, cb); status != 0 {
		return errors.InitFailed(status)
	}

	if status := b.engine.Start(); status != 0 {
		return errors.StartFailed(status)
	}

	for !b.engine.StopRequested() {
		time.Sleep(stopPollInterval)
	}

	b.engine.Stop()
	b.engine.Cleanup()

	return nil
}

// setup is the one-time setup entry point. It consumes the stored
// constructor exactly once and invokes it inside a containment boundary:
// a panicking constructor is treated the same as one that declined, and
// the engine is told not to start.
func (b *Bela) setup(user *userData, d *engine.BufferDescriptor) bool {
	if user.state != userConstructor {
		return user.state == userApplication
	}

	ctor := user.constructor
	user.constructor = nil

	ctx := SetupContext{introspection{raw: d, eng: b.engine}}
	if app := containedConstruct(ctor, &ctx); app != nil {
		user.application = app
		user.state = userApplication
		return true
	}

	user.state = userNone
	return false
}

func containedConstruct(ctor Constructor, ctx *SetupContext) (app Application) {
	defer func() {
		if recover() != nil {
			app = nil
		}
	}()
	return ctor(ctx)
}

// render is the per-buffer entry point. There is deliberately no
// containment boundary here: recovery would require work that is
// disallowed on the real-time thread, so Render not panicking is a
// precondition of correct use rather than something enforced at runtime.
func (b *Bela) render(user *userData, d *engine.BufferDescriptor) {
	if user.state != userApplication {
		return
	}
	user.renderCtx.raw = d
	user.renderCtx.eng = b.engine
	user.application.Render(&user.renderCtx)
}

// cleanup is the one-time teardown entry point. The application is
// released exactly once per successful setup; a panic during its cleanup
// is contained and discarded, as it cannot be propagated across this
// boundary.
func (b *Bela) cleanup(user *userData) {
	if user.state != userApplication {
		user.state = userNone
		return
	}

	app := user.application
	user.application = nil
	user.state = userNone

	if h, ok := app.(CleanupHandler); ok {
		containedCleanup(h)
	}
}

func containedCleanup(h CleanupHandler) {
	defer func() {
		_ = recover()
	}()
	h.Cleanup()
}

// installStopHandler requests an engine stop on SIGINT or SIGTERM. The
// handler only performs a channel receive and the engine's signal-safe
// RequestStop. It returns a function restoring the previous disposition.
func installStopHandler(eng engine.Engine) (restore func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			eng.RequestStop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
