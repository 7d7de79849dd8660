package bela

import (
	"github.com/l0calh05t/bela-go/engine"
)

// fakeEngine is a scriptable engine that runs the whole callback lifecycle
// synchronously inside Start, so tests are deterministic.
type fakeEngine struct {
	desc engine.BufferDescriptor
	cb   engine.Callbacks

	initStatus     int
	startStatus    int
	scheduleStatus int
	failCreate     bool

	// renderBuffers is how many render invocations Start performs after a
	// successful setup before the engine reports a stop.
	renderBuffers int

	// abortAfterRender simulates an abnormal engine-reported stop right
	// after the first render invocation.
	abortAfterRender bool

	initCalls    int
	startCalls   int
	stopCalls    int
	cleanupCalls int
	setupDone    bool
	stopReq      bool

	tasks     []func()
	scheduled []engine.AuxiliaryTask

	// captured holds a copy of AudioOut after every render invocation.
	captured [][]float32
}

func newFakeEngine(frames, channels int) *fakeEngine {
	return &fakeEngine{
		desc: engine.BufferDescriptor{
			AudioFrames:      frames,
			AudioInChannels:  channels,
			AudioOutChannels: channels,
			AudioSampleRate:  44100,
			AudioIn:          make([]float32, frames*channels),
			AudioOut:         make([]float32, frames*channels),
		},
		renderBuffers: 1,
	}
}

func (e *fakeEngine) withDigital(frames, channels int) *fakeEngine {
	e.desc.DigitalFrames = frames
	e.desc.DigitalChannels = channels
	e.desc.DigitalSampleRate = 44100
	e.desc.Digital = make([]uint32, frames)
	return e
}

func (e *fakeEngine) Init(settings *engine.Settings, cb engine.Callbacks) int {
	e.initCalls++
	if e.initStatus != 0 {
		return e.initStatus
	}
	e.cb = cb
	return 0
}

func (e *fakeEngine) Start() int {
	e.startCalls++
	if e.startStatus != 0 {
		return e.startStatus
	}

	e.setupDone = true
	if !e.cb.Setup(&e.desc) {
		e.stopReq = true
		return 0
	}

	for i := 0; i < e.renderBuffers; i++ {
		clear(e.desc.AudioOut)
		e.cb.Render(&e.desc)
		out := make([]float32, len(e.desc.AudioOut))
		copy(out, e.desc.AudioOut)
		e.captured = append(e.captured, out)
		e.desc.AudioFramesElapsed += uint64(e.desc.AudioFrames)

		if e.abortAfterRender {
			break
		}
	}
	e.stopReq = true
	return 0
}

func (e *fakeEngine) StopRequested() bool { return e.stopReq }
func (e *fakeEngine) RequestStop()        { e.stopReq = true }

func (e *fakeEngine) Stop() {
	e.stopCalls++
	if e.setupDone && e.cb.Cleanup != nil {
		e.cb.Cleanup(&e.desc)
	}
}

func (e *fakeEngine) Cleanup() { e.cleanupCalls++ }

func (e *fakeEngine) CreateAuxiliaryTask(fn func(), priority int, name string) engine.AuxiliaryTask {
	if e.failCreate || fn == nil || name == "" {
		return 0
	}
	e.tasks = append(e.tasks, fn)
	return engine.AuxiliaryTask(len(e.tasks))
}

func (e *fakeEngine) ScheduleAuxiliaryTask(t engine.AuxiliaryTask) int {
	if e.scheduleStatus != 0 {
		return e.scheduleStatus
	}
	if !t.Valid() || int(t) > len(e.tasks) {
		return 1
	}
	e.scheduled = append(e.scheduled, t)
	return 0
}

// setupCtx and renderCtx build phase-tagged contexts over the fake's
// descriptor for tests that exercise context capabilities directly.
func (e *fakeEngine) setupCtx() *SetupContext {
	return &SetupContext{introspection{raw: &e.desc, eng: e}}
}

func (e *fakeEngine) renderCtx() *RenderContext {
	return &RenderContext{introspection{raw: &e.desc, eng: e}}
}
