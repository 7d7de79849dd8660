// Package bela runs user applications inside a hard-real-time audio and
// digital I/O engine, driving their lifecycle through the engine's fixed
// setup/render/cleanup callback contract.
//
// # Quick Start
//
//	type Saw struct{ phase int }
//
//	func (s *Saw) Render(ctx *bela.RenderContext) {
//	    channels := ctx.AudioOutChannels()
//	    out := ctx.AudioOut()
//	    for f := 0; f < ctx.AudioFrames(); f++ {
//	        sample := 0.5 * (2*(float32(s.phase)*110/44100) - 1)
//	        s.phase++
//	        if float32(s.phase) > 44100/110 {
//	            s.phase = 0
//	        }
//	        for c := 0; c < channels; c++ {
//	            out[f*channels+c] = sample
//	        }
//	    }
//	}
//
//	func main() {
//	    err := bela.New(func(_ *bela.SetupContext) bela.Application {
//	        return &Saw{}
//	    }).Run()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Lifecycle
//
// The engine invokes three entry points from its elevated-priority audio
// thread: setup once before the first buffer, render once per buffer, and
// cleanup once after the engine stops. The constructor passed to New runs
// inside setup with the negotiated hardware configuration; returning nil
// declines to start, which is not an error. Run installs SIGINT/SIGTERM
// handlers, starts the engine, and blocks until a stop is requested.
//
// # Phase-Tagged Contexts
//
// Each entry point receives a context tagged with its phase. The two
// context types expose different method sets, so phase violations are
// compile errors rather than runtime checks:
//
//	SetupContext   introspection + CreateAuxiliaryTask + OpenMidi
//	RenderContext  introspection + buffer views + digital pin I/O
//	               + ScheduleAuxiliaryTask
//
// Creating an auxiliary task may allocate and is therefore impossible to
// express on a RenderContext; touching render buffers before they exist is
// impossible to express on a SetupContext. Contexts are valid only for the
// call that produced them and must never be retained: the memory they
// address belongs to the engine and is reused on the next buffer.
//
// # Real-Time Constraints
//
// Render runs in the engine's primary mode; everything the operating
// system does runs at lower priority. Inside Render you must not:
//
//   - allocate memory
//   - block on locks, channels, or I/O
//   - log or print
//   - panic
//
// There is intentionally no containment boundary around Render: recovery
// would itself require operations that are disallowed on the real-time
// thread. Work that needs the operating system belongs in an auxiliary
// task, created during setup and scheduled from Render.
//
// # Package Layout
//
//	bela          lifecycle controller, contexts, digital pin codec
//	├── engine    the fixed engine callback contract and settings
//	├── engine/sim a software engine for development and tests
//	├── capture   auxiliary-task frame recorder (CBOR)
//	├── errors    the typed error taxonomy
//	└── cmd/bela  CLI runner with a live monitor TUI
package bela
