package bela

import (
	"github.com/l0calh05t/bela-go/engine"
)

// introspection is the capability set available in every lifecycle phase:
// the negotiated dimensions, sample rates, counters, and flags of the
// engine's per-invocation buffer descriptor.
//
// It is embedded in SetupContext and RenderContext; the phase-restricted
// capabilities live on those types directly, so misuse is a compile error
// rather than a runtime check.
type introspection struct {
	raw *engine.BufferDescriptor
	eng engine.Engine
}

// AudioFrames returns the number of audio frames per buffer.
func (c *introspection) AudioFrames() int { return c.raw.AudioFrames }

// AudioInChannels returns the number of audio input channels.
func (c *introspection) AudioInChannels() int { return c.raw.AudioInChannels }

// AudioOutChannels returns the number of audio output channels.
func (c *introspection) AudioOutChannels() int { return c.raw.AudioOutChannels }

// AudioSampleRate returns the audio sample rate in Hz.
func (c *introspection) AudioSampleRate() float32 { return c.raw.AudioSampleRate }

// AnalogFrames returns the number of analog frames per buffer, 0 when
// analog I/O is disabled.
func (c *introspection) AnalogFrames() int { return c.raw.AnalogFrames }

// AnalogInChannels returns the number of analog input channels.
func (c *introspection) AnalogInChannels() int { return c.raw.AnalogInChannels }

// AnalogOutChannels returns the number of analog output channels.
func (c *introspection) AnalogOutChannels() int { return c.raw.AnalogOutChannels }

// AnalogSampleRate returns the analog sample rate in Hz.
func (c *introspection) AnalogSampleRate() float32 { return c.raw.AnalogSampleRate }

// DigitalFrames returns the number of digital frames per buffer, 0 when
// digital I/O is disabled.
func (c *introspection) DigitalFrames() int { return c.raw.DigitalFrames }

// DigitalChannels returns the number of digital channels.
func (c *introspection) DigitalChannels() int { return c.raw.DigitalChannels }

// DigitalSampleRate returns the digital sample rate in Hz.
func (c *introspection) DigitalSampleRate() float32 { return c.raw.DigitalSampleRate }

// AudioFramesElapsed returns the number of audio frames processed since the
// engine started.
func (c *introspection) AudioFramesElapsed() uint64 { return c.raw.AudioFramesElapsed }

// MultiplexerChannels returns the number of multiplexer channels per analog
// input, 0 without a multiplexer capelet.
func (c *introspection) MultiplexerChannels() int { return c.raw.MultiplexerChannels }

// AudioExpanderEnabled returns the bitmask of analog channels configured as
// audio expander channels.
func (c *introspection) AudioExpanderEnabled() uint32 { return c.raw.AudioExpanderEnabled }

// Flags returns the engine's descriptor flag bits (see the engine package
// Flag constants).
func (c *introspection) Flags() uint64 { return c.raw.Flags }

// Interleaved reports whether samples are interleaved per frame.
func (c *introspection) Interleaved() bool {
	return c.raw.Flags&engine.FlagInterleaved != 0
}

// SetupContext is the phase-tagged handle passed to the application
// constructor. In addition to introspection it can create auxiliary tasks
// and open MIDI ports, both of which may allocate and are therefore
// unavailable on the render path.
//
// A SetupContext is valid only for the duration of the constructor call
// that received it and must not be retained.
type SetupContext struct {
	introspection
}

// RenderContext is the phase-tagged handle passed to Render once per
// buffer. It exposes the buffer views, digital pin I/O, and auxiliary task
// scheduling; auxiliary task creation is deliberately absent.
//
// A RenderContext is valid only for the duration of the render call that
// received it and must not be retained: the engine owns the memory it
// addresses and reuses it on the next buffer.
type RenderContext struct {
	introspection
}

// AudioIn returns the audio input samples for this buffer, one slice of
// AudioFrames x AudioInChannels samples over the engine-owned region.
// The view is derived fresh on every call and is never cached.
func (c *RenderContext) AudioIn() []float32 {
	return c.raw.AudioIn[:c.raw.AudioFrames*c.raw.AudioInChannels]
}

// AudioOut returns the audio output samples for this buffer, writable,
// AudioFrames x AudioOutChannels samples over the engine-owned region.
func (c *RenderContext) AudioOut() []float32 {
	return c.raw.AudioOut[:c.raw.AudioFrames*c.raw.AudioOutChannels]
}

// AnalogIn returns the analog input samples for this buffer,
// AnalogFrames x AnalogInChannels samples. Empty when analog is disabled.
func (c *RenderContext) AnalogIn() []float32 {
	return c.raw.AnalogIn[:c.raw.AnalogFrames*c.raw.AnalogInChannels]
}

// AnalogOut returns the analog output samples for this buffer, writable,
// AnalogFrames x AnalogOutChannels samples. Empty when analog is disabled.
func (c *RenderContext) AnalogOut() []float32 {
	return c.raw.AnalogOut[:c.raw.AnalogFrames*c.raw.AnalogOutChannels]
}

// Digital returns the packed per-frame digital words for this buffer.
// Prefer the typed pin accessors (DigitalRead, DigitalWrite, PinMode) over
// manipulating the words directly.
func (c *RenderContext) Digital() []uint32 {
	return c.raw.Digital[:c.raw.DigitalFrames]
}
