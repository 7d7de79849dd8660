package bela

import "testing"

func TestRenderContext_ViewDimensions(t *testing.T) {
	eng := newFakeEngine(16, 2).withDigital(16, 16)
	eng.desc.AnalogFrames = 8
	eng.desc.AnalogInChannels = 8
	eng.desc.AnalogOutChannels = 4
	eng.desc.AnalogIn = make([]float32, 8*8)
	eng.desc.AnalogOut = make([]float32, 8*4)
	ctx := eng.renderCtx()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"audio in", len(ctx.AudioIn()), 16 * 2},
		{"audio out", len(ctx.AudioOut()), 16 * 2},
		{"analog in", len(ctx.AnalogIn()), 8 * 8},
		{"analog out", len(ctx.AnalogOut()), 8 * 4},
		{"digital", len(ctx.Digital()), 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("len = %d, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestRenderContext_ViewsAreZeroCopy(t *testing.T) {
	eng := newFakeEngine(4, 2)
	ctx := eng.renderCtx()

	ctx.AudioOut()[5] = 0.25
	if eng.desc.AudioOut[5] != 0.25 {
		t.Error("write through the view did not reach the engine buffer")
	}

	eng.desc.AudioIn[3] = -1
	if ctx.AudioIn()[3] != -1 {
		t.Error("engine buffer write not visible through the view")
	}
}

func TestIntrospection_Passthrough(t *testing.T) {
	eng := newFakeEngine(16, 2).withDigital(16, 16)
	eng.desc.AnalogFrames = 8
	eng.desc.AnalogInChannels = 8
	eng.desc.AnalogOutChannels = 8
	eng.desc.AnalogSampleRate = 22050
	eng.desc.AudioFramesElapsed = 4096
	eng.desc.MultiplexerChannels = 4

	// Both phase tags expose the same introspection set.
	for _, c := range []interface {
		AudioFrames() int
		AnalogSampleRate() float32
		DigitalChannels() int
		AudioFramesElapsed() uint64
		MultiplexerChannels() int
	}{eng.setupCtx(), eng.renderCtx()} {
		if got := c.AudioFrames(); got != 16 {
			t.Errorf("AudioFrames = %d, want 16", got)
		}
		if got := c.AnalogSampleRate(); got != 22050 {
			t.Errorf("AnalogSampleRate = %v, want 22050", got)
		}
		if got := c.DigitalChannels(); got != 16 {
			t.Errorf("DigitalChannels = %d, want 16", got)
		}
		if got := c.AudioFramesElapsed(); got != 4096 {
			t.Errorf("AudioFramesElapsed = %d, want 4096", got)
		}
		if got := c.MultiplexerChannels(); got != 4 {
			t.Errorf("MultiplexerChannels = %d, want 4", got)
		}
	}
}
