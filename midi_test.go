package bela

import (
	stderrors "errors"
	"testing"

	"github.com/l0calh05t/bela-go/engine/sim"
	"github.com/l0calh05t/bela-go/errors"
)

func TestOpenMidi_NoEngineSupport(t *testing.T) {
	eng := newFakeEngine(4, 2)
	setup := eng.setupCtx()

	_, err := setup.OpenMidi("hw:1,0,0")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindPortOpenFailed}) {
		t.Fatalf("expected port_open_failed, got %v", err)
	}
}

func TestOpenMidi_UnknownPort(t *testing.T) {
	eng := sim.New()
	setup := &SetupContext{introspection{raw: nil, eng: eng}}

	_, err := setup.OpenMidi("hw:9,9,9")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindPortOpenFailed}) {
		t.Fatalf("expected port_open_failed, got %v", err)
	}
}

func TestMidi_GetMessage(t *testing.T) {
	port := sim.NewMessagePort()
	eng := sim.New(sim.WithMidiPort("hw:1,0,0", port))
	setup := &SetupContext{introspection{raw: nil, eng: eng}}

	midi, err := setup.OpenMidi("hw:1,0,0")
	if err != nil {
		t.Fatalf("OpenMidi error: %v", err)
	}
	defer midi.Close()

	var buf [3]byte
	if msg := midi.GetMessage(&buf); msg != nil {
		t.Fatalf("expected no pending message, got %v", msg)
	}

	port.Push([]byte{0x90, 0x40, 0x7f}) // note on
	port.Push([]byte{0xc0, 0x05})       // program change, two bytes

	msg := midi.GetMessage(&buf)
	if len(msg) != 3 || msg[0] != 0x90 || msg[1] != 0x40 || msg[2] != 0x7f {
		t.Errorf("first message = %v, want [90 40 7f]", msg)
	}

	msg = midi.GetMessage(&buf)
	if len(msg) != 2 || msg[0] != 0xc0 || msg[1] != 0x05 {
		t.Errorf("second message = %v, want [c0 05]", msg)
	}

	if msg := midi.GetMessage(&buf); msg != nil {
		t.Errorf("expected drained queue, got %v", msg)
	}
}
