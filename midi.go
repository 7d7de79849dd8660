package bela

import (
	"fmt"

	"github.com/l0calh05t/bela-go/engine"
	"github.com/l0calh05t/bela-go/errors"
)

// Midi reads messages sequentially from an engine MIDI port.
type Midi struct {
	port engine.MidiPort
}

// OpenMidi opens the named MIDI port, e.g. "hw:1,0,0". Ports can only be
// opened during setup; reading is safe from the render thread. Fails with
// port_open_failed when the engine has no MIDI support or the port does
// not exist.
func (c *SetupContext) OpenMidi(port string) (*Midi, error) {
	opener, ok := c.eng.(engine.MidiOpener)
	if !ok {
		return nil, errors.PortOpenFailed(port, fmt.Errorf("engine has no MIDI support"))
	}
	p, err := opener.OpenMidi(port)
	if err != nil {
		return nil, errors.PortOpenFailed(port, err)
	}
	return &Midi{port: p}, nil
}

// GetMessage copies the next pending message into buf and returns the
// filled prefix, or nil when no message is pending. Messages are at most
// three bytes.
func (m *Midi) GetMessage(buf *[3]byte) []byte {
	if m.port.Available() <= 0 {
		return nil
	}
	n := m.port.Read(buf[:])
	if n <= 0 {
		return nil
	}
	return buf[:n]
}

// Close releases the port.
func (m *Midi) Close() error {
	return m.port.Close()
}
