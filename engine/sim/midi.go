package sim

import (
	"fmt"
	"sync"

	"github.com/l0calh05t/bela-go/engine"
)

// WithMidiPort attaches a MIDI port to the engine under the given name,
// e.g. "hw:1,0,0". Ports are resolved by OpenMidi.
func WithMidiPort(name string, port engine.MidiPort) Option {
	return func(e *Engine) {
		if e.midiPorts == nil {
			e.midiPorts = make(map[string]engine.MidiPort)
		}
		e.midiPorts[name] = port
	}
}

// OpenMidi resolves a port attached via WithMidiPort.
func (e *Engine) OpenMidi(port string) (engine.MidiPort, error) {
	if p, ok := e.midiPorts[port]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no such port %q", port)
}

// MessagePort is an in-memory MIDI port fed by Push. It stands in for a
// hardware port in tests and examples.
type MessagePort struct {
	mu     sync.Mutex
	queue  [][]byte
	closed bool
}

// NewMessagePort creates an empty in-memory port.
func NewMessagePort() *MessagePort {
	return &MessagePort{}
}

// Push queues one incoming message. Messages longer than three bytes are
// truncated to match the wire contract.
func (p *MessagePort) Push(msg []byte) {
	if len(msg) > 3 {
		msg = msg[:3]
	}
	m := make([]byte, len(msg))
	copy(m, msg)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.queue = append(p.queue, m)
	}
}

// Available reports the number of queued messages.
func (p *MessagePort) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Read copies the next message into buf and returns its length, 0 when the
// queue is empty.
func (p *MessagePort) Read(buf []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return 0
	}
	msg := p.queue[0]
	p.queue = p.queue[1:]
	return copy(buf, msg)
}

// Close discards queued messages and rejects further pushes.
func (p *MessagePort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.queue = nil
	return nil
}
