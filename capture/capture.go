package capture

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/fxamacker/cbor/v2"
)

// Record is one captured buffer as written to the CBOR stream.
type Record struct {
	Buffer   uint64    `cbor:"buffer"`
	Elapsed  uint64    `cbor:"elapsed"`
	Channels int       `cbor:"channels"`
	Samples  []float32 `cbor:"samples"`
}

type slot struct {
	elapsed uint64
	samples []float32
	used    int
}

// Recorder moves sample buffers from the real-time render thread to a CBOR
// stream without allocating or blocking on the capturing side.
//
// Capture runs on the render thread and copies into a preallocated ring;
// Drain runs on an auxiliary task and encodes pending slots to the writer.
// The ring is single-producer single-consumer: one render thread capturing,
// one auxiliary task draining. When the ring is full, Capture drops the
// buffer and counts it rather than block.
type Recorder struct {
	enc      *cbor.Encoder
	slots    []slot
	capacity uint64

	head    atomic.Uint64 // written by Capture
	tail    atomic.Uint64 // written by Drain
	dropped atomic.Uint64
	buffers uint64 // consumer-side record counter

	channels int

	errMu sync.Mutex
	err   error
}

// NewRecorder creates a recorder writing CBOR records to w. Each of the
// slots preallocates room for maxFrames*channels samples; all allocation
// happens here, during setup.
func NewRecorder(w io.Writer, channels, maxFrames, slots int) (*Recorder, error) {
	if channels <= 0 || maxFrames <= 0 {
		return nil, fmt.Errorf("capture: invalid dimensions %dch x %d frames", channels, maxFrames)
	}
	if slots <= 0 {
		return nil, fmt.Errorf("capture: need at least one slot")
	}

	r := &Recorder{
		enc:      cbor.NewEncoder(w),
		slots:    make([]slot, slots),
		capacity: uint64(slots),
		channels: channels,
	}
	for i := range r.slots {
		r.slots[i].samples = make([]float32, maxFrames*channels)
	}
	return r, nil
}

// Capture copies samples into the ring. It neither allocates nor blocks
// and is safe to call from the render thread every buffer. It reports
// false when the ring was full or the samples exceed the preallocated
// slot size; the buffer is then dropped and counted.
func (r *Recorder) Capture(samples []float32, elapsed uint64) bool {
	head := r.head.Load()
	if head-r.tail.Load() == r.capacity {
		r.dropped.Add(1)
		return false
	}

	s := &r.slots[head%r.capacity]
	if len(samples) > len(s.samples) {
		r.dropped.Add(1)
		return false
	}
	s.used = copy(s.samples[:len(samples)], samples)
	s.elapsed = elapsed
	r.head.Store(head + 1)
	return true
}

// Drain encodes all pending slots to the CBOR stream. It is the body of
// the recorder's auxiliary task and must only run there (or after the
// engine has stopped). Encoding errors are sticky; see Err.
func (r *Recorder) Drain() {
	head := r.head.Load()
	for tail := r.tail.Load(); tail != head; tail++ {
		s := &r.slots[tail%r.capacity]
		rec := Record{
			Buffer:   r.buffers,
			Elapsed:  s.elapsed,
			Channels: r.channels,
			Samples:  s.samples[:s.used],
		}
		r.buffers++
		if err := r.enc.Encode(rec); err != nil {
			r.setErr(err)
		}
		r.tail.Store(tail + 1)
	}
}

// Dropped returns the number of buffers dropped because the ring was full.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// Err returns the first encoding error encountered by Drain, if any.
func (r *Recorder) Err() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	return r.err
}

func (r *Recorder) setErr(err error) {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	if r.err == nil {
		r.err = err
	}
}
