package engine

// Descriptor flag bits, reported in BufferDescriptor.Flags.
const (
	// FlagInterleaved is set when audio and analog samples are interleaved
	// per frame rather than grouped per channel.
	FlagInterleaved uint64 = 1 << iota

	// FlagAnalogOutputsPersist is set when analog output values persist
	// across frames until overwritten.
	FlagAnalogOutputsPersist

	// FlagDetectUnderruns is set when the engine logs buffer underruns.
	FlagDetectUnderruns
)

// BufferDescriptor is the per-invocation snapshot the engine hands to each
// lifecycle callback. The engine owns every field, including the backing
// arrays of the slices; they are valid only for the duration of the callback
// that received the descriptor and must not be retained.
//
// Slice lengths are authoritative: frames times channels for each signal
// class, as negotiated at Init. No further bounds information exists.
type BufferDescriptor struct {
	// AudioIn holds AudioFrames * AudioInChannels input samples.
	AudioIn []float32
	// AudioOut holds AudioFrames * AudioOutChannels output samples.
	AudioOut []float32
	// AnalogIn holds AnalogFrames * AnalogInChannels input samples.
	AnalogIn []float32
	// AnalogOut holds AnalogFrames * AnalogOutChannels output samples.
	AnalogOut []float32
	// Digital holds one packed direction+value word per digital frame.
	Digital []uint32

	AudioFrames      int
	AudioInChannels  int
	AudioOutChannels int
	AudioSampleRate  float32

	AnalogFrames      int
	AnalogInChannels  int
	AnalogOutChannels int
	AnalogSampleRate  float32

	DigitalFrames     int
	DigitalChannels   int
	DigitalSampleRate float32

	// AudioFramesElapsed counts audio frames since the engine started.
	AudioFramesElapsed uint64

	// MultiplexerChannels is the number of multiplexer channels per analog
	// input, 0 when no multiplexer capelet is in use.
	MultiplexerChannels int

	// AudioExpanderEnabled is a bitmask of analog channels configured as
	// audio expander channels.
	AudioExpanderEnabled uint32

	Flags uint64
}
