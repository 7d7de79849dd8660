package engine

// Hardware identifies the board the engine should drive, as opposed to the
// hardware it detects.
type Hardware int

const (
	NoHw Hardware = iota
	Bela
	BelaMini
	Salt
	CtagFace
	CtagBeast
	CtagFaceBela
	CtagBeastBela
)

func (h Hardware) String() string {
	switch h {
	case NoHw:
		return "none"
	case Bela:
		return "Bela"
	case BelaMini:
		return "BelaMini"
	case Salt:
		return "Salt"
	case CtagFace:
		return "CtagFace"
	case CtagBeast:
		return "CtagBeast"
	case CtagFaceBela:
		return "CtagFaceBela"
	case CtagBeastBela:
		return "CtagBeastBela"
	default:
		return "unknown"
	}
}

// Settings is the initialization-settings object handed to Engine.Init.
// Field semantics mirror the native init-settings struct; negative pin
// numbers disable the corresponding feature.
type Settings struct {
	// PeriodSize is the number of analog frames per period. The audio frame
	// count per period depends on the relative sample rates; by default audio
	// runs at twice the analog rate and so has twice the period size.
	PeriodSize int

	UseAnalog  bool
	UseDigital bool

	AnalogInChannels  int
	AnalogOutChannels int
	DigitalChannels   int

	BeginMuted     bool
	DACLevel       float32
	ADCLevel       float32
	PGAGain        [2]float32
	HeadphoneLevel float32

	MuxChannels          int
	AudioExpanderInputs  int
	AudioExpanderOutputs int

	PRUNumber   int
	PRUFilename string

	DetectUnderruns     bool
	Verbose             bool
	EnableLED           bool
	StopButtonPin       int
	HighPerformanceMode bool
	Interleave          bool
	AnalogOutputsPersist bool
	UniformSampleRate   bool

	AudioThreadStackSize     int
	AuxiliaryTaskStackSize   int

	AmpMutePin int

	Board Hardware
}

// DefaultSettings returns the engine's default configuration, matching the
// native defaults.
func DefaultSettings() *Settings {
	return &Settings{
		PeriodSize:             16,
		UseAnalog:              true,
		UseDigital:             true,
		AnalogInChannels:       8,
		AnalogOutChannels:      8,
		DigitalChannels:        16,
		DACLevel:               0,
		ADCLevel:               0,
		PGAGain:                [2]float32{16, 16},
		HeadphoneLevel:         -6,
		PRUNumber:              0,
		DetectUnderruns:        true,
		EnableLED:              true,
		StopButtonPin:          -1,
		Interleave:             true,
		AnalogOutputsPersist:   true,
		AudioThreadStackSize:   1 << 17,
		AuxiliaryTaskStackSize: 1 << 17,
		AmpMutePin:             -1,
		Board:                  NoHw,
	}
}
