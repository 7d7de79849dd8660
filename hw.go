package bela

import "github.com/l0calh05t/bela-go/engine"

// Hardware identifies a supported board.
type Hardware = engine.Hardware

const (
	NoHw          = engine.NoHw
	BelaBoard     = engine.Bela
	BelaMini      = engine.BelaMini
	Salt          = engine.Salt
	CtagFace      = engine.CtagFace
	CtagBeast     = engine.CtagBeast
	CtagFaceBela  = engine.CtagFaceBela
	CtagBeastBela = engine.CtagBeastBela
)
