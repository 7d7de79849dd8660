package bela

// PinDirection configures a digital channel as input or output.
type PinDirection uint32

const (
	// Output drives the pin from the value bit.
	Output PinDirection = iota
	// Input samples the pin into the value bit.
	Input
)

// Digital wire layout: one 32-bit word per frame. Bits [0,channels) hold
// the pin directions, bits [16,16+channels) the pin values. The direction
// polarity follows the engine's GPIO output-enable convention: a set bit
// means input.
const digitalValueShift = 16

func directionBit(dir PinDirection) uint32 {
	if dir == Input {
		return 1
	}
	return 0
}

// PinMode sets the direction of a digital channel from frame through the
// end of the current buffer. The setting does not carry into later buffers.
func (c *RenderContext) PinMode(frame, channel int, dir PinDirection) {
	digital := c.Digital()
	mask := uint32(1) << channel
	if dir == Input {
		for f := frame; f < len(digital); f++ {
			digital[f] |= mask
		}
	} else {
		for f := frame; f < len(digital); f++ {
			digital[f] &^= mask
		}
	}
}

// PinModeOnce sets the direction of a digital channel for a single frame.
func (c *RenderContext) PinModeOnce(frame, channel int, dir PinDirection) {
	digital := c.Digital()
	mask := uint32(1) << channel
	digital[frame] = digital[frame]&^mask | directionBit(dir)<<channel
}

// DigitalWrite sets the value of a digital channel from frame through the
// end of the current buffer. The value does not carry into later buffers.
func (c *RenderContext) DigitalWrite(frame, channel int, value bool) {
	digital := c.Digital()
	mask := uint32(1) << (channel + digitalValueShift)
	if value {
		for f := frame; f < len(digital); f++ {
			digital[f] |= mask
		}
	} else {
		for f := frame; f < len(digital); f++ {
			digital[f] &^= mask
		}
	}
}

// DigitalWriteOnce sets the value of a digital channel for a single frame.
func (c *RenderContext) DigitalWriteOnce(frame, channel int, value bool) {
	digital := c.Digital()
	mask := uint32(1) << (channel + digitalValueShift)
	if value {
		digital[frame] |= mask
	} else {
		digital[frame] &^= mask
	}
}

// DigitalRead returns the value bit of a digital channel at frame.
func (c *RenderContext) DigitalRead(frame, channel int) bool {
	return c.Digital()[frame]&(1<<(channel+digitalValueShift)) != 0
}
