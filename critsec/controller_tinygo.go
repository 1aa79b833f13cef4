//go:build tinygo && !cortexm

package critsec

import "runtime/interrupt"

// irqState falls back to the runtime's disable/restore pair where the mask
// register cannot be read on its own. ReadMask briefly masks to sample.
type irqState struct{}

func (irqState) ReadMask() MaskState {
	st := interrupt.Disable()
	interrupt.Restore(st)
	return MaskState(st)
}

func (irqState) DisableIRQ() { interrupt.Disable() }

func (irqState) WriteMask(s MaskState) { interrupt.Restore(interrupt.State(s)) }

func platformController() Controller { return irqState{} }
