//go:build tinygo && cortexm

package critsec

import "device/arm"

// primask drives the Cortex-M PRIMASK register directly.
type primask struct{}

func (primask) ReadMask() MaskState {
	return MaskState(arm.AsmFull("mrs {}, PRIMASK", nil))
}

func (primask) DisableIRQ() { arm.Asm("cpsid i") }

func (primask) WriteMask(s MaskState) {
	arm.AsmFull("msr PRIMASK, {mask}", map[string]interface{}{
		"mask": uintptr(s),
	})
}

func platformController() Controller { return primask{} }
