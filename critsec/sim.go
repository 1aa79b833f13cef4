package critsec

import "sync/atomic"

// Simulated PRIMASK values.
const (
	MaskEnabled  MaskState = 0 // interrupts delivered
	MaskDisabled MaskState = 1 // interrupts held off
)

// SimController models a single-core PRIMASK register. It backs Default on
// host builds and stands in for the hardware in tests.
type SimController struct {
	primask atomic.Uintptr
	writes  atomic.Uint32
}

// NewSimController returns a controller in the given initial state.
func NewSimController(initial MaskState) *SimController {
	c := &SimController{}
	c.primask.Store(uintptr(initial))
	return c
}

func (c *SimController) ReadMask() MaskState { return MaskState(c.primask.Load()) }

func (c *SimController) DisableIRQ() { c.primask.Store(uintptr(MaskDisabled)) }

func (c *SimController) WriteMask(s MaskState) {
	c.primask.Store(uintptr(s))
	c.writes.Add(1)
}

// Enabled reports whether interrupts would currently be delivered.
func (c *SimController) Enabled() bool { return c.ReadMask() == MaskEnabled }

// Writes counts WriteMask calls.
func (c *SimController) Writes() uint32 { return c.writes.Load() }
