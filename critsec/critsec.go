// Package critsec brackets short, non-blocking code with interrupts
// disabled.
//
// Enter saves the interrupt mask and then disables interrupts; Exit writes
// the saved mask back. Because Exit restores rather than re-enables, a
// section entered with interrupts already off leaves them off.
//
// A Section is a single slot, not a counting lock: entering it again before
// the matching Exit is a programming error. Code that needs nesting must
// save and restore at the outermost boundary only.
//
//	g := sec.Enter()
//	defer g.Exit()
package critsec

import "boardcore/assert"

// MaskState is the saved interrupt-mask register (PRIMASK on Cortex-M).
type MaskState uintptr

// Controller exposes the interrupt-mask hardware. Each method is a single
// atomic instruction on the target.
type Controller interface {
	ReadMask() MaskState
	DisableIRQ()
	WriteMask(s MaskState)
}

// Section is a non-reentrant critical section over one Controller.
type Section struct {
	ctrl Controller
	// Only touched with interrupts masked.
	held  bool
	entry uint32 // bumped by every Enter
}

// NewSection binds a Section to ctrl.
func NewSection(ctrl Controller) *Section {
	assert.That(ctrl != nil, "critsec: nil controller")
	return &Section{ctrl: ctrl}
}

// Guard owns the mask saved by Enter. It must be released by exactly one
// Exit and must not outlive the scope that entered. Guards must not be
// copied: Exit on a copy whose original (or another copy) already exited
// trips the same check as a double Exit.
type Guard struct {
	sec   *Section
	entry uint32
	saved MaskState
}

// Enter saves the mask, disables interrupts and returns the guard that
// restores it. It never blocks and never fails.
func (s *Section) Enter() Guard {
	saved := s.ctrl.ReadMask()
	s.ctrl.DisableIRQ()
	if s.held {
		s.ctrl.WriteMask(saved)
		assert.Fail("critsec: nested Enter")
	}
	s.held = true
	s.entry++
	return Guard{sec: s, entry: s.entry, saved: saved}
}

// Exit restores the mask saved by Enter. The restore is the last action.
func (g *Guard) Exit() {
	s := g.sec
	if s == nil {
		assert.Fail("critsec: Exit without matching Enter")
		return
	}
	g.sec = nil
	if !s.held || s.entry != g.entry {
		assert.Fail("critsec: Exit with stale or copied guard")
		return
	}
	s.held = false
	s.ctrl.WriteMask(g.saved)
}

// Saved returns the mask captured at Enter.
func (g *Guard) Saved() MaskState { return g.saved }

// Do runs fn inside the section. The mask is restored on every exit path,
// including a panic in fn.
func (s *Section) Do(fn func()) {
	g := s.Enter()
	defer g.Exit()
	fn()
}

// Held reports whether the section is currently entered.
func (s *Section) Held() bool { return s.held }

// Default is the section over the target's own interrupt mask.
var Default = NewSection(platformController())

// Enter enters Default.
func Enter() Guard { return Default.Enter() }

// Do runs fn inside Default.
func Do(fn func()) { Default.Do(fn) }
