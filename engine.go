// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package srcell

// maxPasses bounds the fixpoint loop in engine.eval. The longest settling
// sequence is the slow-path cascade 10 -> 11 -> 01 -> 00, i.e. three state
// changes plus one confirming pass.
const maxPasses = 4

// engine is the polarity-agnostic transition core: it owns the canonical
// two-register encoding (a, b) and applies the asynchronous-dominant
// transition rule. The only settled encodings are 00 and 10; 01 and 11 are
// transients that an evaluation passes through but never exposes.
//
// Engine output is a && !b. The polarity adapter in Cell translates
// user-facing SET/CLEAR/RST semantics to and from this canonical form.
type engine struct {
	a, b        bool
	resetActive bool
	targetA     bool // A register value forced while resetActive
}

// eval settles the engine at one logical instant. aEdge and bEdge are pulse
// markers: true exactly when the corresponding side saw a qualifying edge at
// this instant. Re-invoking with no pulses is idempotent.
//
// An edge clocks its register at most once per instant, so pulses take part
// in the first pass only; subsequent passes are driven purely by the derived
// asynchronous controls until the state stops changing.
func (e *engine) eval(aEdge, bEdge bool) {
	if e.resetActive {
		// Reset overrides edges unconditionally.
		e.a, e.b = e.targetA, false
		return
	}
	for i := 0; ; i++ {
		a, b := e.step(aEdge, bEdge)
		aEdge, bEdge = false, false
		if a == e.a && b == e.b {
			break
		}
		if i == maxPasses {
			panic("srcell: evaluation did not settle")
		}
		e.a, e.b = a, b
	}
}

// step computes one combinational pass from the current state. The derived
// set/clear controls depend on the current register pair; set dominates
// clear, and an edge pulse only matters when neither control is asserted.
func (e *engine) step(aEdge, bEdge bool) (a, b bool) {
	var (
		aSet = e.a && !e.b
		aClr = e.b
		bSet = e.a && e.b
		bClr = !e.a
	)
	// Exclusivity of a register's own controls holds for every reachable
	// state; a violation means the transition rule itself is broken.
	if aSet && aClr || bSet && bClr {
		panic("srcell: conflicting asynchronous controls")
	}
	return reg(e.a, aSet, aClr, aEdge), reg(e.b, bSet, bClr, bEdge)
}

// reg applies the per-register update rule: forced 1 on set, forced 0 on
// clear, clocked to 1 by its own edge, otherwise held.
func reg(cur, set, clr, edge bool) bool {
	switch {
	case set:
		return true
	case clr:
		return false
	case edge:
		return true
	}
	return cur
}

// output returns the canonical (pre-adapter) output value.
func (e *engine) output() bool {
	return e.a && !e.b
}

// settled reports whether the current encoding is one of the two stable
// ones. It holds after every eval; transients exist only inside the loop.
func (e *engine) settled() bool {
	return !e.b
}
