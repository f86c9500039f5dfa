// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package srcell

// A Driver turns raw wire levels into the discrete events a Cell consumes.
// It tracks the last seen level of the SET, CLEAR and RST lines and, once
// per qualifying transition, fires the matching edge on the cell. Edges are
// events, not levels: a held level never re-fires.
//
// This is the host-side plumbing that a physical circuit gets for free from
// its edge-sensitive inputs; in software it is explicit discrete event
// dispatch.
type Driver struct {
	cell            *Cell
	set, clear, rst bool
}

// Lines carries the raw levels presented to a Driver at one instant. A nil
// field holds the line at its previous level.
type Lines struct {
	Set   *bool
	Clear *bool
	Rst   *bool
}

// NewDriver returns a Driver in front of cell. Initial line levels are the
// inactive ones: RST at its deasserted level and SET/CLEAR at the idle side
// of their configured edge polarity, so the first qualifying transition on
// any line fires.
func NewDriver(cell *Cell) *Driver {
	cfg := cell.Config()
	return &Driver{
		cell:  cell,
		set:   !cfg.SetEdgeRising,
		clear: !cfg.ClearEdgeRising,
		rst:   !cfg.ResetActiveHigh,
	}
}

// Cell returns the driven cell.
func (d *Driver) Cell() *Cell { return d.cell }

// Step presents one logical instant of raw levels on all three lines.
// The reset level is applied first so that an edge arriving together with a
// reset assertion is overridden, and one arriving together with the
// deassertion takes effect.
func (d *Driver) Step(set, clear, rst bool) {
	cfg := d.cell.Config()
	if rst != d.rst {
		d.rst = rst
		d.cell.SetResetLevel(rst)
	}
	if set != d.set {
		d.set = set
		if set == cfg.SetEdgeRising {
			d.cell.SignalSetEdge()
		}
	}
	if clear != d.clear {
		d.clear = clear
		if clear == cfg.ClearEdgeRising {
			d.cell.SignalClearEdge()
		}
	}
}

// StepLines is Step with per-line hold semantics: nil fields keep their
// previous level. It returns the levels actually applied.
func (d *Driver) StepLines(l Lines) (set, clear, rst bool) {
	set, clear, rst = d.set, d.clear, d.rst
	if l.Set != nil {
		set = *l.Set
	}
	if l.Clear != nil {
		clear = *l.Clear
	}
	if l.Rst != nil {
		rst = *l.Rst
	}
	d.Step(set, clear, rst)
	return set, clear, rst
}

// Levels returns the current raw levels of the SET, CLEAR and RST lines.
func (d *Driver) Levels() (set, clear, rst bool) {
	return d.set, d.clear, d.rst
}
