/*
Package srcell models an asynchronous, glitch-free edge-triggered set/reset
memory cell (the kind of hardware primitive built from two cross-coupled
flip-flops) as a deterministic software state machine.

The model reproduces, instant for instant, the internal state transitions and
output of the physical circuit, including its asymmetric recovery path: one
transition direction settles in a single register update while the other
cascades through two transient encodings before settling, all within one
logical instant.

A Cell is driven by discrete events: SET and CLEAR edge notifications and
reset level changes. A Driver can sit in front of a Cell to turn raw wire
levels into qualifying edges according to the configured polarities, which is
what a host simulator or test bench usually wants:

	cell := srcell.New(srcell.Config{
		ResetLowOutput:  true,
		SetEdgeRising:   true,
		ClearEdgeRising: true,
		FastSet:         true,
	})
	cell.SignalSetEdge()   // Q -> true
	cell.SignalClearEdge() // Q -> false

The celltest package provides a comparison harness for validating other
implementations (RTL co-simulation shims, captured silicon traces) against
this reference model.
*/
package srcell
