// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package script

import (
	"fmt"
	"strings"
)

func bit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// Text renders the trace as a fixed-width table, one instant per row.
// The output is deterministic and suitable for golden-file comparison.
func (tr *Trace) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "trace %s\n", tr.Name)
	b.WriteString("inst set clr rst | q\n")
	for _, s := range tr.Samples {
		fmt.Fprintf(&b, "%4d   %c   %c   %c | %c\n",
			s.Instant, bit(s.Set), bit(s.Clear), bit(s.Rst), bit(s.Q))
	}
	return b.String()
}

// Wave renders each line of the trace as a horizontal waveform, the way a
// logic analyzer would show it. Handy for eyeballing a failing trace.
func (tr *Trace) Wave() string {
	rows := []struct {
		label string
		get   func(Sample) bool
	}{
		{"set", func(s Sample) bool { return s.Set }},
		{"clr", func(s Sample) bool { return s.Clear }},
		{"rst", func(s Sample) bool { return s.Rst }},
		{"q  ", func(s Sample) bool { return s.Q }},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.label)
		b.WriteByte(' ')
		prev := false
		for i, s := range tr.Samples {
			v := r.get(s)
			switch {
			case i > 0 && v != prev:
				if v {
					b.WriteByte('/')
				} else {
					b.WriteByte('\\')
				}
			case v:
				b.WriteByte('^')
			default:
				b.WriteByte('_')
			}
			prev = v
		}
		b.WriteByte('\n')
	}
	return b.String()
}
