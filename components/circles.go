// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package components

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/lock"
)

const (
	filledCircle      = "●"
	placeholderCircle = "○"
)

// Circles shows the preview row of a pin pad.
type Circles struct {
	*tview.TextView
	color tcell.Color
}

func NewCircles(color tcell.Color) *Circles {
	c := &Circles{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextAlign(tview.AlignCenter),
		color: color,
	}
	return c
}

func (c *Circles) Update(v lock.View) {
	c.SetText(CirclesText(v, c.color))
}

// CirclesText renders the filled circles followed by the placeholders they
// do not cover.
func CirclesText(v lock.View, color tcell.Color) string {
	var b strings.Builder

	if v.Filled > 0 {
		fmt.Fprintf(&b, "[%s:-:b]%s[-:-:-]", color, strings.TrimSpace(strings.Repeat(filledCircle+" ", v.Filled)))
	}
	if rest := v.Placeholders - v.Filled; rest > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "[gray:-:-]%s[-:-:-]", strings.TrimSpace(strings.Repeat(placeholderCircle+" ", rest)))
	}
	return b.String()
}
