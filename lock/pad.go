// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package lock

import (
	"strconv"
	"strings"
)

// Keys is the number of digit buttons on the pad.
const Keys = 10

// Layout maps a pad position to the digit it enters.
type Layout [Keys]int

// DefaultLayout is the unshuffled pad: position i enters digit i.
func DefaultLayout() Layout {
	var l Layout
	for i := range l {
		l[i] = i
	}
	return l
}

// Position returns the pad position entering digit, or -1.
func (l Layout) Position(digit int) int {
	for pos, d := range l {
		if d == digit {
			return pos
		}
	}
	return -1
}

// View is a read-only snapshot of a controller for renderers.
type View struct {
	Description string
	// Length is the number of digits entered so far.
	Length int
	// Filled is the number of preview circles drawn.
	Filled int
	// Placeholders is the number of hint circles; the first Filled of them
	// are hidden behind the preview circles.
	Placeholders   int
	ConfirmEnabled bool
	Layout         Layout
	Finished       bool
}

type pad struct {
	min, max    int
	preview     bool
	placeholder bool
	layout      Layout

	pin         strings.Builder
	circles     int
	confirm     bool
	description string
}

func (p *pad) length() int {
	return p.pin.Len()
}

func (p *pad) value() string {
	return p.pin.String()
}

// press enters the digit at pad position pos. It reports whether the digit
// was accepted.
func (p *pad) press(pos int) bool {
	if pos < 0 || pos >= Keys || p.length() >= p.max {
		return false
	}
	if p.preview {
		p.circles++
	}
	p.pin.WriteString(strconv.Itoa(p.layout[pos]))
	if p.length() >= p.min {
		p.confirm = true
	}
	return true
}

func (p *pad) del() bool {
	n := p.length()
	if n == 0 {
		return false
	}
	if p.preview && p.circles > 0 {
		p.circles--
	}
	rest := p.value()[:n-1]
	p.pin.Reset()
	p.pin.WriteString(rest)
	if p.length() < p.min {
		p.confirm = false
	}
	return true
}

func (p *pad) clear() bool {
	if p.length() == 0 {
		return false
	}
	p.reset()
	return true
}

func (p *pad) reset() {
	p.pin.Reset()
	p.circles = 0
	p.confirm = false
}

func (p *pad) view() View {
	v := View{
		Description:    p.description,
		Length:         p.length(),
		Filled:         p.circles,
		ConfirmEnabled: p.confirm,
		Layout:         p.layout,
	}
	if p.placeholder {
		v.Placeholders = p.max
	}
	return v
}
