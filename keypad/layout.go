package keypad

import "fmt"

// gapGlyph marks the button-less cell in a layout's row strings.
const gapGlyph = '.'

// Layout is an immutable keypad: a rectangular grid of buttons with exactly
// one missing cell (the gap). It is safe for concurrent use once built.
type Layout struct {
	name    string
	width   int
	height  int
	gap     Pos
	pos     map[Button]Pos
	at      map[Pos]Button
	buttons []Button // row-major order, for deterministic iteration
}

// Numeric is the door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	· 0 A
var Numeric = mustLayout("numeric", []string{
	"789",
	"456",
	"123",
	".0A",
})

// Directional is the robot-arm keypad:
//
//	· ^ A
//	< v >
var Directional = mustLayout("directional", []string{
	".^A",
	"<v>",
})

// mustLayout builds a Layout from row strings, one byte per cell, with
// gapGlyph marking the single gap. The two layouts are fixed design-time
// data, so any inconsistency here is a programming defect: panic, never
// return a half-built layout.
func mustLayout(name string, rows []string) *Layout {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic(fmt.Sprintf("keypad: layout %q has no cells", name))
	}

	l := &Layout{
		name:   name,
		width:  len(rows[0]),
		height: len(rows),
		pos:    make(map[Button]Pos),
		at:     make(map[Pos]Button),
	}

	gaps := 0
	for y, row := range rows {
		if len(row) != l.width {
			panic(fmt.Sprintf("keypad: layout %q row %d is not %d cells wide", name, y, l.width))
		}
		for x := 0; x < len(row); x++ {
			p := Pos{X: x, Y: y}
			if row[x] == gapGlyph {
				l.gap = p
				gaps++

				continue
			}
			b := Button(row[x])
			if _, dup := l.pos[b]; dup {
				panic(fmt.Sprintf("keypad: layout %q declares button %s twice", name, b))
			}
			l.pos[b] = p
			l.at[p] = b
			l.buttons = append(l.buttons, b)
		}
	}
	if gaps != 1 {
		panic(fmt.Sprintf("keypad: layout %q has %d gaps, want exactly 1", name, gaps))
	}

	return l
}

// Name returns the layout's name ("numeric" or "directional").
func (l *Layout) Name() string { return l.name }

// Buttons returns the layout's buttons in row-major order. The returned
// slice is a copy; callers may reorder it freely.
func (l *Layout) Buttons() []Button {
	out := make([]Button, len(l.buttons))
	copy(out, l.buttons)

	return out
}

// Contains reports whether b is a button of this layout.
func (l *Layout) Contains(b Button) bool {
	_, ok := l.pos[b]

	return ok
}

// PositionOf returns the grid position of b, or ErrUnknownButton if b is
// not part of this layout.
func (l *Layout) PositionOf(b Button) (Pos, error) {
	p, ok := l.pos[b]
	if !ok {
		return Pos{}, fmt.Errorf("%w: %s on %s pad", ErrUnknownButton, b, l.name)
	}

	return p, nil
}

// ButtonAt returns the button occupying p, if any. The gap and every
// out-of-bounds position report false.
func (l *Layout) ButtonAt(p Pos) (Button, bool) {
	b, ok := l.at[p]

	return b, ok
}

// Move returns the button one step in direction d from b.
// It returns ErrOffGrid when the destination is outside the grid or the
// gap, and ErrUnknownButton when b itself is not on this layout.
func (l *Layout) Move(b Button, d Direction) (Button, error) {
	p, err := l.PositionOf(b)
	if err != nil {
		return 0, err
	}

	dst := Pos{X: p.X + deltas[d][0], Y: p.Y + deltas[d][1]}
	next, ok := l.at[dst]
	if !ok {
		return 0, fmt.Errorf("%w: %s%s on %s pad", ErrOffGrid, b, d, l.name)
	}

	return next, nil
}
