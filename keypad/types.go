// Package keypad core types: buttons, positions, directions, and the
// sentinel errors shared by both layouts.
package keypad

import "errors"

// Sentinel errors for keypad operations.
var (
	// ErrOffGrid indicates a move whose destination is outside the grid
	// bounds or the layout's gap cell.
	ErrOffGrid = errors.New("keypad: move leads off the grid or into the gap")
	// ErrUnknownButton indicates a button that is not part of this layout.
	ErrUnknownButton = errors.New("keypad: button not on this layout")
	// ErrBadCode indicates a code string with a character that is not a
	// numeric-pad button, or with a missing or misplaced confirm marker.
	ErrBadCode = errors.New("keypad: malformed code")
)

// Pos is a grid position. X grows rightward, Y grows downward; the origin
// is the top-left cell of the layout.
type Pos struct {
	X, Y int
}

// ManhattanTo returns the Manhattan distance between p and q.
func (p Pos) ManhattanTo(q Pos) int {
	return abs(q.X-p.X) + abs(q.Y-p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Button identifies one key on a keypad. Its value is the key's display
// glyph, so a Button prints as the character a human would read on the pad.
// Which buttons exist is decided by the Layout: Numeric answers for
// '0'..'9' and 'A', Directional for '^', '>', 'v', '<' and 'A'.
type Button byte

// Directional-pad buttons. Activate doubles as the confirm key of the
// numeric pad; both pads rest on it between transitions.
const (
	Activate Button = 'A'
	BtnUp    Button = '^'
	BtnRight Button = '>'
	BtnDown  Button = 'v'
	BtnLeft  Button = '<'
)

// String returns the button's glyph.
func (b Button) String() string { return string(byte(b)) }

// Direction selects one of the four orthogonal single-step moves.
type Direction uint8

const (
	// Up decreases Y by one.
	Up Direction = iota
	// Right increases X by one.
	Right
	// Down increases Y by one.
	Down
	// Left decreases X by one.
	Left
)

// deltas is indexed by Direction and holds the (dx, dy) of one step.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Button returns the directional-pad button that commands this move.
func (d Direction) Button() Button {
	switch d {
	case Up:
		return BtnUp
	case Right:
		return BtnRight
	case Down:
		return BtnDown
	default:
		return BtnLeft
	}
}

// String returns the glyph of the commanding button.
func (d Direction) String() string { return d.Button().String() }
