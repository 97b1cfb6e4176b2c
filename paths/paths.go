package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keyrelay/keypad"
)

// ErrNilLayout indicates that Enumerate was handed a nil layout.
var ErrNilLayout = errors.New("paths: layout is nil")

// Sequence is an ordered list of directional buttons ending in Activate:
// the presses that walk the controlled hand from one button to another and
// confirm. The leading Activate (the resting position both hands share
// between transitions) is implicit.
type Sequence []keypad.Button

// String renders the sequence as glyphs, e.g. "v<<A".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		sb.WriteByte(byte(b))
	}

	return sb.String()
}

// axis labels the two movement axes; axisNone marks a walk with no moves yet.
type axis int8

const (
	axisNone axis = iota - 1
	axisX
	axisY
)

// node is one partial walk on the DFS stack.
type node struct {
	at     keypad.Button      // current button
	pos    keypad.Pos         // cached position of at
	moves  []keypad.Direction // moves taken so far
	axis   axis               // axis of the most recent move
	turned bool               // whether the walk already changed axis once
}

// Enumerate returns every minimal move sequence from start to goal on pad.
//
// The search is an explicit-stack DFS. At each step only axis-reducing
// moves are candidates (a move that grows either axis's remaining distance
// can never be part of a minimal path), and a walk that has left an axis
// may not return to it, so the candidates per pair are the two monotone
// run-orderings — horizontal-then-vertical and vertical-then-horizontal.
// A candidate whose run crosses the gap is pruned by the layout itself.
//
// The result has one sequence (collinear pair, start == goal, or one
// ordering blocked by the gap) or two. When start == goal the single
// sequence is just the confirming Activate press.
func Enumerate(pad *keypad.Layout, start, goal keypad.Button) ([]Sequence, error) {
	// 1) Validate inputs before touching the stack.
	if pad == nil {
		return nil, ErrNilLayout
	}
	startPos, err := pad.PositionOf(start)
	if err != nil {
		return nil, fmt.Errorf("paths: invalid start: %w", err)
	}
	goalPos, err := pad.PositionOf(goal)
	if err != nil {
		return nil, fmt.Errorf("paths: invalid goal: %w", err)
	}

	// 2) Seed the stack with the resting hand.
	stack := []node{{at: start, pos: startPos, axis: axisNone}}

	var out []Sequence
	for len(stack) > 0 {
		// 3) Pop the deepest partial walk.
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 4) A walk that reached the goal becomes a sequence: its moves,
		//    then the Activate press of the destination button.
		if n.at == goal {
			seq := make(Sequence, 0, len(n.moves)+1)
			for _, d := range n.moves {
				seq = append(seq, d.Button())
			}
			out = append(out, append(seq, keypad.Activate))

			continue
		}

		// 5) Extend by each axis-reducing move that the layout allows and
		//    that does not resume an abandoned axis.
		for _, d := range towards(n.pos, goalPos) {
			a := axisY
			if d == keypad.Left || d == keypad.Right {
				a = axisX
			}
			turned := n.turned
			if n.axis != axisNone && n.axis != a {
				if turned {
					continue // the walk already turned once; no zig-zag
				}
				turned = true
			}

			next, moveErr := pad.Move(n.at, d)
			if moveErr != nil {
				continue // gap: this ordering dies here
			}
			nextPos, posErr := pad.PositionOf(next)
			if posErr != nil {
				// Move just returned this button, so the layout tables are
				// corrupt. Fail loudly rather than produce a wrong path.
				panic(fmt.Sprintf("paths: layout %q returned unknown button %s", pad.Name(), next))
			}

			moves := make([]keypad.Direction, len(n.moves), len(n.moves)+1)
			copy(moves, n.moves)
			stack = append(stack, node{
				at:     next,
				pos:    nextPos,
				moves:  append(moves, d),
				axis:   a,
				turned: turned,
			})
		}
	}

	return out, nil
}

// towards returns the at-most-two directions that reduce the per-axis
// distance from p to goal: one horizontal, one vertical.
func towards(p, goal keypad.Pos) []keypad.Direction {
	dirs := make([]keypad.Direction, 0, 2)
	switch {
	case p.X < goal.X:
		dirs = append(dirs, keypad.Right)
	case p.X > goal.X:
		dirs = append(dirs, keypad.Left)
	}
	switch {
	case p.Y < goal.Y:
		dirs = append(dirs, keypad.Down)
	case p.Y > goal.Y:
		dirs = append(dirs, keypad.Up)
	}

	return dirs
}
