package costs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/keyrelay/keypad"
	"github.com/katalvlaran/keyrelay/paths"
)

// Sentinel errors for cost-table construction and lookup.
var (
	// ErrNotDirectional indicates a table lookup with a button that is not
	// on the directional pad.
	ErrNotDirectional = errors.New("costs: button not on the directional pad")
	// ErrNegativeDepth indicates Build was called with a negative depth.
	ErrNegativeDepth = errors.New("costs: indirection depth must be non-negative")
	// ErrNoPath indicates the enumerator produced no candidate for a pair.
	// The two layouts connect every button pair, so this means the static
	// layout data is corrupt.
	ErrNoPath = errors.New("costs: no minimal path between buttons")
)

// directional fixes the button→index mapping of the 5×5 matrix.
var directional = [...]keypad.Button{
	keypad.Activate,
	keypad.BtnUp,
	keypad.BtnRight,
	keypad.BtnDown,
	keypad.BtnLeft,
}

// padSize is the directional-pad button count; tables are padSize².
const padSize = len(directional)

// Table is the complete transition cost matrix of one indirection level.
// Entry (X, Y) is the number of human keystrokes needed to move the hand
// at this level from resting on X to pressing Y, confirm included.
// A Table never mutates after construction and is safe for concurrent use.
type Table struct {
	level int
	cost  [padSize * padSize]int64
}

// Base returns the level-0 table: level-0 presses are the human's own
// fingers, so every transition costs exactly one keystroke.
func Base() *Table {
	t := &Table{}
	for i := range t.cost {
		t.cost[i] = 1
	}

	return t
}

// Build returns the directional-pad table at the requested indirection
// depth: Base, then depth DP steps.
func Build(depth int) (*Table, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	t := Base()
	var err error
	for level := 1; level <= depth; level++ {
		if t, err = t.Next(); err != nil {
			return nil, fmt.Errorf("costs: building level %d: %w", level, err)
		}
	}

	return t, nil
}

// Level returns the indirection level this table describes (0 = human).
func (t *Table) Level() int { return t.level }

// Cost returns the table entry for the ordered pair (from, to).
func (t *Table) Cost(from, to keypad.Button) (int64, error) {
	i, err := index(from)
	if err != nil {
		return 0, err
	}
	j, err := index(to)
	if err != nil {
		return 0, err
	}

	return t.cost[i*padSize+j], nil
}

// SequenceCost prices one move sequence against this table: the sum of
// entries over consecutive pairs of (Activate, s₁, …, sₙ), with the
// implicit leading Activate prepended. At level 0 this is simply len(seq).
func (t *Table) SequenceCost(seq paths.Sequence) (int64, error) {
	var total int64
	at := keypad.Activate
	for _, b := range seq {
		c, err := t.Cost(at, b)
		if err != nil {
			return 0, err
		}
		total += c
		at = b
	}

	return total, nil
}

// TransitionCost returns the cheapest way, priced by this table, to move
// the controlled hand on pad from resting on `from` to pressing `to`.
// With the directional pad this is the DP step's inner evaluation; with
// the numeric pad it prices the final layer for the code evaluator (the
// numeric keypad sits one layer beyond the deepest directional robot).
func (t *Table) TransitionCost(pad *keypad.Layout, from, to keypad.Button) (int64, error) {
	candidates, err := paths.Enumerate(pad, from, to)
	if err != nil {
		return 0, fmt.Errorf("costs: enumerating %s→%s: %w", from, to, err)
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: %s→%s on %s pad", ErrNoPath, from, to, pad.Name())
	}

	best := int64(math.MaxInt64)
	for _, seq := range candidates {
		c, seqErr := t.SequenceCost(seq)
		if seqErr != nil {
			return 0, seqErr
		}
		if c < best {
			best = c
		}
	}
	if best < 0 {
		// Costs are sums of positive entries; a negative minimum means the
		// arithmetic overflowed. Refuse to return a wrong total.
		return 0, fmt.Errorf("costs: negative cost %d for %s→%s at level %d", best, from, to, t.level)
	}

	return best, nil
}

// Next derives the next level's table from t. It is a pure function: two
// calls on the same receiver yield identical matrices.
func (t *Table) Next() (*Table, error) {
	next := &Table{level: t.level + 1}
	for i, from := range directional {
		for j, to := range directional {
			c, err := t.TransitionCost(keypad.Directional, from, to)
			if err != nil {
				return nil, err
			}
			next.cost[i*padSize+j] = c
		}
	}

	return next, nil
}

// index maps a directional button to its row/column in the matrix.
func index(b keypad.Button) (int, error) {
	for i, d := range directional {
		if d == b {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrNotDirectional, b)
}
