package complexity

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/keyrelay/costs"
	"github.com/katalvlaran/keyrelay/keypad"
)

// Sentinel errors for code evaluation.
var (
	// ErrNilTable indicates evaluation against a nil cost table.
	ErrNilTable = errors.New("complexity: cost table is nil")
	// ErrNotNumeric indicates a code containing a button that is not on
	// the numeric pad.
	ErrNotNumeric = errors.New("complexity: code contains a non-numeric-pad button")
)

// Code is one numeric code: its digit buttons plus the trailing confirm,
// as produced by keypad.ParseCode. Codes are read-only inputs; an empty
// Code is the degenerate case and costs nothing.
type Code []keypad.Button

// String renders the code's glyphs, e.g. "029A".
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte(byte(b))
	}

	return sb.String()
}

// Value returns the code's digits, confirm excluded, read as a base-10
// integer. Degenerate codes (empty, or the bare confirm) are worth 0.
func (c Code) Value() int64 {
	var v int64
	for _, b := range c {
		if b == keypad.Activate {
			break
		}
		v = v*10 + int64(b-'0')
	}

	return v
}

// Keystrokes returns the number of human presses needed to type code on
// the numeric pad when table's level of directional robots separates the
// human from it. The hand rests on Activate, so the priced transitions are
// (Activate, c₁), (c₁, c₂), …, each a minimum over the minimal numeric-pad
// paths evaluated against table.
func Keystrokes(code Code, table *costs.Table) (int64, error) {
	if table == nil {
		return 0, ErrNilTable
	}
	// Degenerate codes cost nothing, by definition rather than by accident.
	if len(code) == 0 {
		return 0, nil
	}
	for _, b := range code {
		if !keypad.Numeric.Contains(b) {
			return 0, fmt.Errorf("%w: %s in %q", ErrNotNumeric, b, code.String())
		}
	}

	var total int64
	at := keypad.Activate
	for _, b := range code {
		c, err := table.TransitionCost(keypad.Numeric, at, b)
		if err != nil {
			return 0, err
		}
		total += c
		at = b
	}

	return total, nil
}

// Complexity returns the code's score: its numeric Value multiplied by its
// minimal keystroke count against table.
func Complexity(code Code, table *costs.Table) (int64, error) {
	strokes, err := Keystrokes(code, table)
	if err != nil {
		return 0, err
	}

	return code.Value() * strokes, nil
}

// Total sums Complexity over codes at the requested indirection depth.
// The directional table is built once and shared by every code; tables are
// immutable after construction, so WithWorkers(n) may fan the per-code
// evaluations out without synchronizing anything but the running sum.
func Total(codes []Code, depth int, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	table, err := costs.Build(depth)
	if err != nil {
		return 0, err
	}

	if cfg.Workers <= 1 {
		var total int64
		for _, code := range codes {
			score, cerr := Complexity(code, table)
			if cerr != nil {
				return 0, cerr
			}
			total += score
		}

		return total, nil
	}

	return fanOut(codes, table, cfg.Workers)
}

// fanOut evaluates codes on workers goroutines and folds their partial sums.
func fanOut(codes []Code, table *costs.Table, workers int) (int64, error) {
	var (
		mu       sync.Mutex
		total    int64
		firstErr error
	)

	jobs := make(chan Code)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			var sum int64
			for code := range jobs {
				score, err := Complexity(code, table)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					continue
				}
				sum += score
			}
			mu.Lock()
			total += sum
			mu.Unlock()
		}()
	}

	for _, code := range codes {
		jobs <- code
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}

	return total, nil
}
