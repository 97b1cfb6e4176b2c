// Package complexity evaluates numeric codes against a built cost table and
// aggregates their complexity scores.
//
// What:
//
//   - Code: a numeric-pad button sequence including the trailing confirm,
//     e.g. 0 2 9 A, with its base-10 Value (29 for "029A").
//   - Keystrokes: human presses needed to type one code when the given
//     directional table's level of robots sits between human and pads.
//   - Complexity: Value × Keystrokes.
//   - Total: the sum of Complexity over a code list at a requested
//     indirection depth, building the directional table exactly once.
//
// Why the numeric pad prices against the deepest directional table:
//
//   - The numeric keypad is one layer further from the human than the
//     deepest directional robot, so each numeric-pad transition is a
//     minimum over candidate paths priced by that table — the same
//     evaluation the DP applies between directional levels.
//
// Concurrency:
//
//   - Tables and layouts are immutable after construction, so per-code
//     evaluation shares no mutable state. Total fans codes out over
//     WithWorkers(n) goroutines when asked; the default is sequential.
//
// Complexity:
//
//   - Keystrokes: O(len(code)). Total: O(depth + Σ len(code)).
//
// Errors:
//
//   - ErrNilTable: evaluation against a nil cost table.
//   - ErrNotNumeric: a code contains a button foreign to the numeric pad.
//   - ErrBadWorkers (panic): WithWorkers with n < 1.
package complexity
