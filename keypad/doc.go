// Package keypad defines the two fixed keypad layouts of the nested-keypad
// problem and legal single-step movement on them.
//
// What:
//
//   - Button: a glyph-valued identifier ('0'..'9', 'A', '^', '>', 'v', '<').
//   - Layout: an immutable {Button → Pos} association plus the one grid
//     cell with no button (the "gap"), for exactly two variants:
//     – Numeric: 7 8 9 / 4 5 6 / 1 2 3 / · 0 A (gap left of 0).
//     – Directional: · ^ A / < v > (gap above Left).
//   - Move: pure single-step movement that fails on the gap or off-grid.
//   - ParseCode: the parsing boundary turning "029A" into Numeric buttons.
//
// Why:
//
//   - The layouts are fully known at design time, so they are built once at
//     process start and never mutated; any malformed layout data is a
//     programming defect and panics during initialization.
//   - Movement failure (gap / off-grid) is an expected pruning signal for
//     the path enumerator, so it is an error value, not a panic.
//
// Complexity:
//
//   - PositionOf, ButtonAt, Move: O(1), Memory: O(1).
//   - ParseCode: O(n) over the input string.
//
// Errors:
//
//   - ErrOffGrid: a move's destination is outside the grid or the gap.
//   - ErrUnknownButton: the button is not part of this layout.
//   - ErrBadCode: a code string contains a non-numeric-pad character, or
//     its confirm marker is missing or misplaced.
package keypad
