// Package costs builds the per-level transition cost tables at the heart of
// the nested-keypad engine.
//
// What:
//
//   - Table: an immutable 5×5 matrix over the directional-pad buttons
//     (Activate, ^, >, v, <). Entry (X, Y) is the number of keystrokes at
//     the human layer needed to walk the hand at this indirection level
//     from resting on X to pressing Y, confirm included.
//   - Base: level 0 — the human's own fingers, every transition costs 1.
//   - Next: the DP step deriving level L+1 from level L.
//   - Build: Base plus depth applications of Next.
//   - TransitionCost: the same minimum-over-candidates evaluation on an
//     arbitrary layout; costs.Table for the directional pad, the numeric
//     pad's per-pair costs for the code evaluator.
//
// Why a table instead of keystroke strings:
//
//   - The full keystroke sequence at level L can be exponential in L, but
//     a level's cost depends on the previous level only through 25 pair
//     costs. Propagating those keeps depth-25 evaluation in microseconds.
//
// The recurrence, for every ordered directional pair (X, Y):
//
//	next(X, Y) = min over minimal paths p from X to Y of
//	             Σ prev(aᵢ, aᵢ₊₁)  for consecutive (aᵢ, aᵢ₊₁) in
//	             (Activate, p₁, …, pₙ)       — leading Activate implicit,
//	                                           trailing Activate in p.
//
// Tables never mutate after construction; levels are built strictly in
// order and each level reads only its immediate predecessor.
//
// Complexity:
//
//   - Next: O(25 · path length) — constant in practice. Memory: O(1).
//   - Build(depth): O(depth).
//
// Errors:
//
//   - ErrNotDirectional: a table lookup with a non-directional button.
//   - ErrNegativeDepth: Build called with depth < 0.
//   - ErrNoPath: the enumerator produced no candidates for a pair, which
//     means the static layout data is corrupt.
package costs
