// Package keyrelay computes the minimum number of human keystrokes needed
// to type a numeric code through a chain of robot-operated keypads.
//
// 🚀 What is keyrelay?
//
//	A small, CPU-bound library for the nested-keypad problem: a human
//	operates a directional keypad that drives a robot operating another
//	directional keypad, which (after any number of further robots) drives
//	a robot typing on a numeric keypad. keyrelay answers "how few presses
//	at the human layer produce a given code at the numeric layer?"
//		• keypad/     — the two fixed keypad layouts and legal movement
//		• paths/      — enumeration of all minimal button-to-button paths
//		• costs/      — per-level transition cost tables (the core DP)
//		• complexity/ — per-code keystroke totals and complexity scores
//
// ✨ Why choose keyrelay?
//
//   - No sequence blow-up – keystroke strings grow exponentially with the
//     number of robot layers, but keyrelay propagates pairwise costs
//     bottom-up through a fixed 5×5 table per layer, so depth 25 is as
//     cheap as depth 2
//   - Rock-solid guarantees – immutable layouts and tables, pure functions,
//     sentinel errors, loud failure on invariant violations
//   - Pure Go core – the only runtime dependency outside tests is the YAML
//     reader used by the bundled CLI
//
// Quick ASCII picture of the two layouts (· marks the gap):
//
//	┌───┬───┬───┐
//	│ 7 │ 8 │ 9 │
//	├───┼───┼───┤      ┌───┬───┬───┐
//	│ 4 │ 5 │ 6 │      │ · │ ^ │ A │
//	├───┼───┼───┤      ├───┼───┼───┤
//	│ 1 │ 2 │ 3 │      │ < │ v │ > │
//	├───┼───┼───┤      └───┴───┴───┘
//	│ · │ 0 │ A │
//	└───┴───┴───┘
//
// Entry point for most callers:
//
//	total, err := complexity.Total(codes, 25)
//
//	go get github.com/katalvlaran/keyrelay
package keyrelay
