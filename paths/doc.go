// Package paths enumerates every minimal move sequence between two buttons
// of a keypad layout.
//
// What:
//
//   - Sequence: the directional buttons a controlling hand presses to walk
//     the controlled hand from one button to another, ending in Activate
//     (the press of the destination button). The leading Activate — both
//     hands start at rest — is implicit and supplied by the cost layer.
//   - Enumerate: depth-first search producing all minimal sequences.
//
// Why depth-first, and why so few paths:
//
//   - A minimal path may only step in a direction that reduces the
//     remaining distance on one axis, so at most two moves are candidates
//     at any point.
//   - Once the walk turns off an axis it never returns to it; minimal-cost
//     transitions never zig-zag, because a straight run at this level is a
//     repeated press one level up, and repeated presses are the cheapest
//     thing a directional pad can do. Each pair therefore has either one
//     candidate (collinear buttons, start == goal, or the gap blocking one
//     ordering) or two (both axis orderings legal).
//
// Complexity:
//
//   - Enumerate: O(w+h) per produced sequence on a w×h layout; at most two
//     sequences on the fixed keypads. Memory: O(w+h).
//
// Errors:
//
//   - ErrNilLayout: Enumerate was handed a nil layout.
//   - keypad.ErrUnknownButton: start or goal is not on the layout.
package paths
