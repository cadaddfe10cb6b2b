// Package segment turns one competitor's per-frame state stream into an
// ordered sequence of high-level actions.
//
// The segmenter walks the frame array with a forward-only cursor, dispatching
// on the coarse category of each actionable frame. Several categories
// tolerate a short burst of same-category noise (a "courtesy window") before
// committing to the default wait interpretation; when the state changes
// inside the window the segmenter re-dispatches from the new position
// instead, so a brief landing blip between two inputs never fabricates a
// wait action.
//
// Spans the segmenter cannot classify (truncated at end of stream, unknown
// attack ids, characters without a measured jump threshold) are dropped
// rather than guessed at; the Report returned alongside the actions counts
// them for diagnostics.
package segment
