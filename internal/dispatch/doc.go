// Package dispatch executes compiled expansions against the output
// backends.
//
// A single worker serializes execution: at most one dispatch is ever in
// flight, and matches that arrive while one is running queue up behind
// it. Each dispatch first erases the typed trigger with backspace
// events, then walks the segment sequence in order — literals go to the
// clipboard followed by a paste, command references are resolved to key
// combos and injected. Every backend call carries a bounded timeout and
// the first failure aborts the remainder of the dispatch; nothing is
// retried because the partial output is already on screen.
package dispatch
