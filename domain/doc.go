// Package domain defines the integer vocabulary shared by partitions and
// bounded integers: integer kinds, kind-tagged values, ranges with optional
// bounds and resolved inclusive spans.
//
// A [Value] carries exactly one magnitude of one [Kind] for its whole
// lifetime. Values of different kinds never compare: doing so is a caller
// error and panics. Every supported kind, 128-bit ones included, is
// represented with the same fixed-size magnitude, so bookkeeping such as
// successor/predecessor stepping works identically across widths.
//
// A [Range] is what a declaration says (full, from, to, inclusive; half-open
// forms normalise to inclusive at construction). A [Span] is what a range
// becomes once resolved against a concrete outer bound.
package domain
