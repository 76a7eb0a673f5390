// Package clamp implements integers restricted to a domain of valid values.
//
// A bounded integer is [Int] parametrized with a primitive integer type and a
// [Domain] type which provides [Limits]: the valid values, either a single
// [Lower, Upper] span or several disjoint ones, and a [Behavior] for
// arithmetic results falling out of them:
//
//   - [Panicking] panics with [ArithmeticError];
//   - [Saturating] pins results to the nearest valid value.
//
// Values are changed either by replacement with [Int.Set] or through an edit
// session opened with [Int.Modify]. The [Guard] it returns works on a
// snapshot and writes it back only on a successful commit.
//
// Partitions of a domain into named members are described and validated by
// the partition package. Spans of a member turn into limits with
// [LimitsFromDomain].
package clamp
