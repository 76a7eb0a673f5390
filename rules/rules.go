// Package rules defines the canonical rule codes (CLP-series) attached to every
// diagnostic clamp produces: partition validation failures, limit declaration
// failures and guard discipline violations.
//
// Rule numbering scheme:
//
//	000–099  Partition and domain declaration rules
//	100–149  Guard discipline rules
package rules

import "fmt"

// Rule represents a clamp rule code (CLP-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CLP000DuplicateValue
	CLP010OverlappingRange
	CLP020MultipleFullRanges
	CLP030MultipleCatchalls
	CLP040CoverageGap
	CLP050OutOfBounds
	CLP060KindMismatch
	CLP070EmptyRange
	CLP080InvertedBounds
	CLP100UnresolvedGuard
	CLP110GuardReuse
)

// String returns the canonical code and short name of the rule.
// Example: "CLP010: OverlappingRange"
func (r Rule) String() string {
	switch r {
	case CLP000DuplicateValue:
		return "CLP000: DuplicateValue"
	case CLP010OverlappingRange:
		return "CLP010: OverlappingRange"
	case CLP020MultipleFullRanges:
		return "CLP020: MultipleFullRanges"
	case CLP030MultipleCatchalls:
		return "CLP030: MultipleCatchalls"
	case CLP040CoverageGap:
		return "CLP040: CoverageGap"
	case CLP050OutOfBounds:
		return "CLP050: OutOfBounds"
	case CLP060KindMismatch:
		return "CLP060: KindMismatch"
	case CLP070EmptyRange:
		return "CLP070: EmptyRange"
	case CLP080InvertedBounds:
		return "CLP080: InvertedBounds"
	case CLP100UnresolvedGuard:
		return "CLP100: UnresolvedGuard"
	case CLP110GuardReuse:
		return "CLP110: GuardReuse"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CLP000DuplicateValue:
		return "An exact value may be claimed by one partition member only."
	case CLP010OverlappingRange:
		return "Ranges of a partition must not intersect each other or exact values."
	case CLP020MultipleFullRanges:
		return "A partition may contain at most one full-range wildcard."
	case CLP030MultipleCatchalls:
		return "A partition may contain at most one catch-all member."
	case CLP040CoverageGap:
		return "Without a catch-all every value of the bound must be claimed."
	case CLP050OutOfBounds:
		return "Values, ranges and nested bounds must lie within the enclosing bound."
	case CLP060KindMismatch:
		return "Every value of a partition must share the partition's integer kind."
	case CLP070EmptyRange:
		return "A half-open range must contain at least one value."
	case CLP080InvertedBounds:
		return "A lower bound must not exceed its upper bound."
	case CLP100UnresolvedGuard:
		return "A guard must be resolved with Commit or Discard."
	case CLP110GuardReuse:
		return "A committed or discarded guard must not be used again."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors for readable call sites.

func DuplicateValue() Rule     { return CLP000DuplicateValue }
func OverlappingRange() Rule   { return CLP010OverlappingRange }
func MultipleFullRanges() Rule { return CLP020MultipleFullRanges }
func MultipleCatchalls() Rule  { return CLP030MultipleCatchalls }
func CoverageGap() Rule        { return CLP040CoverageGap }
func OutOfBounds() Rule        { return CLP050OutOfBounds }
func KindMismatch() Rule       { return CLP060KindMismatch }
func EmptyRange() Rule         { return CLP070EmptyRange }
func InvertedBounds() Rule     { return CLP080InvertedBounds }
func UnresolvedGuard() Rule    { return CLP100UnresolvedGuard }
func GuardReuse() Rule         { return CLP110GuardReuse }
