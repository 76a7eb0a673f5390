// Package partition validates decompositions of an integer domain into named,
// mutually exclusive members.
//
// A [Partition] holds an ordered list of members of one integer kind:
//
//   - [ExactMember] claims individual values;
//   - [RangeMember] claims one or more ranges, a full `..` wildcard included;
//   - [NestedMember] claims whatever its own partition claims, either within a
//     declared bound or within the limits of its members;
//   - [CatchAllMember] absorbs every value of the bound no sibling claims.
//
// [Validate] checks, in this order and failing on the first violation:
//
//  1. kinds: every value in the tree shares the partition kind;
//  2. wildcards: at most one full range and at most one catch-all per
//     partition, checked before anything is claimed;
//  3. exact values: no duplicates, nothing outside the bound;
//  4. ranges: nothing outside the bound, no overlap with an already claimed
//     value;
//  5. nested partitions: validated recursively, then merged into the parent
//     either as one span (when they cover their bound) or claim by claim;
//  6. coverage: without a catch-all or a full wildcard every value of the
//     bound must be claimed.
//
// Claims are kept in an ordered set of disjoint spans: an overlapping insertion
// hands back the claim it collides with, which gives exact attribution of both
// parties. Partitions are small and validated once ahead of time, so nothing
// fancier than that is needed. The coverage walk steps over span boundaries with
// successor/predecessor arithmetic and never enumerates values, which keeps it
// linear in the number of claims for 64 and 128-bit kinds as well.
//
// A nested partition with a declared bound must cover it. Without a declared
// bound its gaps fall through to the parent, where siblings or the parent's
// catch-all may claim them.
package partition
