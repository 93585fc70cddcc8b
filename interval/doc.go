// Package interval merges and queries sets of inclusive integer
// intervals for coverage-style puzzle questions ("how many points on
// this row are covered", "where is the first uncovered point").
//
// The central type is CoverageSet: a sorted sequence of disjoint
// intervals in which adjacent neighbors (a.End+1 == b.Start) have been
// fused. Merge builds one from any interval slice in O(n log n); all
// queries then run over the minimal representation.
//
// Both interval ends are inclusive. That is a load-bearing invariant:
// the classic failure mode of this component is an off-by-one at a
// boundary, so Contains, Merge and FirstGap are all specified (and
// tested) against inclusive semantics. All arithmetic is int64;
// puzzle-scale coordinates overflow int32.
package interval
