/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"math/big"
	"sort"
	"strings"

	"github.com/voedger/dpackgen/pkg/schema"
)

var bigOne = big.NewInt(1)

// FullRange returns the set holding every value of [lo, hi].
func FullRange(lo, hi *big.Int) RangeSet {
	return RangeSet{{Lo: lo, Hi: hi}}
}

// NewRangeSet resolves min/max keywords against [lo, hi], then sorts and
// merges the ranges. Inverted ranges and bounds outside [lo, hi] are errors.
func NewRangeSet(ranges []schema.Range, lo, hi *big.Int) (RangeSet, error) {
	set := make(RangeSet, 0, len(ranges))
	for _, r := range ranges {
		i := Interval{Lo: r.Lo.Resolve(lo, hi), Hi: r.Hi.Resolve(lo, hi)}
		if i.Lo.Cmp(i.Hi) > 0 {
			return nil, ErrInvalidConstraint("range «%s» is inverted", r)
		}
		if i.Lo.Cmp(lo) < 0 || i.Hi.Cmp(hi) > 0 {
			return nil, ErrInvalidConstraint("range «%s» exceeds %s..%s", r, lo, hi)
		}
		set = append(set, i)
	}
	return set.normalize(), nil
}

func (s RangeSet) normalize() RangeSet {
	if len(s) == 0 {
		return s
	}
	sorted := make(RangeSet, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo.Cmp(sorted[j].Lo) < 0 })

	merged := RangeSet{sorted[0]}
	for _, i := range sorted[1:] {
		last := &merged[len(merged)-1]
		if i.Lo.Cmp(new(big.Int).Add(last.Hi, bigOne)) <= 0 {
			if i.Hi.Cmp(last.Hi) > 0 {
				last.Hi = i.Hi
			}
			continue
		}
		merged = append(merged, i)
	}
	return merged
}

// Contains returns true if v belongs to one of the intervals.
func (s RangeSet) Contains(v *big.Int) bool {
	for _, i := range s {
		if v.Cmp(i.Lo) >= 0 && v.Cmp(i.Hi) <= 0 {
			return true
		}
	}
	return false
}

// Covers returns true if the set holds every value of [lo, hi].
func (s RangeSet) Covers(lo, hi *big.Int) bool {
	return len(s) == 1 && s[0].Lo.Cmp(lo) <= 0 && s[0].Hi.Cmp(hi) >= 0
}

// Intersect returns the values present in both sets.
func (s RangeSet) Intersect(o RangeSet) RangeSet {
	res := RangeSet{}
	for _, a := range s {
		for _, b := range o {
			lo, hi := a.Lo, a.Hi
			if b.Lo.Cmp(lo) > 0 {
				lo = b.Lo
			}
			if b.Hi.Cmp(hi) < 0 {
				hi = b.Hi
			}
			if lo.Cmp(hi) <= 0 {
				res = append(res, Interval{Lo: lo, Hi: hi})
			}
		}
	}
	return res.normalize()
}

// First returns the smallest value of the set.
func (s RangeSet) First() *big.Int { return s[0].Lo }

// Last returns the biggest value of the set.
func (s RangeSet) Last() *big.Int { return s[len(s)-1].Hi }

func (s RangeSet) String() string {
	parts := make([]string, 0, len(s))
	for _, i := range s {
		if i.Lo.Cmp(i.Hi) == 0 {
			parts = append(parts, i.Lo.String())
			continue
		}
		parts = append(parts, i.Lo.String()+".."+i.Hi.String())
	}
	return strings.Join(parts, " | ")
}
