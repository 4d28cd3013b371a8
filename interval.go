// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package intervaltree

// An Interval is an immutable closed pair (Low, High) interpreted under a
// Kind that decides border inclusion. LeftBorder and RightBorder are only
// meaningful when Kind is Dynamic.
type Interval[V Number] struct {
	Low, High               V
	Kind                    Kind
	LeftBorder, RightBorder Border
}

// New constructs an Interval, failing with ErrInvalidBounds when low is
// greater than high, and with ErrDomainUnsupported when kind is Dynamic
// or ClosedAdjacent over a floating point domain.
func New[V Number](low, high V, kind Kind) (Interval[V], error) {
	var zero Interval[V]
	if low > high {
		return zero, ErrInvalidBounds
	}
	if (kind == Dynamic || kind == ClosedAdjacent) && !isIntegral(low) {
		return zero, ErrDomainUnsupported
	}
	left, right := borders(kind)
	return Interval[V]{Low: low, High: high, Kind: kind, LeftBorder: left, RightBorder: right}, nil
}

// NewSafe constructs an Interval without validating low <= high: if low
// is greater than high the two are silently swapped.
func NewSafe[V Number](low, high V, kind Kind) Interval[V] {
	if low > high {
		low, high = high, low
	}
	left, right := borders(kind)
	return Interval[V]{Low: low, High: high, Kind: kind, LeftBorder: left, RightBorder: right}
}

// NewDynamic constructs a Dynamic-kind Interval with independent borders
// on each side.
func NewDynamic[V Number](low, high V, left, right Border) (Interval[V], error) {
	var zero Interval[V]
	if low > high {
		return zero, ErrInvalidBounds
	}
	if !isIntegral(low) {
		return zero, ErrDomainUnsupported
	}
	return Interval[V]{Low: low, High: high, Kind: Dynamic, LeftBorder: left, RightBorder: right}, nil
}

func (i Interval[V]) effectiveBorders() (Border, Border) {
	if i.Kind == Dynamic {
		return i.LeftBorder, i.RightBorder
	}
	return borders(i.Kind)
}

// Overlaps reports whether i and other overlap, under i and other's own
// kind-specific semantics (normalized through the border-aware algorithm
// when either side is Dynamic).
func (i Interval[V]) Overlaps(other Interval[V]) bool {
	if i.Kind == Dynamic || other.Kind == Dynamic || i.Kind != other.Kind {
		lb1, rb1 := i.effectiveBorders()
		lb2, rb2 := other.effectiveBorders()
		return overlapsGeneral(i.Low, i.High, lb1, rb1, other.Low, other.High, lb2, rb2)
	}
	return overlaps(i.Kind, i.Low, i.High, other.Low, other.High)
}

// OverlapsExclusive reports strict overlap (Low < other.High && other.Low
// < High), independent of either interval's kind.
func (i Interval[V]) OverlapsExclusive(other Interval[V]) bool {
	return i.Low < other.High && other.Low < i.High
}

// WithinPoint reports whether p lies within i under i's kind.
func (i Interval[V]) WithinPoint(p V) bool {
	if i.Kind == Dynamic {
		return withinGeneral(i.Low, i.High, i.LeftBorder, i.RightBorder, p)
	}
	return within(i.Kind, i.Low, i.High, p)
}

// WithinInterval reports whether other is entirely contained within i.
func (i Interval[V]) WithinInterval(other Interval[V]) bool {
	return i.WithinPoint(other.Low) && i.WithinPoint(other.High)
}

// Size returns the number of values i covers.
func (i Interval[V]) Size() V {
	var zero V
	integral := isIntegral(zero)
	if i.Kind == Dynamic {
		return sizeGeneral(i.Low, i.High, i.LeftBorder, i.RightBorder, integral)
	}
	return size(i.Kind, i.Low, i.High, integral)
}

// Distance returns 0 if i and other overlap, else the gap between their
// nearer endpoints.
func (i Interval[V]) Distance(other Interval[V]) V {
	lb1, rb1 := i.effectiveBorders()
	lb2, rb2 := other.effectiveBorders()
	return distanceGeneral(i.Low, i.High, lb1, rb1, other.Low, other.High, lb2, rb2)
}

// Join merges i with other, assumed to overlap, and returns the interval
// or intervals that result. Every kind in this package produces exactly
// one interval; Join still returns a slice so callers (and Tree, which
// iterates the result) never assume a single-interval result, matching
// the core's "join returns a finite sequence" contract.
func (i Interval[V]) Join(other Interval[V]) []Interval[V] {
	if i.Kind == Dynamic || other.Kind == Dynamic {
		lb1, rb1 := i.effectiveBorders()
		lb2, rb2 := other.effectiveBorders()
		low, high, left, right := joinGeneral(i.Low, i.High, lb1, rb1, other.Low, other.High, lb2, rb2)
		return []Interval[V]{{Low: low, High: high, Kind: Dynamic, LeftBorder: left, RightBorder: right}}
	}
	kind := i.Kind
	left, right := borders(kind)
	return []Interval[V]{{
		Low:         minOf(i.Low, other.Low),
		High:        maxOf(i.High, other.High),
		Kind:        kind,
		LeftBorder:  left,
		RightBorder: right,
	}}
}

// IntervalSlice holds the portions of an interval not covered by a cut,
// the result of Interval.Slice.
type IntervalSlice[V Number] struct {
	Left, Right *Interval[V]
}

// Slice partitions i by removing the portion covered by cut, returning
// the remaining left and/or right pieces (nil when nothing remains on
// that side). Endpoints adjust inward by one for integral kinds so that
// the resulting pieces do not themselves overlap cut.
func (i Interval[V]) Slice(cut Interval[V]) IntervalSlice[V] {
	var out IntervalSlice[V]
	var zero V
	integral := isIntegral(zero)

	if cut.Low > i.Low {
		leftHigh := cut.Low
		if integral {
			leftHigh = cut.Low - 1
		}
		if leftHigh >= i.Low {
			left := i
			left.High = leftHigh
			out.Left = &left
		}
	}
	if cut.High < i.High {
		rightLow := cut.High
		if integral {
			rightLow = cut.High + 1
		}
		if rightLow <= i.High {
			right := i
			right.Low = rightLow
			out.Right = &right
		}
	}
	return out
}
