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

// A Kind selects the containment and overlap semantics of an Interval.
// Kinds hold no state; Dynamic is the one exception, dispatching at
// runtime on a per-interval pair of Border flags instead.
type Kind uint8

const (
	// Closed is [low, high].
	Closed Kind = iota
	// Open is (low, high).
	Open
	// LeftOpen is (low, high].
	LeftOpen
	// RightOpen is [low, high).
	RightOpen
	// ClosedAdjacent is [low, high], with integer abutment treated as
	// overlap: [0,5] overlaps [6,10] but not [7,10].
	ClosedAdjacent
	// Dynamic consults the interval's own LeftBorder/RightBorder fields.
	Dynamic
)

// String returns a human readable name for k.
func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case LeftOpen:
		return "left_open"
	case RightOpen:
		return "right_open"
	case ClosedAdjacent:
		return "closed_adjacent"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// A Border describes how one end of a Dynamic interval behaves.
type Border uint8

const (
	// BorderClosed includes the endpoint.
	BorderClosed Border = iota
	// BorderOpen excludes the endpoint.
	BorderOpen
	// BorderClosedAdjacent includes the endpoint and, in addition,
	// treats integer abutment across that endpoint as overlap.
	BorderClosedAdjacent
)

// String returns a human readable name for b.
func (b Border) String() string {
	switch b {
	case BorderClosed:
		return "closed"
	case BorderOpen:
		return "open"
	case BorderClosedAdjacent:
		return "closed_adjacent"
	default:
		return "unknown"
	}
}

// borders returns the (left, right) Border pair equivalent to a
// non-dynamic Kind, used to run a static kind through the same
// border-normalized algorithms Dynamic uses.
func borders(k Kind) (left, right Border) {
	switch k {
	case Closed:
		return BorderClosed, BorderClosed
	case Open:
		return BorderOpen, BorderOpen
	case LeftOpen:
		return BorderOpen, BorderClosed
	case RightOpen:
		return BorderClosed, BorderOpen
	case ClosedAdjacent:
		return BorderClosedAdjacent, BorderClosedAdjacent
	default:
		return BorderClosed, BorderClosed
	}
}

func anyClosed(b Border) bool {
	return b == BorderClosed || b == BorderClosedAdjacent
}

func borderPromote(b1, b2 Border) Border {
	if b1 == BorderClosedAdjacent || b2 == BorderClosedAdjacent {
		return BorderClosedAdjacent
	}
	if b1 == BorderClosed || b2 == BorderClosed {
		return BorderClosed
	}
	return BorderOpen
}

// within reports whether p lies within [low, high] under kind k, for one
// of the five static kinds. Dynamic is handled by Interval.WithinPoint,
// which has access to the interval's stored borders.
func within[V Number](k Kind, low, high, p V) bool {
	switch k {
	case Closed, ClosedAdjacent:
		return low <= p && p <= high
	case Open:
		return low < p && p < high
	case LeftOpen:
		return low < p && p <= high
	case RightOpen:
		return low <= p && p < high
	default:
		lb, rb := borders(k)
		return withinGeneral(low, high, lb, rb, p)
	}
}

func withinGeneral[V Number](low, high V, lb, rb Border, p V) bool {
	switch lb {
	case BorderOpen:
		if low >= p {
			return false
		}
	default:
		if low > p {
			return false
		}
	}
	switch rb {
	case BorderOpen:
		if p >= high {
			return false
		}
	default:
		if p > high {
			return false
		}
	}
	return true
}

// overlaps reports whether [l1,h1] and [l2,h2] overlap under kind k, for
// one of the five static kinds.
func overlaps[V Number](k Kind, l1, h1, l2, h2 V) bool {
	switch k {
	case Closed:
		return l1 <= h2 && l2 <= h1
	case Open:
		return l1 < h2 && l2 < h1
	case LeftOpen:
		return l1 < h2 && l2 <= h1
	case RightOpen:
		return l1 <= h2 && l2 < h1
	case ClosedAdjacent:
		return l1 <= h2+1 && l2-1 <= h1
	default:
		lb, rb := borders(k)
		return overlapsGeneral(l1, h1, lb, rb, l2, h2, lb, rb)
	}
}

// closedEquiv normalizes [low,high] under borders (lb,rb) to its
// closed-equivalent bounds: an open side shifts inward by one.
func closedEquiv[V Number](low, high V, lb, rb Border) (V, V) {
	l := low
	if lb == BorderOpen {
		l = low + 1
	}
	h := high
	if rb == BorderOpen {
		h = high - 1
	}
	return l, h
}

func overlapsGeneral[V Number](l1, h1 V, lb1, rb1 Border, l2, h2 V, lb2, rb2 Border) bool {
	cl1, ch1 := closedEquiv(l1, h1, lb1, rb1)
	cl2, ch2 := closedEquiv(l2, h2, lb2, rb2)
	if cl1 <= ch2 && cl2 <= ch1 {
		return true
	}
	if ch1+1 == cl2 && (rb1 == BorderClosedAdjacent || lb2 == BorderClosedAdjacent) {
		return true
	}
	if ch2+1 == cl1 && (rb2 == BorderClosedAdjacent || lb1 == BorderClosedAdjacent) {
		return true
	}
	return false
}

func distanceGeneral[V Number](l1, h1 V, lb1, rb1 Border, l2, h2 V, lb2, rb2 Border) V {
	if overlapsGeneral(l1, h1, lb1, rb1, l2, h2, lb2, rb2) {
		var zero V
		return zero
	}
	al1, ah1 := closedEquiv(l1, h1, lb1, rb1)
	al2, ah2 := closedEquiv(l2, h2, lb2, rb2)
	if ah1 < al2 {
		return al2 - ah1
	}
	return al1 - ah2
}

// joinGeneral computes the per-side border promotion and extremal bound
// for joining two overlapping (low,high,borders) triples, following
// lib_interval_tree's dynamic::join: same border on a side promotes
// trivially; a mixed open/closed side picks whichever bound is more
// extreme once the open bound's closed-equivalent is compared against
// the closed bound.
func joinGeneral[V Number](l1, h1 V, lb1, rb1 Border, l2, h2 V, lb2, rb2 Border) (low, high V, left, right Border) {
	if lb1 == lb2 || (anyClosed(lb1) && anyClosed(lb2)) {
		left = borderPromote(lb1, lb2)
		low = minOf(l1, l2)
	} else {
		openLow, openBorder, closedLow, closedBorder := l1, lb1, l2, lb2
		if lb1 != BorderOpen {
			openLow, openBorder, closedLow, closedBorder = l2, lb2, l1, lb1
		}
		openAdjusted := openLow + 1
		switch {
		case openAdjusted == closedLow:
			left, low = closedBorder, closedLow
		case openLow < closedLow:
			left, low = openBorder, openLow
		default:
			left, low = closedBorder, closedLow
		}
	}

	if rb1 == rb2 || (anyClosed(rb1) && anyClosed(rb2)) {
		right = borderPromote(rb1, rb2)
		high = maxOf(h1, h2)
	} else {
		openHigh, openBorder, closedHigh, closedBorder := h1, rb1, h2, rb2
		if rb1 != BorderOpen {
			openHigh, openBorder, closedHigh, closedBorder = h2, rb2, h1, rb1
		}
		openAdjusted := openHigh - 1
		switch {
		case openAdjusted == closedHigh:
			right, high = closedBorder, closedHigh
		case openHigh > closedHigh:
			right, high = openBorder, openHigh
		default:
			right, high = closedBorder, closedHigh
		}
	}
	return
}

// size returns the number of values covered by [low,high] under kind k.
func size[V Number](k Kind, low, high V, integral bool) V {
	switch k {
	case Closed, ClosedAdjacent:
		if integral {
			return high - low + 1
		}
		return high - low
	case Open:
		if integral {
			return high - low - 1
		}
		return high - low
	case LeftOpen, RightOpen:
		return high - low
	default:
		lb, rb := borders(k)
		return sizeGeneral(low, high, lb, rb, integral)
	}
}

func sizeGeneral[V Number](low, high V, lb, rb Border, integral bool) V {
	l, r := lb, rb
	if l == BorderClosedAdjacent {
		l = BorderClosed
	}
	if r == BorderClosedAdjacent {
		r = BorderClosed
	}
	if l == r {
		if l == BorderOpen {
			if integral {
				return high - low - 1
			}
			return high - low
		}
		if integral {
			return high - low + 1
		}
		return high - low
	}
	return high - low
}
