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

// A Tree is an augmented red-black tree of Intervals, ordered by Low and
// augmented at each node with the maximum High across its subtree. The
// zero value is not usable; construct one with NewTree.
//
// Insert always descends right on an equal-Low tie, but later rotations
// can still leave an equal-Low node as the left child of another: Find
// and FindAll check both children on a tie rather than assuming the
// duplicate always lies to the right. FindNextInSubtree and
// OverlapFindNextInSubtree are a narrower, subtree-scoped continuation
// and only find further matches that remain within the starting node's
// right subtree; see their doc comments.
type Tree[V Number] struct {
	Root  *Node[V]
	Hooks Hooks[V]
	size  int
}

// NewTree returns an empty Tree.
func NewTree[V Number]() *Tree[V] {
	return &Tree[V]{}
}

// Size returns the number of intervals stored in t.
func (t *Tree[V]) Size() int { return t.size }

// Clear removes every interval from t, firing OnDestroy first.
func (t *Tree[V]) Clear() {
	t.Hooks.destroy(t)
	t.Root = nil
	t.size = 0
}

// updateMaxUpward recomputes Max at n and every ancestor of n, innermost
// first, firing OnBeforeRecalculateMax/OnAfterRecalculateMax at each.
func (t *Tree[V]) updateMaxUpward(n *Node[V]) {
	for p := n; p != nil; p = p.Parent {
		t.Hooks.beforeRecalculateMax(t, p)
		recomputeMax(p)
		t.Hooks.afterRecalculateMax(t, p)
	}
}

func (t *Tree[V]) rotateLeft(x *Node[V]) {
	y := x.Right
	x.Right = y.Left
	if y.Left != nil {
		y.Left.Parent = x
	}
	y.Parent = x.Parent
	switch {
	case x.Parent == nil:
		t.Root = y
	case x.IsLeft():
		x.Parent.Left = y
	default:
		x.Parent.Right = y
	}
	y.Left = x
	x.Parent = y

	t.Hooks.beforeRecalculateMax(t, x)
	recomputeMax(x)
	t.Hooks.afterRecalculateMax(t, x)
	t.Hooks.beforeRecalculateMax(t, y)
	recomputeMax(y)
	t.Hooks.afterRecalculateMax(t, y)
}

func (t *Tree[V]) rotateRight(x *Node[V]) {
	y := x.Left
	x.Left = y.Right
	if y.Right != nil {
		y.Right.Parent = x
	}
	y.Parent = x.Parent
	switch {
	case x.Parent == nil:
		t.Root = y
	case x.IsLeft():
		x.Parent.Left = y
	default:
		x.Parent.Right = y
	}
	y.Right = x
	x.Parent = y

	t.Hooks.beforeRecalculateMax(t, x)
	recomputeMax(x)
	t.Hooks.afterRecalculateMax(t, x)
	t.Hooks.beforeRecalculateMax(t, y)
	recomputeMax(y)
	t.Hooks.afterRecalculateMax(t, y)
}

// Insert adds ival to t and returns an iterator to the new node.
func (t *Tree[V]) Insert(ival Interval[V]) Iterator[V] {
	z := &Node[V]{Interval: ival, Color: Red, Max: ival.High}

	var parent *Node[V]
	cur := t.Root
	for cur != nil {
		parent = cur
		if ival.Low < cur.Interval.Low {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	z.Parent = parent
	switch {
	case parent == nil:
		t.Root = z
	case ival.Low < parent.Interval.Low:
		parent.Left = z
	default:
		parent.Right = z
	}
	t.size++

	t.updateMaxUpward(z)
	t.Hooks.afterInsert(t, z)
	t.Hooks.beforeInsertFixup(t, z)
	t.insertFixup(z)
	t.Hooks.afterInsertFixup(t, z)

	return iterFor(t, z)
}

func (t *Tree[V]) insertFixup(z *Node[V]) {
	for z.Parent.color() == Red {
		grandparent := z.Parent.Parent
		if z.Parent == grandparent.Left {
			uncle := grandparent.Right
			if uncle.color() == Red {
				z.Parent.Color = Black
				uncle.Color = Black
				grandparent.Color = Red
				z = grandparent
				continue
			}
			if z == z.Parent.Right {
				z = z.Parent
				t.rotateLeft(z)
			}
			z.Parent.Color = Black
			z.Parent.Parent.Color = Red
			t.rotateRight(z.Parent.Parent)
		} else {
			uncle := grandparent.Left
			if uncle.color() == Red {
				z.Parent.Color = Black
				uncle.Color = Black
				grandparent.Color = Red
				z = grandparent
				continue
			}
			if z == z.Parent.Left {
				z = z.Parent
				t.rotateRight(z)
			}
			z.Parent.Color = Black
			z.Parent.Parent.Color = Red
			t.rotateLeft(z.Parent.Parent)
		}
	}
	t.Root.Color = Black
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v in u's parent, leaving u's own Left/Right untouched.
func (t *Tree[V]) transplant(u, v *Node[V]) {
	switch {
	case u.Parent == nil:
		t.Root = v
	case u.IsLeft():
		u.Parent.Left = v
	default:
		u.Parent.Right = v
	}
	if v != nil {
		v.Parent = u.Parent
	}
}

// Erase removes the interval it refers to, failing with ErrOutOfRange
// if it is End().
func (t *Tree[V]) Erase(it Iterator[V]) error {
	z := it.node
	if z == nil {
		return ErrOutOfRange
	}

	y := z
	yOriginalColor := y.Color
	var x, xParent *Node[V]
	var xIsLeft bool

	switch {
	case z.Left == nil:
		x = z.Right
		xParent = z.Parent
		xIsLeft = z.IsLeft()
		t.transplant(z, z.Right)
	case z.Right == nil:
		x = z.Left
		xParent = z.Parent
		xIsLeft = z.IsLeft()
		t.transplant(z, z.Left)
	default:
		y = leftmost(z.Right)
		yOriginalColor = y.Color
		x = y.Right
		if y.Parent == z {
			xParent = y
			xIsLeft = false
		} else {
			xParent = y.Parent
			xIsLeft = true
			t.transplant(y, y.Right)
			y.Right = z.Right
			y.Right.Parent = y
		}
		t.transplant(z, y)
		y.Left = z.Left
		y.Left.Parent = y
		y.Color = z.Color
	}

	t.updateMaxUpward(xParent)
	t.Hooks.beforeEraseFixup(t, x, xParent, !xIsLeft)
	if yOriginalColor == Black {
		t.eraseFixup(x, xParent, xIsLeft)
	}
	t.Hooks.afterEraseFixup(t, x, xParent, !xIsLeft)
	t.size--
	return nil
}

func (t *Tree[V]) eraseFixup(x, xParent *Node[V], xIsLeft bool) {
	for x != t.Root && x.color() == Black {
		if xIsLeft {
			w := xParent.Right
			if w.color() == Red {
				w.Color = Black
				xParent.Color = Red
				t.rotateLeft(xParent)
				w = xParent.Right
			}
			if w.Left.color() == Black && w.Right.color() == Black {
				w.Color = Red
				x = xParent
				xParent = x.Parent
				if x != nil {
					xIsLeft = x.IsLeft()
				}
				continue
			}
			if w.Right.color() == Black {
				w.Left.Color = Black
				w.Color = Red
				t.rotateRight(w)
				w = xParent.Right
			}
			w.Color = xParent.Color
			xParent.Color = Black
			w.Right.Color = Black
			t.rotateLeft(xParent)
			x = t.Root
			xParent = nil
		} else {
			w := xParent.Left
			if w.color() == Red {
				w.Color = Black
				xParent.Color = Red
				t.rotateRight(xParent)
				w = xParent.Left
			}
			if w.Right.color() == Black && w.Left.color() == Black {
				w.Color = Red
				x = xParent
				xParent = x.Parent
				if x != nil {
					xIsLeft = x.IsLeft()
				}
				continue
			}
			if w.Left.color() == Black {
				w.Right.Color = Black
				w.Color = Red
				t.rotateLeft(w)
				w = xParent.Left
			}
			w.Color = xParent.Color
			xParent.Color = Black
			w.Left.Color = Black
			t.rotateRight(xParent)
			x = t.Root
			xParent = nil
		}
	}
	if x != nil {
		x.Color = Black
	}
}

func resolveCompare[V Number](cmp []CompareFunc[V]) CompareFunc[V] {
	if len(cmp) > 0 && cmp[0] != nil {
		return cmp[0]
	}
	return defaultCompare[V]
}

// findWalk descends on Low. Insert always sends a tied Low to the right
// child of the node it ties with, but red-black rotations reshuffle
// subtrees without regard to that tie-break: a rotation can leave an
// equal-Low node as the left child of another equal-Low node. So on a
// tie this still searches n.Left before n itself, rather than assuming
// every equal-Low match lies to the right; each recursive call redoes
// the Low comparison, so this costs nothing beyond the tied region
// itself.
func (t *Tree[V]) findWalk(n *Node[V], ival Interval[V], cmp CompareFunc[V], all bool, visit func(*Node[V]) bool) bool {
	if n == nil {
		return true
	}
	if all {
		t.Hooks.findAll(t, n, ival, cmp)
	} else {
		t.Hooks.find(t, n, ival, cmp)
	}
	switch {
	case ival.Low < n.Interval.Low:
		return t.findWalk(n.Left, ival, cmp, all, visit)
	case ival.Low > n.Interval.Low:
		return t.findWalk(n.Right, ival, cmp, all, visit)
	}
	if !t.findWalk(n.Left, ival, cmp, all, visit) {
		return false
	}
	if cmp(n.Interval, ival) {
		if !visit(n) {
			return false
		}
		if !all {
			return false
		}
	}
	return t.findWalk(n.Right, ival, cmp, all, visit)
}

// Find returns an iterator to the first interval equal to ival under cmp
// (structural equality if cmp is omitted), or End() if none matches.
func (t *Tree[V]) Find(ival Interval[V], cmp ...CompareFunc[V]) Iterator[V] {
	c := resolveCompare(cmp)
	var found *Node[V]
	t.findWalk(t.Root, ival, c, false, func(n *Node[V]) bool {
		found = n
		return false
	})
	return iterFor(t, found)
}

// FindNextInSubtree continues a Find from just past it, searching only
// it's right subtree. Matches that rebalancing has placed outside that
// subtree are not found this way; prefer FindAll when every duplicate
// matters.
func (t *Tree[V]) FindNextInSubtree(it Iterator[V], ival Interval[V], cmp ...CompareFunc[V]) Iterator[V] {
	if it.node == nil {
		return it
	}
	c := resolveCompare(cmp)
	var found *Node[V]
	t.findWalk(it.node.Right, ival, c, false, func(n *Node[V]) bool {
		found = n
		return false
	})
	return iterFor(t, found)
}

// FindAll invokes visit, in ascending Low order, for every interval
// equal to ival under cmp. visit returning false stops the walk early.
func (t *Tree[V]) FindAll(ival Interval[V], visit func(Iterator[V]) bool, cmp ...CompareFunc[V]) {
	c := resolveCompare(cmp)
	t.findWalk(t.Root, ival, c, true, func(n *Node[V]) bool {
		return visit(iterFor(t, n))
	})
}

// overlapWalk prunes on the subtree-max augmentation: it only descends
// left when the left subtree could possibly reach ival.Low, and only
// descends right when n itself does not already exceed ival.High. On
// integral domains a subtree that only abuts ival by one step is visited
// too, so ClosedAdjacent borders' abutment overlaps are not pruned away.
func (t *Tree[V]) overlapWalk(n *Node[V], ival Interval[V], exclusive, all bool, visit func(*Node[V]) bool) bool {
	if n == nil {
		return true
	}
	var slack V
	if isIntegral(slack) {
		slack = 1
	}
	if n.Left != nil && (n.Left.Max >= ival.Low || n.Left.Max+slack == ival.Low) {
		if !t.overlapWalk(n.Left, ival, exclusive, all, visit) {
			return false
		}
	}

	var match bool
	if exclusive {
		match = n.Interval.OverlapsExclusive(ival)
	} else {
		match = n.Interval.Overlaps(ival)
	}
	if all {
		t.Hooks.overlapFindAll(t, n, ival)
	} else {
		t.Hooks.overlapFind(t, n, ival)
	}
	if match {
		if !visit(n) {
			return false
		}
		if !all {
			return false
		}
	}

	if n.Right != nil && (n.Interval.Low <= ival.High || n.Interval.Low-slack == ival.High) {
		return t.overlapWalk(n.Right, ival, exclusive, all, visit)
	}
	return true
}

// OverlapFind returns an iterator to one interval overlapping ival, or
// End() if none overlaps. exclusive selects strict (touching borders do
// not count) overlap.
func (t *Tree[V]) OverlapFind(ival Interval[V], exclusive bool) Iterator[V] {
	var found *Node[V]
	t.overlapWalk(t.Root, ival, exclusive, false, func(n *Node[V]) bool {
		found = n
		return false
	})
	return iterFor(t, found)
}

// OverlapFindNextInSubtree continues an overlap search from just past
// it, restricted to it's right subtree. Prefer OverlapFindAll when
// every overlapping interval matters, not just those reachable this way.
func (t *Tree[V]) OverlapFindNextInSubtree(it Iterator[V], ival Interval[V], exclusive bool) Iterator[V] {
	if it.node == nil {
		return it
	}
	var found *Node[V]
	t.overlapWalk(it.node.Right, ival, exclusive, false, func(n *Node[V]) bool {
		found = n
		return false
	})
	return iterFor(t, found)
}

// OverlapFindAll invokes visit, in ascending Low order, for every
// interval overlapping ival. visit returning false stops the walk
// early.
func (t *Tree[V]) OverlapFindAll(ival Interval[V], visit func(Iterator[V]) bool, exclusive bool) {
	t.overlapWalk(t.Root, ival, exclusive, true, func(n *Node[V]) bool {
		return visit(iterFor(t, n))
	})
}

// InsertOverlap inserts ival, first merging it with any interval it
// overlaps via Interval.Join. When recurse is true, merging repeats
// until the merged interval no longer overlaps anything left in t;
// otherwise at most one existing interval is merged in. Any extra
// intervals a Join produces beyond the first are inserted verbatim.
func (t *Tree[V]) InsertOverlap(ival Interval[V], exclusive, recurse bool) (Iterator[V], error) {
	merged := ival
	for {
		var hit *Node[V]
		t.overlapWalk(t.Root, merged, exclusive, false, func(n *Node[V]) bool {
			hit = n
			return false
		})
		if hit == nil {
			break
		}
		joined := hit.Interval.Join(merged)
		if err := t.Erase(iterFor(t, hit)); err != nil {
			return Iterator[V]{}, err
		}
		if len(joined) == 0 {
			break
		}
		merged = joined[0]
		for _, extra := range joined[1:] {
			t.Insert(extra)
		}
		if !recurse {
			break
		}
	}
	return t.Insert(merged), nil
}

// collectMerged returns the minimal set of disjoint intervals covering
// everything stored in t, in ascending Low order.
func (t *Tree[V]) collectMerged() []Interval[V] {
	var all []Interval[V]
	for it := t.Begin(); !it.End(); it.Next() {
		iv, _ := it.Interval()
		all = append(all, iv)
	}
	if len(all) == 0 {
		return nil
	}
	merged := make([]Interval[V], 0, len(all))
	cur := all[0]
	for _, iv := range all[1:] {
		if cur.Overlaps(iv) {
			cur = cur.Join(iv)[0]
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	merged = append(merged, cur)
	return merged
}

// Deoverlap replaces t's contents with the minimal disjoint set of
// intervals covering everything it held.
func (t *Tree[V]) Deoverlap() {
	merged := t.collectMerged()
	t.Clear()
	for _, iv := range merged {
		t.Insert(iv)
	}
}

// DeoverlapCopy returns a new Tree holding the minimal disjoint set of
// intervals covering everything t holds, leaving t unmodified.
func (t *Tree[V]) DeoverlapCopy() *Tree[V] {
	merged := t.collectMerged()
	out := NewTree[V]()
	for _, iv := range merged {
		out.Insert(iv)
	}
	return out
}

// gapAdjacent computes the boundary value and Border a gap takes on the
// side that touches a stored interval whose border there is b: an Open
// border needs no shift (the neighbor already excludes that value) and
// yields a Closed gap edge; a Closed or ClosedAdjacent border shifts the
// value one step away from the neighbor (on integral domains only) so
// the gap itself does not touch it, and ClosedAdjacent is preserved
// rather than collapsed to Closed so a later InsertOverlap still sees
// the two as adjacent and merges them back together. shiftUp selects
// the direction: true moves the value up (away from a neighbor below
// the gap), false moves it down (away from a neighbor above the gap).
func gapAdjacent[V Number](v V, b Border, integral, shiftUp bool) (V, Border) {
	switch b {
	case BorderOpen:
		return v, BorderClosed
	case BorderClosedAdjacent:
		if !integral {
			return v, BorderClosedAdjacent
		}
		if shiftUp {
			return v + 1, BorderClosedAdjacent
		}
		return v - 1, BorderClosedAdjacent
	default:
		if !integral {
			return v, BorderClosed
		}
		if shiftUp {
			return v + 1, BorderClosed
		}
		return v - 1, BorderClosed
	}
}

// gapKind picks the named Kind matching the (left, right) Border pair a
// gap's two edges ended up with, falling back to Dynamic when no static
// Kind's fixed border pair matches (the two edges of a gap can take
// independent borders when its neighbors do, which only Dynamic can
// express).
func gapKind(lb, rb Border) Kind {
	switch {
	case lb == BorderClosed && rb == BorderClosed:
		return Closed
	case lb == BorderOpen && rb == BorderOpen:
		return Open
	case lb == BorderOpen && rb == BorderClosed:
		return LeftOpen
	case lb == BorderClosed && rb == BorderOpen:
		return RightOpen
	case lb == BorderClosedAdjacent && rb == BorderClosedAdjacent:
		return ClosedAdjacent
	default:
		return Dynamic
	}
}

// newGap builds the Interval for one punched gap, choosing its Kind from
// the edge Borders gapAdjacent computed rather than hardcoding one.
func newGap[V Number](low, high V, lb, rb Border) Interval[V] {
	k := gapKind(lb, rb)
	if k == Dynamic {
		return Interval[V]{Low: low, High: high, Kind: Dynamic, LeftBorder: lb, RightBorder: rb}
	}
	left, right := borders(k)
	return Interval[V]{Low: low, High: high, Kind: k, LeftBorder: left, RightBorder: right}
}

// punch derives each gap's borders from the Kind (or, for Dynamic, the
// per-interval Border flags) of the stored intervals it sits between,
// per spec.md §4.5.9: an Open-bordered neighbor contributes no shift to
// its adjacent gap edge, while Closed/ClosedAdjacent neighbors push the
// edge one step away so the gap does not itself touch them.
func (t *Tree[V]) punch(bound *Interval[V]) []Interval[V] {
	merged := t.collectMerged()
	var zero V
	integral := isIntegral(zero)

	var gaps []Interval[V]
	if len(merged) == 0 {
		if bound != nil {
			gaps = append(gaps, *bound)
		}
		return gaps
	}

	cursor := merged[0]
	if bound != nil && bound.Low < merged[0].Low {
		firstLeft, _ := merged[0].effectiveBorders()
		gapHigh, highBorder := gapAdjacent(merged[0].Low, firstLeft, integral, false)
		if gapHigh > bound.High {
			gapHigh, highBorder = bound.High, BorderClosed
		}
		if bound.Low <= gapHigh {
			gaps = append(gaps, newGap(bound.Low, gapHigh, BorderClosed, highBorder))
		}
	}
	for _, iv := range merged[1:] {
		_, cursorRight := cursor.effectiveBorders()
		ivLeft, _ := iv.effectiveBorders()
		gapLow, lowBorder := gapAdjacent(cursor.High, cursorRight, integral, true)
		gapHigh, highBorder := gapAdjacent(iv.Low, ivLeft, integral, false)
		if bound != nil && gapLow < bound.Low {
			gapLow, lowBorder = bound.Low, BorderClosed
		}
		if bound != nil && gapHigh > bound.High {
			gapHigh, highBorder = bound.High, BorderClosed
		}
		if gapLow <= gapHigh {
			gaps = append(gaps, newGap(gapLow, gapHigh, lowBorder, highBorder))
		}
		if iv.High > cursor.High {
			cursor = iv
		}
	}
	if bound != nil && bound.High > cursor.High {
		_, cursorRight := cursor.effectiveBorders()
		gapLow, lowBorder := gapAdjacent(cursor.High, cursorRight, integral, true)
		if gapLow < bound.Low {
			gapLow, lowBorder = bound.Low, BorderClosed
		}
		if gapLow <= bound.High {
			gaps = append(gaps, newGap(gapLow, bound.High, lowBorder, BorderClosed))
		}
	}
	return gaps
}

// Punch returns the gaps strictly between the intervals stored in t, in
// ascending order. It never reports a gap before the first or after the
// last stored interval.
func (t *Tree[V]) Punch() []Interval[V] {
	return t.punch(nil)
}

// PunchRange returns the gaps within bound not covered by any interval
// stored in t, including the portions of bound before the first and
// after the last interval that intersects it.
func (t *Tree[V]) PunchRange(bound Interval[V]) []Interval[V] {
	b := bound
	return t.punch(&b)
}

// EraseRange removes every interval overlapping r. When reinsertSlices
// is true, the portion of each removed interval outside r (per
// Interval.Slice) is reinserted via InsertOverlap rather than Insert, so
// that slices which themselves abut or overlap (two removed intervals
// sharing the same remainder on one side of r) collapse into one
// interval instead of being left as redundant duplicates.
func (t *Tree[V]) EraseRange(r Interval[V], reinsertSlices bool) error {
	var hits []*Node[V]
	t.overlapWalk(t.Root, r, false, true, func(n *Node[V]) bool {
		hits = append(hits, n)
		return true
	})

	var toReinsert []Interval[V]
	for _, n := range hits {
		if reinsertSlices {
			sliced := n.Interval.Slice(r)
			if sliced.Left != nil {
				toReinsert = append(toReinsert, *sliced.Left)
			}
			if sliced.Right != nil {
				toReinsert = append(toReinsert, *sliced.Right)
			}
		}
		if err := t.Erase(iterFor(t, n)); err != nil {
			return err
		}
	}
	for _, iv := range toReinsert {
		if _, err := t.InsertOverlap(iv, false, true); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a new Tree structurally mirroring t: the same node shape,
// colors, Max caches and parent/left/right links, rebuilt with freshly
// allocated nodes. It does not share Hooks with t.
func (t *Tree[V]) Copy() *Tree[V] {
	out := NewTree[V]()
	out.Root = copyNode[V](t.Root, nil)
	out.size = t.size
	return out
}

// Move transfers t's Root and size to a newly returned Tree and leaves t
// empty, without touching or reallocating a single node: they now
// belong to the returned Tree. Unlike Clear, this is not a teardown, so
// OnDestroy does not fire. The returned Tree starts with the zero Hooks
// regardless of t's; assign t.Hooks to it first if the observer set
// itself should move too.
func (t *Tree[V]) Move() *Tree[V] {
	out := &Tree[V]{Root: t.Root, size: t.size}
	t.Root = nil
	t.size = 0
	return out
}

// copyNode recursively clones n and its descendants, reparenting each
// clone to parent.
func copyNode[V Number](n, parent *Node[V]) *Node[V] {
	if n == nil {
		return nil
	}
	c := &Node[V]{Interval: n.Interval, Max: n.Max, Color: n.Color, Parent: parent}
	c.Left = copyNode(n.Left, c)
	c.Right = copyNode(n.Right, c)
	return c
}
