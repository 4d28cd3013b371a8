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

// CompareFunc reports whether a and b are considered equal by Find and
// FindAll. The default, used when a nil CompareFunc is supplied, is
// structural Interval equality.
type CompareFunc[V Number] func(a, b Interval[V]) bool

func defaultCompare[V Number](a, b Interval[V]) bool {
	return a.Low == b.Low && a.High == b.High && a.Kind == b.Kind &&
		a.LeftBorder == b.LeftBorder && a.RightBorder == b.RightBorder
}

// Hooks is a set of nullable observer callbacks a Tree invokes at
// well-defined mutation and search points. A zero-valued Hooks is the
// no-op set: every field is checked for nil before it is called, and a
// hook must never mutate the tree it observes.
type Hooks[V Number] struct {
	// OnDestroy fires when a tree is cleared.
	OnDestroy func(t *Tree[V])

	// OnAfterInsert fires once insert has linked the new node in, before
	// fixup runs.
	OnAfterInsert func(t *Tree[V], n *Node[V])

	// OnBeforeInsertFixup/OnAfterInsertFixup bracket the insert fixup
	// loop.
	OnBeforeInsertFixup func(t *Tree[V], n *Node[V])
	OnAfterInsertFixup  func(t *Tree[V], n *Node[V])

	// OnBeforeEraseFixup/OnAfterEraseFixup bracket the erase fixup loop.
	// x is the node that replaced the erased position (possibly nil);
	// xParent is its parent at the point fixup begins; otherIsLeft
	// reports whether x's sibling is the left child of xParent.
	OnBeforeEraseFixup func(t *Tree[V], x, xParent *Node[V], otherIsLeft bool)
	OnAfterEraseFixup  func(t *Tree[V], x, xParent *Node[V], otherIsLeft bool)

	// OnBeforeRecalculateMax/OnAfterRecalculateMax bracket each node's
	// Max recomputation.
	OnBeforeRecalculateMax func(t *Tree[V], n *Node[V])
	OnAfterRecalculateMax  func(t *Tree[V], n *Node[V])

	// OnFind/OnFindAll fire once per node visited during Find/FindAll.
	OnFind    func(t *Tree[V], n *Node[V], ival Interval[V], cmp CompareFunc[V])
	OnFindAll func(t *Tree[V], n *Node[V], ival Interval[V], cmp CompareFunc[V])

	// OnOverlapFind/OnOverlapFindAll fire once per node visited during
	// OverlapFind/OverlapFindAll.
	OnOverlapFind    func(t *Tree[V], n *Node[V], ival Interval[V])
	OnOverlapFindAll func(t *Tree[V], n *Node[V], ival Interval[V])
}

func (h *Hooks[V]) destroy(t *Tree[V]) {
	if h.OnDestroy != nil {
		h.OnDestroy(t)
	}
}

func (h *Hooks[V]) afterInsert(t *Tree[V], n *Node[V]) {
	if h.OnAfterInsert != nil {
		h.OnAfterInsert(t, n)
	}
}

func (h *Hooks[V]) beforeInsertFixup(t *Tree[V], n *Node[V]) {
	if h.OnBeforeInsertFixup != nil {
		h.OnBeforeInsertFixup(t, n)
	}
}

func (h *Hooks[V]) afterInsertFixup(t *Tree[V], n *Node[V]) {
	if h.OnAfterInsertFixup != nil {
		h.OnAfterInsertFixup(t, n)
	}
}

func (h *Hooks[V]) beforeEraseFixup(t *Tree[V], x, xParent *Node[V], otherIsLeft bool) {
	if h.OnBeforeEraseFixup != nil {
		h.OnBeforeEraseFixup(t, x, xParent, otherIsLeft)
	}
}

func (h *Hooks[V]) afterEraseFixup(t *Tree[V], x, xParent *Node[V], otherIsLeft bool) {
	if h.OnAfterEraseFixup != nil {
		h.OnAfterEraseFixup(t, x, xParent, otherIsLeft)
	}
}

func (h *Hooks[V]) beforeRecalculateMax(t *Tree[V], n *Node[V]) {
	if h.OnBeforeRecalculateMax != nil {
		h.OnBeforeRecalculateMax(t, n)
	}
}

func (h *Hooks[V]) afterRecalculateMax(t *Tree[V], n *Node[V]) {
	if h.OnAfterRecalculateMax != nil {
		h.OnAfterRecalculateMax(t, n)
	}
}

func (h *Hooks[V]) find(t *Tree[V], n *Node[V], ival Interval[V], cmp CompareFunc[V]) {
	if h.OnFind != nil {
		h.OnFind(t, n, ival, cmp)
	}
}

func (h *Hooks[V]) findAll(t *Tree[V], n *Node[V], ival Interval[V], cmp CompareFunc[V]) {
	if h.OnFindAll != nil {
		h.OnFindAll(t, n, ival, cmp)
	}
}

func (h *Hooks[V]) overlapFind(t *Tree[V], n *Node[V], ival Interval[V]) {
	if h.OnOverlapFind != nil {
		h.OnOverlapFind(t, n, ival)
	}
}

func (h *Hooks[V]) overlapFindAll(t *Tree[V], n *Node[V], ival Interval[V]) {
	if h.OnOverlapFindAll != nil {
		h.OnOverlapFindAll(t, n, ival)
	}
}
