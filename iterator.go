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

// An Iterator is a non-owning handle to a node of a Tree: Next walks in
// ascending order of Low, Prev in descending order. The zero Iterator
// and any Iterator whose Node is nil behave as the tree's end sentinel:
// dereferencing it, or advancing it with Next or Prev, fails with
// ErrOutOfRange. Parent, Left and Right of it return End() and report no
// error.
//
// An Iterator becomes invalid when the node it refers to is erased, or
// when its tree is cleared or destroyed; all other iterators remain
// valid across an unrelated erase.
type Iterator[V Number] struct {
	tree *Tree[V]
	node *Node[V]
}

// Node returns the iterator's underlying node, or nil at end/rend.
func (it Iterator[V]) Node() *Node[V] { return it.node }

// End reports whether it is the tree's end (or rend) sentinel.
func (it Iterator[V]) End() bool { return it.node == nil }

// Equal reports whether it and other refer to the same node.
func (it Iterator[V]) Equal(other Iterator[V]) bool { return it.node == other.node }

// Interval returns the interval stored at it's node, or ErrOutOfRange at
// end/rend.
func (it Iterator[V]) Interval() (Interval[V], error) {
	if it.node == nil {
		var zero Interval[V]
		return zero, ErrOutOfRange
	}
	return it.node.Interval, nil
}

// Max returns the subtree-max cached at it's node, or ErrOutOfRange at
// end/rend.
func (it Iterator[V]) Max() (V, error) {
	if it.node == nil {
		var zero V
		return zero, ErrOutOfRange
	}
	return it.node.Max, nil
}

// Color returns the color of it's node, or ErrOutOfRange at end/rend.
func (it Iterator[V]) Color() (Color, error) {
	if it.node == nil {
		return Black, ErrOutOfRange
	}
	return it.node.Color, nil
}

// Parent returns an iterator to it's node's parent, or End() when it is
// the root or is itself End().
func (it Iterator[V]) Parent() Iterator[V] {
	if it.node == nil {
		return it
	}
	return Iterator[V]{tree: it.tree, node: it.node.Parent}
}

// Left returns an iterator to it's node's left child, or End() when
// absent.
func (it Iterator[V]) Left() Iterator[V] {
	if it.node == nil {
		return it
	}
	return Iterator[V]{tree: it.tree, node: it.node.Left}
}

// Right returns an iterator to it's node's right child, or End() when
// absent.
func (it Iterator[V]) Right() Iterator[V] {
	if it.node == nil {
		return it
	}
	return Iterator[V]{tree: it.tree, node: it.node.Right}
}

// Next advances it to the in-order successor of its current node,
// failing with ErrOutOfRange if it is already End().
func (it *Iterator[V]) Next() error {
	if it.node == nil {
		return ErrOutOfRange
	}
	it.node = successor(it.node)
	return nil
}

// Prev retreats it to the in-order predecessor of its current node,
// failing with ErrOutOfRange if it is already End().
func (it *Iterator[V]) Prev() error {
	if it.node == nil {
		return ErrOutOfRange
	}
	it.node = predecessor(it.node)
	return nil
}

// leftmost returns the leftmost descendant of n, or nil if n is nil.
func leftmost[V Number](n *Node[V]) *Node[V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// rightmost returns the rightmost descendant of n, or nil if n is nil.
func rightmost[V Number](n *Node[V]) *Node[V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// successor returns the in-order successor of n: the leftmost node of
// its right subtree if one exists, else the first ancestor n is not a
// right descendant of.
func successor[V Number](n *Node[V]) *Node[V] {
	if n.Right != nil {
		return leftmost(n.Right)
	}
	cur, p := n, n.Parent
	for p != nil && cur == p.Right {
		cur = p
		p = p.Parent
	}
	return p
}

// predecessor returns the in-order predecessor of n, the mirror image of
// successor.
func predecessor[V Number](n *Node[V]) *Node[V] {
	if n.Left != nil {
		return rightmost(n.Left)
	}
	cur, p := n, n.Parent
	for p != nil && cur == p.Left {
		cur = p
		p = p.Parent
	}
	return p
}

// A ReverseIterator walks a Tree in descending order of Low. It embeds
// Iterator for Parent/Left/Right/Interval/Max/Color/Node access, but its
// own Next/Prev move in the opposite structural direction: Next visits
// the in-order predecessor, Prev the in-order successor.
type ReverseIterator[V Number] struct {
	Iterator[V]
}

// Next retreats the underlying node to its in-order predecessor.
func (it *ReverseIterator[V]) Next() error {
	if it.node == nil {
		return ErrOutOfRange
	}
	it.node = predecessor(it.node)
	return nil
}

// Prev advances the underlying node to its in-order successor.
func (it *ReverseIterator[V]) Prev() error {
	if it.node == nil {
		return ErrOutOfRange
	}
	it.node = successor(it.node)
	return nil
}

// Begin returns an iterator to the leftmost (lowest Low) interval, or
// End() if t is empty.
func (t *Tree[V]) Begin() Iterator[V] {
	return Iterator[V]{tree: t, node: leftmost(t.Root)}
}

// End returns the forward end sentinel.
func (t *Tree[V]) End() Iterator[V] {
	return Iterator[V]{tree: t}
}

// RBegin returns a reverse iterator to the rightmost (highest Low)
// interval, or REnd() if t is empty.
func (t *Tree[V]) RBegin() ReverseIterator[V] {
	return ReverseIterator[V]{Iterator[V]{tree: t, node: rightmost(t.Root)}}
}

// REnd returns the reverse end sentinel.
func (t *Tree[V]) REnd() ReverseIterator[V] {
	return ReverseIterator[V]{Iterator[V]{tree: t}}
}

// iterFor returns a forward Iterator over node n belonging to t.
func iterFor[V Number](t *Tree[V], n *Node[V]) Iterator[V] {
	return Iterator[V]{tree: t, node: n}
}
