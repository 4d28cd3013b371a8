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

import "fmt"

// countNodes returns the number of reachable nodes under n, mirroring
// llrb_test.go's isBST/isBalanced split of the red-black invariants into
// independent recursive checks.
func countNodes[V Number](n *Node[V]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.Left) + countNodes(n.Right)
}

func checkParentLinks[V Number](n *Node[V]) error {
	if n == nil {
		return nil
	}
	if n.Left != nil {
		if n.Left.Parent != n {
			return fmt.Errorf("node %v: left child's parent link is wrong", n.Interval)
		}
		if err := checkParentLinks(n.Left); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if n.Right.Parent != n {
			return fmt.Errorf("node %v: right child's parent link is wrong", n.Interval)
		}
		if err := checkParentLinks(n.Right); err != nil {
			return err
		}
	}
	return nil
}

func checkAugmentation[V Number](n *Node[V]) error {
	if n == nil {
		return nil
	}
	want := n.Interval.High
	if n.Left != nil && n.Left.Max > want {
		want = n.Left.Max
	}
	if n.Right != nil && n.Right.Max > want {
		want = n.Right.Max
	}
	if n.Max != want {
		return fmt.Errorf("node %v: max is %v, want %v", n.Interval, n.Max, want)
	}
	if err := checkAugmentation(n.Left); err != nil {
		return err
	}
	return checkAugmentation(n.Right)
}

func checkRedBlack[V Number](n *Node[V]) (blackHeight int, err error) {
	if n == nil {
		return 1, nil
	}
	if n.Color == Red && (n.Left.color() == Red || n.Right.color() == Red) {
		return 0, fmt.Errorf("node %v: red node has a red child", n.Interval)
	}
	lh, err := checkRedBlack(n.Left)
	if err != nil {
		return 0, err
	}
	rh, err := checkRedBlack(n.Right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("node %v: black height mismatch, left=%d right=%d", n.Interval, lh, rh)
	}
	if n.Color == Black {
		lh++
	}
	return lh, nil
}

// checkInvariants verifies every universal invariant spec.md §8 lists:
// BST order on Low, augmentation, red-black properties, parent-link
// consistency and size reflecting the reachable node count.
func checkInvariants[V Number](t *Tree[V]) error {
	if t.Root.color() != Black {
		return fmt.Errorf("root is not black")
	}
	if n := countNodes(t.Root); n != t.size {
		return fmt.Errorf("size is %d, reachable nodes are %d", t.size, n)
	}
	if err := checkParentLinks(t.Root); err != nil {
		return err
	}
	if err := checkAugmentation(t.Root); err != nil {
		return err
	}
	if _, err := checkRedBlack(t.Root); err != nil {
		return err
	}

	first := true
	var prev V
	for it := t.Begin(); !it.End(); _ = it.Next() {
		iv, err := it.Interval()
		if err != nil {
			return err
		}
		if !first && iv.Low < prev {
			return fmt.Errorf("in-order Low sequence is not sorted: %v before %v", prev, iv.Low)
		}
		prev = iv.Low
		first = false
	}
	return nil
}

// lows returns the in-order sequence of Low values, the sequence S1-style
// scenarios assert against.
func lows[V Number](t *Tree[V]) []V {
	var out []V
	for it := t.Begin(); !it.End(); _ = it.Next() {
		iv, _ := it.Interval()
		out = append(out, iv.Low)
	}
	return out
}

// intervals returns the in-order sequence of stored intervals.
func intervals[V Number](t *Tree[V]) []Interval[V] {
	var out []Interval[V]
	for it := t.Begin(); !it.End(); _ = it.Next() {
		iv, _ := it.Interval()
		out = append(out, iv)
	}
	return out
}
