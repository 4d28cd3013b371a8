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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHooksFireOnInsert(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	var afterInsertNode *Node[int]
	var fixupBracket int
	tr.Hooks.OnAfterInsert = func(_ *Tree[int], n *Node[int]) { afterInsertNode = n }
	tr.Hooks.OnBeforeInsertFixup = func(_ *Tree[int], _ *Node[int]) { fixupBracket++ }
	tr.Hooks.OnAfterInsertFixup = func(_ *Tree[int], _ *Node[int]) { fixupBracket-- }

	it := tr.Insert(NewSafe(1, 2, Closed))
	assert.NotNil(t, afterInsertNode)
	assert.Equal(t, it.Node(), afterInsertNode)
	assert.Equal(t, 0, fixupBracket, "before/after fixup hooks should bracket evenly")
}

func TestHooksFireOnErase(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	it := tr.Insert(NewSafe(1, 2, Closed))
	var before, after bool
	tr.Hooks.OnBeforeEraseFixup = func(_ *Tree[int], _, _ *Node[int], _ bool) { before = true }
	tr.Hooks.OnAfterEraseFixup = func(_ *Tree[int], _, _ *Node[int], _ bool) { after = true }

	require := assert.New(t)
	err := tr.Erase(it)
	require.NoError(err)
	require.True(before)
	require.True(after)
}

func TestHooksFireOnFind(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	tr.Insert(NewSafe(1, 2, Closed))
	tr.Insert(NewSafe(5, 6, Closed))

	visited := 0
	tr.Hooks.OnFind = func(_ *Tree[int], _ *Node[int], _ Interval[int], _ CompareFunc[int]) {
		visited++
	}
	it := tr.Find(NewSafe(5, 6, Closed))
	assert.False(t, it.End())
	assert.Greater(t, visited, 0)
}

func TestHooksFireOnOverlapFind(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	tr.Insert(NewSafe(0, 5, Closed))
	tr.Insert(NewSafe(10, 15, Closed))

	visited := 0
	tr.Hooks.OnOverlapFind = func(_ *Tree[int], _ *Node[int], _ Interval[int]) {
		visited++
	}
	it := tr.OverlapFind(NewSafe(3, 3, Closed), false)
	assert.False(t, it.End())
	assert.Greater(t, visited, 0)
}

func TestHooksOnDestroyFiresOnClear(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	tr.Insert(NewSafe(1, 2, Closed))
	destroyed := false
	tr.Hooks.OnDestroy = func(_ *Tree[int]) { destroyed = true }
	tr.Clear()
	assert.True(t, destroyed)
	assert.Equal(t, 0, tr.Size())
}

func TestHooksRecalculateMaxBracket(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	var depth int
	tr.Hooks.OnBeforeRecalculateMax = func(_ *Tree[int], _ *Node[int]) { depth++ }
	tr.Hooks.OnAfterRecalculateMax = func(_ *Tree[int], _ *Node[int]) { depth-- }

	for i := 0; i < 20; i++ {
		tr.Insert(NewSafe(i, i+1, Closed))
	}
	assert.Equal(t, 0, depth)
}

func TestDefaultHooksAreNoOp(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	assert.NotPanics(t, func() {
		tr.Insert(NewSafe(1, 2, Closed))
		tr.Insert(NewSafe(3, 4, Closed))
		tr.Find(NewSafe(1, 2, Closed))
		tr.OverlapFind(NewSafe(1, 2, Closed), false)
		tr.Clear()
	})
}
