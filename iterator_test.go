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
	"github.com/stretchr/testify/require"
)

func buildOrderedTree(t *testing.T, lows ...int) *Tree[int] {
	t.Helper()
	tr := NewTree[int]()
	for _, l := range lows {
		tr.Insert(NewSafe(l, l+1, Closed))
	}
	return tr
}

func TestIteratorForwardTraversal(t *testing.T) {
	t.Parallel()

	tr := buildOrderedTree(t, 5, 3, 8, 1, 4, 7, 9)
	var got []int
	for it := tr.Begin(); !it.End(); _ = it.Next() {
		iv, err := it.Interval()
		require.NoError(t, err)
		got = append(got, iv.Low)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)
}

func TestIteratorReverseTraversal(t *testing.T) {
	t.Parallel()

	tr := buildOrderedTree(t, 5, 3, 8, 1, 4, 7, 9)
	var got []int
	for it := tr.RBegin(); !it.End(); _ = it.Next() {
		iv, err := it.Interval()
		require.NoError(t, err)
		got = append(got, iv.Low)
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, got)
}

func TestIteratorEndDereferenceFails(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	end := tr.End()
	_, err := end.Interval()
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = end.Max()
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = end.Color()
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, end.Next(), ErrOutOfRange)
	require.ErrorIs(t, end.Prev(), ErrOutOfRange)
}

func TestIteratorRendDereferenceFails(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	rend := tr.REnd()
	_, err := rend.Interval()
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, rend.Next(), ErrOutOfRange)
}

func TestIteratorParentLeftRightNavigation(t *testing.T) {
	t.Parallel()

	tr := buildOrderedTree(t, 5, 3, 8)
	root := tr.Begin()
	for !root.Parent().End() {
		root = root.Parent()
	}
	rootIval, err := root.Interval()
	require.NoError(t, err)
	assert.Equal(t, 5, rootIval.Low)

	left := root.Left()
	require.False(t, left.End())
	leftIval, err := left.Interval()
	require.NoError(t, err)
	assert.Equal(t, 3, leftIval.Low)

	right := root.Right()
	require.False(t, right.End())
	rightIval, err := right.Interval()
	require.NoError(t, err)
	assert.Equal(t, 8, rightIval.Low)

	assert.True(t, left.Left().End())
	assert.True(t, left.Right().End())
}

func TestIteratorEqual(t *testing.T) {
	t.Parallel()

	tr := buildOrderedTree(t, 1, 2, 3)
	a := tr.Begin()
	b := tr.Begin()
	assert.True(t, a.Equal(b))

	_ = b.Next()
	assert.False(t, a.Equal(b))
}

func TestEmptyTreeBeginIsEnd(t *testing.T) {
	t.Parallel()

	tr := NewTree[int]()
	assert.True(t, tr.Begin().End())
	assert.True(t, tr.RBegin().End())
}
