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

func TestNodeColorOfNilIsBlack(t *testing.T) {
	t.Parallel()

	var n *Node[int]
	assert.Equal(t, Black, n.color())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "Red", Red.String())
}

func TestNodeStructuralPredicates(t *testing.T) {
	t.Parallel()

	root := &Node[int]{Interval: NewSafe(5, 5, Closed)}
	left := &Node[int]{Interval: NewSafe(1, 1, Closed), Parent: root}
	right := &Node[int]{Interval: NewSafe(9, 9, Closed), Parent: root}
	root.Left, root.Right = left, right

	assert.True(t, root.IsRoot())
	assert.False(t, left.IsRoot())
	assert.True(t, left.IsLeft())
	assert.False(t, left.IsRight())
	assert.True(t, right.IsRight())
	assert.False(t, right.IsLeft())

	assert.Equal(t, 0, root.Height())
	assert.Equal(t, 1, left.Height())
	assert.Equal(t, 1, right.Height())
}

func TestRecomputeMax(t *testing.T) {
	t.Parallel()

	n := &Node[int]{Interval: NewSafe(0, 5, Closed)}
	n.Left = &Node[int]{Interval: NewSafe(0, 2, Closed), Max: 2}
	n.Right = &Node[int]{Interval: NewSafe(6, 20, Closed), Max: 20}
	recomputeMax(n)
	assert.Equal(t, 20, n.Max)

	n.Right = nil
	recomputeMax(n)
	assert.Equal(t, 5, n.Max)
}
