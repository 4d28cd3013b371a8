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

import "errors"

// ErrInvalidBounds is returned when an interval is constructed in strict
// mode with Low greater than High.
var ErrInvalidBounds = errors.New("intervaltree: invalid bounds: low > high")

// ErrOutOfRange is returned when an iterator is dereferenced, or advanced
// with Next or Prev, while equal to a tree's end or rend sentinel.
// Parent, Left and Right of such an iterator return the sentinel instead.
var ErrOutOfRange = errors.New("intervaltree: iterator out of range")

// ErrAllocationFailure would be returned by insert, copy, punch or
// deoverlap if node allocation failed. Go's garbage collected runtime has
// no recoverable allocation-failure path, so this sentinel is never
// returned; it exists so the error kinds named by this package's design
// match its specification one-for-one.
var ErrAllocationFailure = errors.New("intervaltree: node allocation failure")

// ErrDomainUnsupported is returned when the dynamic or closed-adjacent
// interval kind is requested over a floating point value domain, where
// integer abutment arithmetic is undefined.
var ErrDomainUnsupported = errors.New("intervaltree: dynamic/closed-adjacent kind is unsupported for floating point domains")
