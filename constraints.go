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

// Package intervaltree implements an augmented red-black search tree whose
// elements are intervals over an ordered numeric domain.
package intervaltree

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a tree's value domain may be instantiated
// over: any signed or unsigned integer, or any floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// isIntegral reports whether V's instantiated type is an integer kind,
// as opposed to floating point. Interval size and the dynamic kind's
// arithmetic both branch on this.
func isIntegral[V Number](v V) bool {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	default:
		return true
	}
}

func minOf[V Number](a, b V) V {
	if a < b {
		return a
	}
	return b
}

func maxOf[V Number](a, b V) V {
	if a > b {
		return a
	}
	return b
}
