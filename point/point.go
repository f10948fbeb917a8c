// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package point - a two dimensional point over any element type
//
// distance operations exist only for int32 and float64 points
package point

import (
	"fmt"
	"math"
)

// Point - x and y of the same type
type Point[T any] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// New - create a point
func New[T any](x T, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// String - for the fmt package
func (p Point[T]) String() string {
	return fmt.Sprintf("Point { x: %v, y: %v }", p.X, p.Y)
}

// Equal - structural equality for comparable element types
func Equal[T comparable](a Point[T], b Point[T]) bool {
	return a == b
}

// ManhattanDistance - |Δx| + |Δy| in int32 arithmetic
func ManhattanDistance(a Point[int32], b Point[int32]) int32 {
	return abs32(a.X-b.X) + abs32(a.Y-b.Y)
}

// Distance - euclidean distance
func Distance(a Point[float64], b Point[float64]) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
