// Package sqfree generates the square-difference-free sequence: the
// lexicographically earliest increasing sequence of non-negative integers,
// starting from 0, in which no two terms differ by a perfect square.
package sqfree

import (
	"fmt"
	"math"
)

// Generator produces the sequence one term at a time. The zero value is
// ready to use.
type Generator struct {
	terms []int
	next  int
}

// NewGenerator creates a Generator positioned before the first term.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next term of the sequence. Terms are chosen greedily:
// the smallest integer above every previous term whose difference with each
// of them is not a perfect square.
func (g *Generator) Next() int {
	for {
		n := g.next
		g.next++
		if g.admissible(n) {
			g.terms = append(g.terms, n)
			return n
		}
	}
}

// admissible reports whether n differs from every chosen term by a
// non-square.
func (g *Generator) admissible(n int) bool {
	for _, term := range g.terms {
		if isSquare(n - term) {
			return false
		}
	}
	return true
}

// isSquare reports whether n is a positive perfect square. math.Sqrt can
// round at the boundary, so the nearby candidates are checked exactly.
func isSquare(n int) bool {
	if n <= 0 {
		return false
	}
	root := int(math.Sqrt(float64(n)))
	for _, c := range [3]int{root - 1, root, root + 1} {
		if c >= 0 && c*c == n {
			return true
		}
	}
	return false
}

// First returns the first n terms of the sequence. It panics if n is
// negative.
func First(n int) []int {
	if n < 0 {
		panic(fmt.Sprintf("sqfree: negative term count %d", n))
	}
	g := NewGenerator()
	out := make([]int, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
