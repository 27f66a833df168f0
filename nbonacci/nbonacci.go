// Package nbonacci classifies sequences by the n-bonacci recurrence they
// follow. A sequence is n-bonacci when every term with at least n
// predecessors is the sum of its n immediate predecessors; the Fibonacci
// numbers are the order-2 case.
//
// Terms are arbitrary-precision decimals, so sequences that outgrow int64
// still classify exactly.
package nbonacci

import "github.com/shopspring/decimal"

// Follows reports whether seq follows the order-n recurrence. Orders under
// 1 are not meaningful and never hold. When no term has n predecessors the
// recurrence holds vacuously.
func Follows(seq []decimal.Decimal, order int) bool {
	if order < 1 {
		return false
	}
	for i := order; i < len(seq); i++ {
		sum := decimal.Zero
		for _, term := range seq[i-order : i] {
			sum = sum.Add(term)
		}
		if !seq[i].Equal(sum) {
			return false
		}
	}
	return true
}

// Order returns the smallest order that seq follows. A sequence vacuously
// follows the order equal to its own length, so the result is always in
// [1, len(seq)] for nonempty sequences. The empty sequence has order 0.
func Order(seq []decimal.Decimal) int {
	for n := 1; n < len(seq); n++ {
		if Follows(seq, n) {
			return n
		}
	}
	return len(seq)
}
