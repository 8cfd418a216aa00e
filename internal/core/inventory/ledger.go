// Package inventory contains the pure business logic for the parts ledger.
// This is part of the Functional Core - no I/O, only pure functions.
package inventory

// Consume returns the on-hand count after consuming qty units.
//
// Underflow is not an error: the physical consumption already happened in
// the field even if the recorded count was wrong, so the count clamps at
// zero instead of rejecting the operation.
func Consume(onHand, qty int) int {
	remaining := onHand - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Restock returns the on-hand count after adding qty units.
func Restock(onHand, qty int) int {
	return onHand + qty
}

// IsLow reports whether a part is below its minimum stock threshold.
func IsLow(onHand, minStock int) bool {
	return onHand < minStock
}
