package inventory

import (
	"testing"

	"pgregory.net/rapid"
)

func TestConsume(t *testing.T) {
	tests := []struct {
		name   string
		onHand int
		qty    int
		want   int
	}{
		{name: "normal consumption", onHand: 6, qty: 1, want: 5},
		{name: "consume to zero", onHand: 2, qty: 2, want: 0},
		{name: "underflow clamps to zero", onHand: 1, qty: 5, want: 0},
		{name: "consume from empty stays zero", onHand: 0, qty: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Consume(tt.onHand, tt.qty); got != tt.want {
				t.Errorf("Consume(%d, %d) = %d, want %d", tt.onHand, tt.qty, got, tt.want)
			}
		})
	}
}

// For all sequences of Consume calls, on-hand never goes negative.
func TestConsumeNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		onHand := rapid.IntRange(0, 1000).Draw(t, "onHand")
		quantities := rapid.SliceOfN(rapid.IntRange(0, 100), 0, 50).Draw(t, "quantities")

		for _, qty := range quantities {
			next := Consume(onHand, qty)
			if next < 0 {
				t.Fatalf("Consume(%d, %d) = %d, went negative", onHand, qty, next)
			}
			if qty <= onHand && next != onHand-qty {
				t.Fatalf("Consume(%d, %d) = %d, want %d", onHand, qty, next, onHand-qty)
			}
			onHand = next
		}
	})
}

func TestRestock(t *testing.T) {
	if got := Restock(0, 5); got != 5 {
		t.Errorf("Restock(0, 5) = %d, want 5", got)
	}
	if got := Restock(3, 0); got != 3 {
		t.Errorf("Restock(3, 0) = %d, want 3", got)
	}
}

func TestIsLow(t *testing.T) {
	tests := []struct {
		name     string
		onHand   int
		minStock int
		want     bool
	}{
		{name: "below threshold", onHand: 1, minStock: 2, want: true},
		{name: "at threshold is not low", onHand: 2, minStock: 2, want: false},
		{name: "above threshold", onHand: 6, minStock: 2, want: false},
		{name: "zero threshold never low", onHand: 0, minStock: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLow(tt.onHand, tt.minStock); got != tt.want {
				t.Errorf("IsLow(%d, %d) = %v, want %v", tt.onHand, tt.minStock, got, tt.want)
			}
		})
	}
}
