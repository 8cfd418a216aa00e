package order

import (
	"testing"

	"pgregory.net/rapid"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		from Status
		want Status
	}{
		{name: "open advances to in_progress", from: StatusOpen, want: StatusInProgress},
		{name: "in_progress advances to complete", from: StatusInProgress, want: StatusComplete},
		{name: "complete advances to invoiced", from: StatusComplete, want: StatusInvoiced},
		{name: "invoiced saturates", from: StatusInvoiced, want: StatusInvoiced},
		{name: "unknown status unchanged", from: Status("bogus"), want: Status("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.from); got != tt.want {
				t.Errorf("Advance(%q) = %q, want %q", tt.from, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusOpen, 0},
		{StatusInProgress, 1},
		{StatusComplete, 2},
		{StatusInvoiced, 3},
		{Status("bogus"), -1},
	}

	for _, tt := range tests {
		if got := tt.status.Rank(); got != tt.want {
			t.Errorf("%q.Rank() = %d, want %d", tt.status, got, tt.want)
		}
	}
}

// Repeated Advance calls from any valid status produce a non-decreasing rank
// sequence that saturates at the terminal rank and never exceeds it.
func TestAdvanceMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.SampledFrom([]Status{StatusOpen, StatusInProgress, StatusComplete, StatusInvoiced}).Draw(t, "start")
		steps := rapid.IntRange(0, 10).Draw(t, "steps")

		prev := s.Rank()
		for i := 0; i < steps; i++ {
			s = Advance(s)
			rank := s.Rank()
			if rank < prev {
				t.Fatalf("rank decreased from %d to %d", prev, rank)
			}
			if rank > TerminalRank {
				t.Fatalf("rank %d exceeds terminal rank", rank)
			}
			prev = rank
		}
		if steps >= TerminalRank && s != StatusInvoiced {
			t.Fatalf("after %d advances status = %q, want %q", steps, s, StatusInvoiced)
		}
	})
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusOpen {
		t.Errorf("InitialStatus() = %q, want %q", got, StatusOpen)
	}
}

func TestStageValid(t *testing.T) {
	for _, s := range []Stage{StageIntake, StageDiagnostics, StageRepair, StageAwaitingParts, StageQualityCheck} {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false, want true", s)
		}
	}
	if Stage("shipping").Valid() {
		t.Error(`Stage("shipping").Valid() = true, want false`)
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityNormal, PriorityHigh, PriorityCritical} {
		if !p.Valid() {
			t.Errorf("%q.Valid() = false, want true", p)
		}
	}
	if Priority("urgent").Valid() {
		t.Error(`Priority("urgent").Valid() = true, want false`)
	}
}
