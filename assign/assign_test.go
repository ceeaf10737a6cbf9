package assign

import "testing"

func TestTruthNot(t *testing.T) {
	if Positive.Not() != Negative {
		t.Fatalf("Positive.Not() should be Negative, got %s", Positive.Not())
	}
	if Negative.Not() != Positive {
		t.Fatalf("Negative.Not() should be Positive, got %s", Negative.Not())
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Available: "available",
		Pending:   "pending",
		Active:    "active",
		Deceased:  "deceased",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Decision.String() != "decision" {
		t.Fatalf("Decision.String() = %q", Decision.String())
	}
	if ConflictFlip.String() != "conflict-flip" {
		t.Fatalf("ConflictFlip.String() = %q", ConflictFlip.String())
	}
}
