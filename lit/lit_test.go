package lit

import "testing"

func TestFromDIMACS(t *testing.T) {
	if l := FromDIMACS(12); l.Var() != 12 {
		t.Fatalf("TestFromDIMACS() failed, got: %d", l.Var())
	}
	if l := FromDIMACS(-12); l.Var() != 12 {
		t.Fatalf("TestFromDIMACS() failed, got: %d", l.Var())
	}
	if l := FromDIMACS(-12); !l.Sign() {
		t.Fatalf("TestFromDIMACS() failed to negate")
	}
}

func TestComplement(t *testing.T) {
	if l := New(12, false).Complement(); l != New(12, true) {
		t.Fatalf("TestComplement() failed, got: %d", l.Var())
	}
	if l := New(12, false).Complement().Complement(); l != New(12, false) {
		t.Fatalf("TestComplement() is not its own inverse")
	}
}

func TestSign(t *testing.T) {
	if l := New(12, true); l.Sign() != true {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
	if l := New(12, false); l.Sign() != false {
		t.Fatalf("TestSign() failed, got: %d", l.Var())
	}
}

func TestVar(t *testing.T) {
	if l := New(23, false); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
	if l := New(23, true); l.Var() != 24 {
		t.Fatalf("TestVar() failed: %d", l.Var())
	}
}

func TestDIMACS(t *testing.T) {
	if v := FromDIMACS(-5).DIMACS(); v != -5 {
		t.Fatalf("TestDIMACS() failed, got: %d", v)
	}
	if v := FromDIMACS(5).DIMACS(); v != 5 {
		t.Fatalf("TestDIMACS() failed, got: %d", v)
	}
}

func TestIndex(t *testing.T) {
	if New(7, false).Index() != 7 {
		t.Fatalf("TestIndex() failed")
	}
	if New(7, true).Index() != 7 {
		t.Fatalf("TestIndex() failed")
	}
}
