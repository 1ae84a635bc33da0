package geometry

import (
	"testing"
)

func TestParseRotationIdentity(t *testing.T) {
	m, err := ParseRotation("0x, 0y, 0z")
	if err != nil {
		t.Fatalf("ParseRotation failed: %v", err)
	}
	if m != Identity() {
		t.Errorf("expected identity, got %v", m)
	}
}

func TestParseRotationAxis(t *testing.T) {
	m, err := ParseRotation("90z")
	if err != nil {
		t.Fatalf("ParseRotation failed: %v", err)
	}

	// row vector convention: x rotates onto y
	result := m.Apply(NewVector3(1, 0, 0))
	if result.Distance(NewVector3(0, 1, 0)) > 1e-10 {
		t.Errorf("90z failed: got %v", result)
	}
}

func TestParseRotationOrder(t *testing.T) {
	m, err := ParseRotation("90x,90y")
	if err != nil {
		t.Fatalf("ParseRotation failed: %v", err)
	}

	expected := AxisRotation(0, 90).Mul(AxisRotation(1, 90))
	v := NewVector3(1, 2, 3)
	if m.Apply(v).Distance(expected.Apply(v)) > 1e-10 {
		t.Errorf("Order failed: got %v, expected %v", m.Apply(v), expected.Apply(v))
	}

	if got := expected.Apply(v); got.Distance(AxisRotation(1, 90).Apply(AxisRotation(0, 90).Apply(v))) > 1e-10 {
		t.Errorf("x rotation should be applied first, got %v", got)
	}
}

func TestParseRotationInvalid(t *testing.T) {
	for _, s := range []string{"10q", "abcx", "x"} {
		if _, err := ParseRotation(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}
