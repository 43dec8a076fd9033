package domain

import "testing"

func TestCubeSet_WithinReflexive(t *testing.T) {
	sets := []CubeSet{
		{},
		{Red: 1},
		{Red: 4, Green: 2, Blue: 6},
		{Red: 20, Green: 13, Blue: 5},
	}
	for _, s := range sets {
		if !s.Within(s) {
			t.Fatalf("expected %v within itself", s)
		}
	}
}

func TestCubeSet_WithinPartialOrder(t *testing.T) {
	a := CubeSet{Red: 5, Green: 1, Blue: 0}
	b := CubeSet{Red: 1, Green: 5, Blue: 0}

	if a.Within(b) {
		t.Fatalf("expected %v not within %v", a, b)
	}
	if b.Within(a) {
		t.Fatalf("expected %v not within %v", b, a)
	}
}

func TestCubeSet_Within(t *testing.T) {
	ceiling := CubeSet{Red: 12, Green: 13, Blue: 14}

	if !(CubeSet{Red: 12, Green: 13, Blue: 14}).Within(ceiling) {
		t.Fatalf("expected equal set to be within ceiling")
	}
	if (CubeSet{Red: 13}).Within(ceiling) {
		t.Fatalf("expected red overflow to fail the bound")
	}
	if !(CubeSet{}).Within(ceiling) {
		t.Fatalf("expected zero set to be within any non-negative ceiling")
	}
}

func TestCubeSet_Add(t *testing.T) {
	got := CubeSet{Red: 1, Blue: 2}.Add(CubeSet{Red: 3, Green: 4})
	want := CubeSet{Red: 4, Green: 4, Blue: 2}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCubeSet_AddColor(t *testing.T) {
	var s CubeSet
	s = s.AddColor(ColorRed, 4)
	s = s.AddColor(ColorBlue, 3)
	s = s.AddColor(ColorRed, 2)

	want := CubeSet{Red: 6, Blue: 3}
	if s != want {
		t.Fatalf("expected %v, got %v", want, s)
	}
}

func TestCubeSet_AddColorUnknownIgnored(t *testing.T) {
	s := CubeSet{Red: 1}.AddColor(ColorUnknown, 99)
	if s != (CubeSet{Red: 1}) {
		t.Fatalf("expected unknown color to be ignored, got %v", s)
	}
}

func TestCubeSet_Max(t *testing.T) {
	got := CubeSet{Red: 4, Blue: 3}.Max(CubeSet{Red: 1, Green: 2, Blue: 6})
	want := CubeSet{Red: 4, Green: 2, Blue: 6}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCubeSet_Power(t *testing.T) {
	if got := (CubeSet{Red: 4, Green: 2, Blue: 6}).Power(); got != 48 {
		t.Fatalf("expected power 48, got %d", got)
	}
	if got := (CubeSet{Red: 4, Green: 2}).Power(); got != 0 {
		t.Fatalf("expected zero power when a component is zero, got %d", got)
	}
}

func TestCubeSet_PowerWidened(t *testing.T) {
	s := CubeSet{Red: 100000, Green: 100000, Blue: 100000}
	if got := s.Power(); got != 1000000000000000 {
		t.Fatalf("expected widened product, got %d", got)
	}
}

func TestCubeSet_String(t *testing.T) {
	if got := (CubeSet{Red: 4, Blue: 3}).String(); got != "4 red, 3 blue" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := (CubeSet{}).String(); got != "0 red, 0 green, 0 blue" {
		t.Fatalf("unexpected zero rendering: %q", got)
	}
}
