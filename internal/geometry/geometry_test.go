package geometry

import "testing"

func TestSnap(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		grid  float64
		want  float64
	}{
		{"round up", 13, 8, 16},
		{"round down", 11, 8, 8},
		{"exact", 24, 8, 24},
		{"half rounds up", 4, 8, 8},
		{"negative", -13, 8, -16},
		{"negative half rounds up", -12, 8, -8},
		{"negative half to zero", -4, 8, 0},
		{"negative half on grid of one", -2.5, 1, -2},
		{"grid of one rounds fraction", 12.4, 1, 12},
		{"zero grid is identity", 12.4, 0, 12.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.value, tt.grid); got != tt.want {
				t.Errorf("Snap(%v, %v) = %v, want %v", tt.value, tt.grid, got, tt.want)
			}
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	grids := []float64{1, 2, 5, 8, 10, 16, 0.5}
	for _, g := range grids {
		for v := -100.0; v <= 100; v += 0.75 {
			once := Snap(v, g)
			if twice := Snap(once, g); twice != once {
				t.Fatalf("Snap(Snap(%v, %v)) = %v, want %v", v, g, twice, once)
			}
		}
	}
}

func TestSnapPointAndSize(t *testing.T) {
	p := SnapPoint(Point{X: 13, Y: 13}, 8)
	if p != (Point{X: 16, Y: 16}) {
		t.Errorf("SnapPoint = %+v, want {16 16}", p)
	}

	s := SnapSize(Size{Width: 3, Height: 317}, 8)
	if s != (Size{Width: 0, Height: 320}) {
		t.Errorf("SnapSize = %+v, want {0 320}", s)
	}
}

func TestEffectiveGrid(t *testing.T) {
	if g := EffectiveGrid(true, 8); g != 8 {
		t.Errorf("EffectiveGrid(true, 8) = %v, want 8", g)
	}
	if g := EffectiveGrid(false, 8); g != 1 {
		t.Errorf("EffectiveGrid(false, 8) = %v, want 1", g)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(7, 0.1, 5); v != 5 {
		t.Errorf("Clamp high = %v", v)
	}
	if v := Clamp(0, 0.1, 5); v != 0.1 {
		t.Errorf("Clamp low = %v", v)
	}
	if v := ClampInt(-3, 0, 2); v != 0 {
		t.Errorf("ClampInt low = %v", v)
	}
	if v := ClampInt(9, 0, 2); v != 2 {
		t.Errorf("ClampInt high = %v", v)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 100, Height: 50}
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Point{X: 110, Y: 20}) {
		t.Error("right edge should be outside")
	}
}
