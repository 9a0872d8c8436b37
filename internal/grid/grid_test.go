package grid

import (
	"errors"
	"testing"
)

func TestCell_Pixel(t *testing.T) {
	tests := []struct {
		cell Cell
		want Point
	}{
		{Cell{1, 1}, Point{-244, -294}},
		{Cell{13, 15}, Point{-4, -14}},
		{Cell{25, 25}, Point{236, 186}},
	}

	for _, tt := range tests {
		if got := tt.cell.Pixel(); got != tt.want {
			t.Errorf("Pixel(%v) = %v, expected %v", tt.cell, got, tt.want)
		}
	}
}

func TestCellAt_RoundTrip(t *testing.T) {
	for col := 1; col <= Size; col++ {
		for row := 1; row <= Size; row++ {
			c := Cell{col, row}
			if got := CellAt(c.Pixel()); got != c {
				t.Fatalf("CellAt(Pixel(%v)) = %v", c, got)
			}
			// Monster positions sit half a cell off the lattice.
			if got := CellAt(c.Pixel().Add(CellSize/2, CellSize/2)); got != c {
				t.Fatalf("CellAt(Pixel(%v)+half) = %v", c, got)
			}
		}
	}
}

func TestCell_Step(t *testing.T) {
	start := Cell{13, 15}
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Right, Cell{14, 15}},
		{Left, Cell{12, 15}},
		{Up, Cell{13, 16}},
		{Down, Cell{13, 14}},
	}

	for _, tt := range tests {
		if got := start.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%v) = %v, expected %v", tt.dir, got, tt.want)
		}
	}
}

func TestCell_InBounds(t *testing.T) {
	tests := []struct {
		cell   Cell
		expect bool
	}{
		{Cell{1, 1}, true},
		{Cell{25, 25}, true},
		{Cell{0, 5}, false},
		{Cell{5, 26}, false},
		{Cell{26, 1}, false},
	}

	for _, tt := range tests {
		if got := tt.cell.InBounds(); got != tt.expect {
			t.Errorf("InBounds(%v) = %v, expected %v", tt.cell, got, tt.expect)
		}
	}
}

func TestDirection_Angle(t *testing.T) {
	want := map[Direction]int{Right: 0, Up: 90, Left: 180, Down: 270}
	for d, angle := range want {
		if d.Angle() != angle {
			t.Errorf("%v.Angle() = %d, expected %d", d, d.Angle(), angle)
		}
	}
}

func TestPoint_Move(t *testing.T) {
	p := Point{10, 10}.Move(Down, 20)
	if p != (Point{10, -10}) {
		t.Errorf("Expected (10,-10), got %v", p)
	}
	if DistSq(Point{0, 0}, Point{10, 10}) != 200 {
		t.Error("Expected squared distance 200")
	}
}

func TestSample(t *testing.T) {
	n := 0
	got, err := Sample(func() int { n++; return n }, func(v int) bool { return v == 3 }, 10)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if got != 3 || n != 3 {
		t.Errorf("Expected 3 after 3 draws, got %d after %d", got, n)
	}

	_, err = Sample(func() int { return 0 }, func(int) bool { return false }, 5)
	if !errors.Is(err, ErrSampleExhausted) {
		t.Errorf("Expected ErrSampleExhausted, got %v", err)
	}
}
