package maze

import (
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestNewGridIsAllWallAndOdd(t *testing.T) {
	g := NewGrid(20, 4)

	if g.Columns() != 21 || g.Rows() != 5 {
		t.Fatalf("size = %dx%d, expected 21x5", g.Columns(), g.Rows())
	}
	if open := g.Count(Open); open != 0 {
		t.Errorf("new grid has %d open cells, expected 0", open)
	}
	if g.Count(Wall) != 21*5 {
		t.Errorf("Count(Wall) = %d, expected %d", g.Count(Wall), 21*5)
	}
}

func TestGridBoundsChecks(t *testing.T) {
	g := NewGrid(7, 7)

	g.Set(core.P(-1, 3), Open)
	g.Set(core.P(3, 7), Open)
	if g.Count(Open) != 0 {
		t.Error("out-of-bounds Set should be ignored")
	}
	if g.At(core.P(100, 100)) != Wall {
		t.Error("out-of-bounds At should read Wall")
	}

	g.Set(core.P(3, 3), Open)
	if !g.IsOpen(core.P(3, 3)) {
		t.Error("Set(Open) did not stick")
	}
}

func TestGridInterior(t *testing.T) {
	g := NewGrid(5, 5)
	tests := []struct {
		p        core.Point
		expected bool
	}{
		{core.P(0, 2), false},
		{core.P(4, 2), false},
		{core.P(2, 0), false},
		{core.P(2, 4), false},
		{core.P(1, 1), true},
		{core.P(3, 3), true},
	}
	for _, tc := range tests {
		if got := g.Interior(tc.p); got != tc.expected {
			t.Errorf("Interior(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestGridAnchors(t *testing.T) {
	g := NewGrid(21, 13)
	if g.Start() != core.P(1, 1) {
		t.Errorf("Start() = %v", g.Start())
	}
	if g.End() != core.P(19, 11) {
		t.Errorf("End() = %v, expected (19,11)", g.End())
	}
}

func TestGridStringIsNorthUp(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(core.P(1, 1), Open)
	g.Set(core.P(3, 3), Open)

	expected := "#####\n" +
		"###.#\n" +
		"#####\n" +
		"#.###\n" +
		"#####"
	if got := g.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.Set(core.P(2, 2), Open)
	if g.IsOpen(core.P(2, 2)) {
		t.Error("clone shares storage with original")
	}
	if g.Equal(c) {
		t.Error("Equal should detect the difference")
	}
	if g.Equal(NewGrid(7, 5)) {
		t.Error("Equal should compare dimensions")
	}
}
