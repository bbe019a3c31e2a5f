package fov

import (
	"errors"
	"testing"
)

// testMap is an open floor map with optional walls.
type testMap struct {
	width, height int
	walls         map[[2]int]bool
	explored      map[[2]int]bool
}

func openMap(width, height int) *testMap {
	return &testMap{
		width:    width,
		height:   height,
		walls:    make(map[[2]int]bool),
		explored: make(map[[2]int]bool),
	}
}

func (m *testMap) Width() int  { return m.width }
func (m *testMap) Height() int { return m.height }

func (m *testMap) BlocksSight(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return true
	}
	return m.walls[[2]int{x, y}]
}

func (m *testMap) MarkExplored(x, y int) {
	m.explored[[2]int{x, y}] = true
}

var algorithms = []Algorithm{AlgorithmBasic, AlgorithmShadow}

func mustOracle(t *testing.T, alg Algorithm) Oracle {
	t.Helper()
	o, err := New(alg)
	if err != nil {
		t.Fatalf("New(%q) error = %v", alg, err)
	}
	return o
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
		valid bool
	}{
		{"basic", AlgorithmBasic, true},
		{"SHADOW", AlgorithmShadow, true},
		{" shadow ", AlgorithmShadow, true},
		{"permissive", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if tt.valid && (err != nil || got != tt.want) {
			t.Errorf("ParseAlgorithm(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
		if !tt.valid && !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) error = %v, want ErrUnknownAlgorithm", tt.input, err)
		}
	}

	if _, err := New("digital"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("New(digital) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestOriginVisibility(t *testing.T) {
	tests := []struct {
		name       string
		opaque     bool
		lightWalls bool
		want       bool
	}{
		{"floor, dark walls", false, false, true},
		{"floor, lit walls", false, true, true},
		{"wall, lit walls", true, true, true},
		{"wall, dark walls", true, false, false},
	}

	for _, alg := range algorithms {
		for _, tt := range tests {
			m := openMap(10, 10)
			if tt.opaque {
				m.walls[[2]int{5, 5}] = true
			}

			v := mustOracle(t, alg).Compute(m, 5, 5, 3, tt.lightWalls)
			if got := v.Visible(5, 5); got != tt.want {
				t.Errorf("%s/%s: observer tile visible = %v, want %v", alg, tt.name, got, tt.want)
			}
			if !tt.lightWalls {
				v.Each(func(x, y int) {
					if m.BlocksSight(x, y) {
						t.Errorf("%s/%s: opaque (%d,%d) visible with dark walls", alg, tt.name, x, y)
					}
				})
			}
		}
	}
}

func TestObserverOutsideMap(t *testing.T) {
	for _, alg := range algorithms {
		v := mustOracle(t, alg).Compute(openMap(10, 10), -1, 3, 5, true)
		if v.Count() != 0 {
			t.Errorf("%s: %d tiles visible from outside the map", alg, v.Count())
		}
	}
}

func TestRadiusLimitsVisibility(t *testing.T) {
	const radius = 5
	for _, alg := range algorithms {
		m := openMap(30, 30)
		v := mustOracle(t, alg).Compute(m, 15, 15, radius, true)

		v.Each(func(x, y int) {
			dx, dy := x-15, y-15
			if dx*dx+dy*dy > radius*radius {
				t.Errorf("%s: (%d,%d) visible beyond radius %d", alg, x, y, radius)
			}
		})

		for _, pos := range [][2]int{{15, 10}, {15, 20}, {10, 15}, {20, 15}} {
			if !v.Visible(pos[0], pos[1]) {
				t.Errorf("%s: tile %v at distance %d should be visible", alg, pos, radius)
			}
		}
		for _, pos := range [][2]int{{15, 9}, {15, 21}, {9, 15}, {21, 15}} {
			if v.Visible(pos[0], pos[1]) {
				t.Errorf("%s: tile %v beyond radius should not be visible", alg, pos)
			}
		}
	}
}

func TestVisibilityMonotonicAlongLine(t *testing.T) {
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}}
	for _, alg := range algorithms {
		for _, radius := range []int{3, 6, 9} {
			v := mustOracle(t, alg).Compute(openMap(30, 30), 15, 15, radius, true)

			for _, d := range dirs {
				for step := 2; step < 15; step++ {
					far := v.Visible(15+d[0]*step, 15+d[1]*step)
					near := v.Visible(15+d[0]*(step-1), 15+d[1]*(step-1))
					if far && !near {
						t.Errorf("%s r=%d: step %d in %v visible but step %d is not",
							alg, radius, step, d, step-1)
					}
				}
			}
		}
	}
}

func TestWallBlocksLight(t *testing.T) {
	for _, alg := range algorithms {
		m := openMap(20, 20)
		m.walls[[2]int{10, 8}] = true

		v := mustOracle(t, alg).Compute(m, 10, 10, 8, true)

		if !v.Visible(10, 8) {
			t.Errorf("%s: wall tile (10,8) should be lit with lightWalls", alg)
		}
		if v.Visible(10, 7) {
			t.Errorf("%s: tile (10,7) behind the wall should not be visible", alg)
		}
		if !v.Visible(10, 9) {
			t.Errorf("%s: tile (10,9) in front of the wall should be visible", alg)
		}
	}
}

func TestDarkWallsNeverVisible(t *testing.T) {
	for _, alg := range algorithms {
		m := openMap(20, 20)
		m.walls[[2]int{10, 8}] = true
		for x := 0; x < 20; x++ {
			m.walls[[2]int{x, 14}] = true
		}

		v := mustOracle(t, alg).Compute(m, 10, 10, 0, false)

		v.Each(func(x, y int) {
			if m.walls[[2]int{x, y}] {
				t.Errorf("%s: wall (%d,%d) visible with lightWalls=false", alg, x, y)
			}
		})
		if v.Visible(10, 15) {
			t.Errorf("%s: tile behind a solid wall row should not be visible", alg)
		}
	}
}

func TestUnlimitedRadius(t *testing.T) {
	for _, alg := range algorithms {
		v := mustOracle(t, alg).Compute(openMap(20, 20), 10, 10, 0, true)
		for _, pos := range [][2]int{{0, 0}, {19, 19}, {0, 19}, {19, 0}} {
			if !v.Visible(pos[0], pos[1]) {
				t.Errorf("%s: corner %v should be visible with unlimited radius", alg, pos)
			}
		}
	}
}

func TestVisibilityEqual(t *testing.T) {
	o := mustOracle(t, AlgorithmShadow)
	a := o.Compute(openMap(12, 12), 6, 6, 4, true)
	b := o.Compute(openMap(12, 12), 6, 6, 4, true)
	c := o.Compute(openMap(12, 12), 5, 6, 4, true)

	if !a.Equal(b) {
		t.Error("identical computations should be equal")
	}
	if a.Equal(c) {
		t.Error("different observers should not be equal")
	}

	var empty *Visibility
	if empty.Visible(0, 0) || empty.Count() != 0 {
		t.Error("nil Visibility should see nothing")
	}

	// Nothing is visible from outside the map, so only the size differs.
	small := o.Compute(openMap(4, 4), -1, -1, 4, true)
	large := o.Compute(openMap(8, 8), -1, -1, 4, true)
	if small.Count() != 0 || large.Count() != 0 {
		t.Fatal("expected empty snapshots")
	}
	if small.Equal(large) || large.Equal(small) {
		t.Error("empty snapshots of different sizes should not be equal")
	}
	if !small.Equal(o.Compute(openMap(4, 4), -1, -1, 4, true)) {
		t.Error("empty snapshots of the same size should be equal")
	}
	if empty.Equal(small) || !empty.Equal(nil) {
		t.Error("nil should only equal a snapshot covering nothing")
	}
}
