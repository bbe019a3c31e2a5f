package fov

// Octant transforms. A sweep offset (dx, dy) maps to world coordinates as
// (cx + dx*xx + dy*xy, cy + dx*yx + dy*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// shadowOracle implements recursive shadowcasting.
type shadowOracle struct{}

func (shadowOracle) Compute(m Opacity, ox, oy, radius int, lightWalls bool) *Visibility {
	v := newVisibility(m.Width(), m.Height())
	if !v.inBounds(ox, oy) {
		return v
	}
	if lightWalls || !m.BlocksSight(ox, oy) {
		v.set(ox, oy)
	}

	limit := radius
	if limit <= 0 {
		limit = max(v.width, v.height)
	}

	s := shadowCaster{
		m:          m,
		v:          v,
		cx:         ox,
		cy:         oy,
		radius:     radius,
		limit:      limit,
		lightWalls: lightWalls,
	}
	for _, o := range octants {
		s.cast(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	return v
}

type shadowCaster struct {
	m          Opacity
	v          *Visibility
	cx, cy     int
	radius     int
	limit      int
	lightWalls bool
}

func (s *shadowCaster) opaque(x, y int) bool {
	return !s.v.inBounds(x, y) || s.m.BlocksSight(x, y)
}

// cast scans one octant row by row from row, between the start and end slopes.
func (s *shadowCaster) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	newStart := start

	for j := row; j <= s.limit; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := s.cx + dx*xx + dy*xy
			wy := s.cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := s.opaque(wx, wy)
			if inRadius(dx, dy, s.radius) && (s.lightWalls || !opaque) {
				s.v.set(wx, wy)
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < s.limit {
				blocked = true
				s.cast(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
