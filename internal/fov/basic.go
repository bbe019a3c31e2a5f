package fov

// basicOracle casts a ray from the observer to every tile on the border of
// the view box. A ray stops at the first opaque tile.
type basicOracle struct{}

func (basicOracle) Compute(m Opacity, ox, oy, radius int, lightWalls bool) *Visibility {
	v := newVisibility(m.Width(), m.Height())
	if !v.inBounds(ox, oy) {
		return v
	}
	if lightWalls || !m.BlocksSight(ox, oy) {
		v.set(ox, oy)
	}

	xmin, ymin, xmax, ymax := 0, 0, v.width-1, v.height-1
	if radius > 0 {
		xmin = max(xmin, ox-radius)
		ymin = max(ymin, oy-radius)
		xmax = min(xmax, ox+radius)
		ymax = min(ymax, oy+radius)
	}

	ray := func(tx, ty int) {
		castRay(ox, oy, tx, ty, func(x, y int) bool {
			if !v.inBounds(x, y) || !inRadius(x-ox, y-oy, radius) {
				return false
			}
			if m.BlocksSight(x, y) {
				if lightWalls {
					v.set(x, y)
				}
				return false
			}
			v.set(x, y)
			return true
		})
	}

	for x := xmin; x <= xmax; x++ {
		ray(x, ymin)
		ray(x, ymax)
	}
	for y := ymin + 1; y < ymax; y++ {
		ray(xmin, y)
		ray(xmax, y)
	}

	if lightWalls {
		// Rays graze past wall faces; light walls that border lit floor
		// on the side facing away from the observer.
		lightWallFaces(m, v, ox, oy, radius, xmin, ymin, ox, oy, -1, -1)
		lightWallFaces(m, v, ox, oy, radius, ox, ymin, xmax, oy, 1, -1)
		lightWallFaces(m, v, ox, oy, radius, xmin, oy, ox, ymax, -1, 1)
		lightWallFaces(m, v, ox, oy, radius, ox, oy, xmax, ymax, 1, 1)
	}

	return v
}

// castRay walks a Bresenham line from (x0, y0) towards (x1, y1), excluding
// the origin, until visit returns false or the target is reached.
func castRay(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	x, y := x0, y0
	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if !visit(x, y) {
			return
		}
	}
}

func lightWallFaces(m Opacity, v *Visibility, ox, oy, radius, x0, y0, x1, y1, dx, dy int) {
	light := func(x, y int) {
		if v.inBounds(x, y) && m.BlocksSight(x, y) && inRadius(x-ox, y-oy, radius) {
			v.set(x, y)
		}
	}
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if !v.Visible(x, y) || m.BlocksSight(x, y) {
				continue
			}
			light(x+dx, y)
			light(x, y+dy)
			light(x+dx, y+dy)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
