package physics

// Resolve moves b by its velocity, first along x and then along y, pushing it
// out of any solid tile it ends up overlapping. Each pass scans the overlapped
// tiles once, row by row and left to right; when several solid tiles collide,
// the clamp from the last one scanned stands. The velocity component of a
// colliding axis is zeroed.
//
// It reports whether downward motion was stopped by a tile (the body is grounded).
func Resolve(b Body, tiles TileMap, tile float64) (grounded bool) {
	r := b.Bounds()
	v := b.Velocity()

	r.X += v.X
	x0, x1 := TileSpan(r.X, r.Right(), tile)
	y0, y1 := TileSpan(r.Y, r.Bottom(), tile)
	vx := v.X
	hit := false
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !tiles.IsSolid(tx, ty) {
				continue
			}
			t := TileRect(tx, ty, tile)
			switch {
			case vx > 0:
				r.SetRight(t.X)
			case vx < 0:
				r.X = t.Right()
			}
			hit = true
		}
	}
	if hit {
		v.X = 0
	}

	r.Y += v.Y
	x0, x1 = TileSpan(r.X, r.Right(), tile)
	y0, y1 = TileSpan(r.Y, r.Bottom(), tile)
	vy := v.Y
	hit = false
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !tiles.IsSolid(tx, ty) {
				continue
			}
			t := TileRect(tx, ty, tile)
			switch {
			case vy > 0:
				r.SetBottom(t.Y)
				grounded = true
			case vy < 0:
				r.Y = t.Bottom()
			}
			hit = true
		}
	}
	if hit {
		v.Y = 0
	}

	return grounded
}
