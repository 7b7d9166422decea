package pixdraw

// DrawLineH draws a horizontal line from x1 to x2 on row y, both ends
// inclusive, as a single surface run.
func (c *Context) DrawLineH(x1, y, x2 int) (Outcome, error) {
	clip := c.clip
	if y < int(clip.YMin) || y > int(clip.YMax) {
		return NothingDrawn, nil
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 > int(clip.XMax) || x2 < int(clip.XMin) {
		return NothingDrawn, nil
	}
	x1 = max(x1, int(clip.XMin))
	x2 = min(x2, int(clip.XMax))

	if err := c.resetWindow(); err != nil {
		return Failed, err
	}
	r, g, b := c.fg.Channels()
	if err := c.surface.WriteSolidRun(x1, y, r, g, b, x2-x1+1); err != nil {
		return Failed, c.fail("write run", err)
	}
	return Drawn, nil
}

// DrawLineV draws a vertical line from y1 to y2 in column x, both ends
// inclusive, as a single run through a one-pixel-wide clip window.
func (c *Context) DrawLineV(x, y1, y2 int) (Outcome, error) {
	clip := c.clip
	if x < int(clip.XMin) || x > int(clip.XMax) {
		return NothingDrawn, nil
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y1 > int(clip.YMax) || y2 < int(clip.YMin) {
		return NothingDrawn, nil
	}
	y1 = max(y1, int(clip.YMin))
	y2 = min(y2, int(clip.YMax))

	if err := c.fillWindow(x, y1, 1, y2-y1+1, c.fg); err != nil {
		return Failed, err
	}
	return Drawn, nil
}

// DrawLine draws a line between two points, both inclusive. Axis-aligned
// lines go through DrawLineH and DrawLineV; anything else is clipped to
// the clipping region and rasterized with Bresenham's algorithm.
//
// Endpoints may lie off the surface. Clipping multiplies coordinate
// differences, so with a 64-bit int they must stay within ±1<<30, and
// within ±1<<14 where int is 32 bits.
func (c *Context) DrawLine(x1, y1, x2, y2 int) (Outcome, error) {
	if x1 == x2 {
		return c.DrawLineV(x1, y1, y2)
	}
	if y1 == y2 {
		return c.DrawLineH(x1, y1, x2)
	}

	x1, y1, x2, y2, ok := c.clip.clipLine(x1, y1, x2, y2)
	if !ok {
		return NothingDrawn, nil
	}

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x2 < x1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	deltaX := x2 - x1
	deltaY := abs(y2 - y1)
	e := -deltaX / 2
	yStep := 1
	if y2 < y1 {
		yStep = -1
	}

	drew := false
	for x, y := x1, y1; x <= x2; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		out, err := c.DrawPixel(px, py)
		if err != nil {
			return Failed, err
		}
		drew = drew || out == Drawn

		e += deltaY
		if e > 0 {
			y += yStep
			e -= deltaX
		}
	}
	return drawnIf(drew), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
