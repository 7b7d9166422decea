package pixdraw

import "fmt"

// OctantAll selects every octant in DrawPartialCircle.
const OctantAll uint8 = 0xff

// octantOffsets returns the offsets of the 8 symmetric points for the
// first-octant point (x, y). Entry i belongs to octant i+1; octants are
// numbered counter-clockwise starting straight up.
func octantOffsets(x, y int) (xs, ys [8]int) {
	xs = [8]int{y, x, -x, -y, -y, -x, x, y}
	ys = [8]int{-x, -y, -y, -x, x, y, y, x}
	return xs, ys
}

// midpointCircle runs the integer midpoint recurrence for radius and calls
// step with every first-octant point, starting at (0, radius).
func midpointCircle(radius int, step func(x, y int) error) error {
	x, y := 0, radius
	d := 1 - radius
	if err := step(x, y); err != nil {
		return err
	}
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		if err := step(x, y); err != nil {
			return err
		}
	}
	return nil
}

// checkCircle validates a circle before anything is drawn.
func (c *Context) checkCircle(xc, yc, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: negative radius %d", ErrInvalidArgument, radius)
	}
	if !c.clip.Contains(xc, yc) {
		return fmt.Errorf("%w: circle center (%d,%d)", ErrOutOfBounds, xc, yc)
	}
	return nil
}

// DrawCircle draws a one-pixel circle outline centered on (xc, yc). The
// center must lie inside the clipping region.
func (c *Context) DrawCircle(xc, yc, radius int) (Outcome, error) {
	return c.DrawPartialCircle(xc, yc, radius, OctantAll)
}

// DrawPartialCircle draws the octants of a circle outline selected by
// mask: bit i-1 enables octant i. A zero mask draws nothing.
func (c *Context) DrawPartialCircle(xc, yc, radius int, mask uint8) (Outcome, error) {
	if err := c.checkCircle(xc, yc, radius); err != nil {
		return Failed, err
	}

	drew := false
	err := midpointCircle(radius, func(x, y int) error {
		xs, ys := octantOffsets(x, y)
		for i := 0; i < 8; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			out, err := c.DrawPixel(xc+xs[i], yc+ys[i])
			if err != nil {
				return err
			}
			drew = drew || out == Drawn
		}
		return nil
	})
	if err != nil {
		return Failed, err
	}
	return drawnIf(drew), nil
}

// DrawCircleFilled fills a disc centered on (xc, yc) row by row with
// horizontal lines. The center must lie inside the clipping region.
func (c *Context) DrawCircleFilled(xc, yc, radius int) (Outcome, error) {
	if err := c.checkCircle(xc, yc, radius); err != nil {
		return Failed, err
	}

	drew := false
	span := func(x1, y, x2 int) error {
		out, err := c.DrawLineH(x1, y, x2)
		if err != nil {
			return err
		}
		drew = drew || out == Drawn
		return nil
	}

	err := midpointCircle(radius, func(x, y int) error {
		if x == 0 {
			return span(xc-y, yc, xc+y)
		}
		if err := span(xc-x, yc+y, xc+x); err != nil {
			return err
		}
		if err := span(xc-y, yc+x, xc+y); err != nil {
			return err
		}
		if err := span(xc-x, yc-y, xc+x); err != nil {
			return err
		}
		return span(xc-y, yc-x, xc+y)
	})
	if err != nil {
		return Failed, err
	}
	return drawnIf(drew), nil
}
