package pixdraw

import "fmt"

// DrawRect draws the one-pixel outline of r. The rectangle is normalized
// and clamped to the clipping region first; every corner is written
// exactly once.
func (c *Context) DrawRect(r Rect) (Outcome, error) {
	r, ok := r.Normalize().clampTo(c.clip)
	if !ok {
		return NothingDrawn, nil
	}
	xMin, yMin, xMax, yMax := int(r.XMin), int(r.YMin), int(r.XMax), int(r.YMax)

	drew := false
	edge := func(out Outcome, err error) error {
		drew = drew || out == Drawn
		return err
	}

	// top
	if err := edge(c.DrawLineH(xMin, yMin, xMax)); err != nil {
		return Failed, err
	}
	if yMin == yMax {
		return drawnIf(drew), nil
	}
	// right, below the top-right corner
	if err := edge(c.DrawLineV(xMax, yMin+1, yMax)); err != nil {
		return Failed, err
	}
	if xMin == xMax {
		return drawnIf(drew), nil
	}
	// bottom, left of the bottom-right corner
	if err := edge(c.DrawLineH(xMin, yMax, xMax-1)); err != nil {
		return Failed, err
	}
	if yMin+1 == yMax {
		return drawnIf(drew), nil
	}
	// left, between the two left corners
	if err := edge(c.DrawLineV(xMin, yMin+1, yMax-1)); err != nil {
		return Failed, err
	}
	return drawnIf(drew), nil
}

// DrawRectFilled fills r, both bounds inclusive, with one windowed run.
func (c *Context) DrawRectFilled(r Rect) (Outcome, error) {
	r, ok := r.Normalize().clampTo(c.clip)
	if !ok {
		return NothingDrawn, nil
	}
	if err := c.fillWindow(int(r.XMin), int(r.YMin), r.Width(), r.Height(), c.fg); err != nil {
		return Failed, err
	}
	return Drawn, nil
}

// DrawPolygon draws the outline through points, closing the loop from the
// last point back to the first unless they are already equal.
func (c *Context) DrawPolygon(points []Point) (Outcome, error) {
	if len(points) < 2 {
		return Failed, fmt.Errorf("%w: polygon needs at least 2 points, have %d", ErrInvalidArgument, len(points))
	}

	drew := false
	segment := func(a, b Point) error {
		out, err := c.DrawLine(a.X, a.Y, b.X, b.Y)
		if err != nil {
			return err
		}
		drew = drew || out == Drawn
		return nil
	}

	for i := 1; i < len(points); i++ {
		if err := segment(points[i-1], points[i]); err != nil {
			return Failed, err
		}
	}
	first, last := points[0], points[len(points)-1]
	if last != first {
		if err := segment(last, first); err != nil {
			return Failed, err
		}
	}
	return drawnIf(drew), nil
}
