package pixdraw

// DrawPixel draws one pixel in the foreground color.
func (c *Context) DrawPixel(x, y int) (Outcome, error) {
	return c.DrawPixelColor(x, y, c.fg)
}

// DrawPixelColor draws one pixel in col. Pixels outside the clipping
// region report NothingDrawn.
func (c *Context) DrawPixelColor(x, y int, col Color) (Outcome, error) {
	if !c.clip.Contains(x, y) {
		return NothingDrawn, nil
	}
	if err := c.resetWindow(); err != nil {
		return Failed, err
	}
	r, g, b := col.Channels()
	if err := c.surface.WriteSolidRun(x, y, r, g, b, 1); err != nil {
		return Failed, c.fail("write pixel", err)
	}
	return Drawn, nil
}
