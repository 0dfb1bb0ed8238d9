package render

// DrawFrame clears the canvas, draws every ball as a filled circle in its color,
// both paddles as white rectangles, and presents the frame.
// A ball with an invalid color aborts the frame before Show
func DrawFrame(c Canvas, s Scene) error {
	c.Clear()

	for _, b := range s.Balls() {
		col, err := ParseColor(b.Color)
		if err != nil {
			return err
		}
		c.FillCircle(b.X, b.Y, b.Radius, col)
	}

	for _, p := range [...]struct{ x, y, w, h float64 }{
		{s.Left().X, s.Left().Y, s.Left().Width, s.Left().Height},
		{s.Right().X, s.Right().Y, s.Right().Width, s.Right().Height},
	} {
		c.FillRect(p.x, p.y, p.w, p.h, RgbPaddle)
	}

	c.Show()
	return nil
}
