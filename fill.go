package main

// floodFill paints the 4-connected region of the origin's color with fill,
// in place. Neighbors are visited up, down, left, right.
func floodFill(c *Canvas, origin point, fill Pixel) {
	original := c.At(origin.X, origin.Y)
	if original == fill {
		return
	}

	stack := []point{origin}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.At(p.X, p.Y) != original {
			continue
		}
		c.Set(p.X, p.Y, fill)

		// Pushed in reverse so "up" is popped first.
		neighbors := [4]point{
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
		}
		for _, n := range neighbors {
			if c.InBounds(n.X, n.Y) && c.At(n.X, n.Y) == original {
				stack = append(stack, n)
			}
		}
	}
}
