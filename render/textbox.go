package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// textBox draws lines of text inside a filled box anchored to the top right of the canvas.
// It follows the layout chart.Legend uses for its own box.
func textBox(lines []string, userStyle chart.Style) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(lines) == 0 {
			return
		}
		style := userStyle.InheritFrom(defaults)

		pad := pixels(5)
		gap := pixels(2)
		margin := pixels(6)

		style.GetTextOptions().WriteToRenderer(r)
		width, height := 0, 0
		heights := make([]int, len(lines))
		for i, line := range lines {
			tb := r.MeasureText(line)
			heights[i] = tb.Height()
			width = max(width, tb.Width())
			height += tb.Height()
			if i > 0 {
				height += gap
			}
		}

		box := chart.Box{
			Top:    cb.Top + margin,
			Right:  cb.Right - margin,
			Left:   cb.Right - margin - width - 2*pad,
			Bottom: cb.Top + margin + height + 2*pad,
		}
		chart.Draw.Box(r, box, style)

		style.GetTextOptions().WriteToRenderer(r)
		y := box.Top + pad
		for i, line := range lines {
			if i > 0 {
				y += gap
			}
			y += heights[i]
			r.Text(line, box.Left+pad, y)
		}
		r.ResetStyle()
	}
}
