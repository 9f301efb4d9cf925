package icons

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fillRect paints the rectangle with corners (x0,y0) and (x1,y1), both
// inclusive. Empty rectangles are a no-op.
func fillRect(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	if x1 < x0 || y1 < y0 {
		return
	}
	r := image.Rect(x0, y0, x1+1, y1+1)
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// outlinedRect paints a filled rectangle whose outermost width pixels on each
// side use the outline color.
func outlinedRect(dst draw.Image, x0, y0, x1, y1 int, fill, outline color.Color, width int) {
	fillRect(dst, x0, y0, x1, y1, outline)
	fillRect(dst, x0+width, y0+width, x1-width, y1-width, fill)
}

// hline paints a horizontal line width pixels thick centred on row y. Even
// widths put the extra row below y.
func hline(dst draw.Image, x0, x1, y, width int, c color.Color) {
	top := y - (width-1)/2
	fillRect(dst, x0, top, x1, top+width-1, c)
}
