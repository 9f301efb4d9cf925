package icons

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Book glyph colors.
var (
	BodyColor  = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	SpineColor = color.RGBA{R: 25, G: 118, B: 210, A: 255}
	PageColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PageLine is one horizontal page line. X0 and X1 are inclusive.
type PageLine struct {
	Y  int
	X0 int
	X1 int
}

// Geometry is the book glyph layout for one canvas size.
//
// The body spans X..X+Width and Y..Y+Height with both corners inclusive.
type Geometry struct {
	Size       int
	X          int
	Y          int
	Width      int
	Height     int
	Outline    int
	SpineWidth int
	LineWidth  int
	Lines      [3]PageLine
}

// BookGeometry scales the 48-unit reference design to size, rounding every
// scaled length down.
func BookGeometry(size int) Geometry {
	scale := float64(size) / ReferenceSize
	scaled := func(units float64) int {
		return int(units * scale)
	}

	g := Geometry{
		Size:       size,
		Width:      scaled(32),
		Height:     scaled(40),
		Outline:    max(1, scaled(2)),
		SpineWidth: scaled(4),
		LineWidth:  max(1, scaled(1)),
	}
	g.X = (size - g.Width) / 2
	g.Y = (size - g.Height) / 2
	for i := range g.Lines {
		g.Lines[i] = PageLine{
			Y:  g.Y + scaled(float64(8+8*i)),
			X0: g.X + scaled(8),
			X1: g.X + g.Width - scaled(4),
		}
	}
	return g
}

// RenderBook draws the book glyph on a transparent size×size canvas.
func RenderBook(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	g := BookGeometry(size)

	right := g.X + g.Width
	bottom := g.Y + g.Height
	outlinedRect(canvas, g.X, g.Y, right, bottom, BodyColor, SpineColor, g.Outline)
	fillRect(canvas, g.X, g.Y, g.X+g.SpineWidth, bottom, SpineColor)
	for _, line := range g.Lines {
		hline(canvas, line.X0, line.X1, line.Y, g.LineWidth, PageColor)
	}
	return canvas, nil
}

// EncodeBook renders the glyph at size and writes it to w as PNG.
func EncodeBook(w io.Writer, size int) error {
	if w == nil {
		return errors.New("writer is required")
	}
	canvas, err := RenderBook(size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteBook renders the glyph at size into a PNG file at path, replacing any
// existing file. The parent directory must already exist.
func WriteBook(size int, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	if err := EncodeBook(f, size); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
