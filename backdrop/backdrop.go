// Package backdrop lays out the decorative layers behind the card's screens.
package backdrop

import (
	"math"

	"oss.terrastruct.com/evade"
	"oss.terrastruct.com/evade/lib/color"
	"oss.terrastruct.com/evade/lib/geo"
	"oss.terrastruct.com/evade/lib/go2"
)

// DefaultCell is the side of one checkerboard square on the envelope screen.
const DefaultCell = 46

// Sprite is one floating glyph.
type Sprite struct {
	Glyph    string    `json:"glyph"`
	TopLeft  geo.Point `json:"topLeft"`
	Size     float64   `json:"size"`
	Opacity  float64   `json:"opacity"`
	Rotation float64   `json:"rotation"`
	Color    string    `json:"color"`
}

// Range is a closed interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) at(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

type ScatterOptions struct {
	Glyphs   []string
	Size     Range
	Opacity  Range
	Rotation Range
	// Palette is sampled as a gradient for each sprite's color.
	Palette []string
	// Filled glyphs are drawn solid and get a darker tint than outlines.
	Filled []string
}

// DefaultScatter matches the heart wallpaper.
var DefaultScatter = ScatterOptions{
	Glyphs:   []string{"♥", "♡", "❤"},
	Size:     Range{Min: 8, Max: 18},
	Opacity:  Range{Min: 0.3, Max: 0.7},
	Rotation: Range{Min: -20, Max: 20},
	Palette:  color.Valentine,
	Filled:   []string{"♥", "❤"},
}

// Scatter places n sprites uniformly over area. Sprites are kept inside area
// by their size so none is cut off at the right or bottom edge.
// A nil r uses evade.DefaultRand.
func Scatter(area geo.Size, n int, opts *ScatterOptions, r evade.Rand) ([]Sprite, error) {
	if opts == nil {
		opts = &DefaultScatter
	}
	if r == nil {
		r = evade.DefaultRand()
	}
	if area.Empty() || n <= 0 {
		return nil, nil
	}

	sprites := make([]Sprite, 0, n)
	for i := 0; i < n; i++ {
		size := opts.Size.at(r.Float64())
		glyph := ""
		if len(opts.Glyphs) > 0 {
			glyph = opts.Glyphs[i%len(opts.Glyphs)]
		}
		s := Sprite{
			Glyph:    glyph,
			Size:     size,
			TopLeft:  evade.NextPosition(geo.Point{}, area, geo.NewSize(size, size), &evade.Options{Rand: r}),
			Opacity:  opts.Opacity.at(r.Float64()),
			Rotation: opts.Rotation.at(r.Float64()),
		}
		if len(opts.Palette) > 0 {
			c, err := color.Sample(opts.Palette, s.TopLeft.Y/area.Height)
			if err != nil {
				return nil, err
			}
			if go2.Contains(opts.Filled, glyph) {
				c, err = color.Darken(c)
				if err != nil {
					return nil, err
				}
			}
			s.Color = c
		}
		sprites = append(sprites, s)
	}
	return sprites, nil
}

// Checker covers area with a checkerboard of cell sized squares and returns the
// filled ones, those where row+column is even. The last row and column may hang
// past the edge of area.
func Checker(area geo.Size, cell float64) []*geo.Box {
	if cell <= 0 {
		cell = DefaultCell
	}
	if area.Empty() {
		return nil
	}

	columns := int(math.Ceil(area.Width / cell))
	rows := int(math.Ceil(area.Height / cell))
	boxes := make([]*geo.Box, 0, (rows*columns+1)/2)
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			if (row+column)%2 == 0 {
				boxes = append(boxes, geo.NewBox(geo.NewPoint(float64(column)*cell, float64(row)*cell), cell, cell))
			}
		}
	}
	return boxes
}
