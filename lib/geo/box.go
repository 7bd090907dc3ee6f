package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Box is an axis-aligned rectangle in arena-local coordinates with the origin at the top left.
type Box struct {
	TopLeft Point   `json:"topLeft"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

func NewBox(tl Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// BoxAt places an element of size s at tl.
func BoxAt(tl Point, s Size) *Box {
	return NewBox(tl, s.Width, s.Height)
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft, b.Width, b.Height)
}

func (b *Box) Size() Size {
	return NewSize(b.Width, b.Height)
}

func (b *Box) Right() float64 {
	return b.TopLeft.X + b.Width
}

func (b *Box) Bottom() float64 {
	return b.TopLeft.Y + b.Height
}

// Expand grows b by margin on all four sides.
func (b *Box) Expand(margin float64) *Box {
	return NewBox(b.TopLeft.Translate(-margin, -margin), b.Width+2*margin, b.Height+2*margin)
}

// Overlaps reports whether the interiors of b and other intersect.
// Boxes that only share an edge do not overlap.
func (b *Box) Overlaps(other *Box) bool {
	if b == nil || other == nil {
		return false
	}
	return b.TopLeft.X < other.Right() && other.TopLeft.X < b.Right() &&
		b.TopLeft.Y < other.Bottom() && other.TopLeft.Y < b.Bottom()
}

// Contains reports whether other lies entirely within b. Shared edges count as inside.
func (b *Box) Contains(other *Box) bool {
	return other.TopLeft.X >= b.TopLeft.X && other.TopLeft.Y >= b.TopLeft.Y &&
		other.Right() <= b.Right() && other.Bottom() <= b.Bottom()
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}

// ParseBox parses X,Y,WxH.
func ParseBox(s string) (*Box, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("box %q must be of the form X,Y,WIDTHxHEIGHT", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	size, err := ParseSize(parts[2])
	if err != nil {
		return nil, err
	}
	return BoxAt(NewPoint(x, y), size), nil
}
