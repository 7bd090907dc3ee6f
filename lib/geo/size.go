package geo

import (
	"fmt"
	"strconv"
	"strings"

	"oss.terrastruct.com/evade/lib/go2"
)

// Size is the extent of an element with no position, e.g. a measured arena.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Empty reports whether s has not been measured yet, i.e. either side is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Slack returns how far an element of size inner can travel inside s along each axis.
// An inner element larger than s has no room to move on that axis.
func (s Size) Slack(inner Size) (float64, float64) {
	return go2.Max(0, s.Width-inner.Width), go2.Max(0, s.Height-inner.Height)
}

func (s Size) ToString() string {
	return fmt.Sprintf("%vx%v", TruncateDecimals(s.Width), TruncateDecimals(s.Height))
}

// ParseSize parses the WxH form produced by ToString.
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("size %q must be of the form WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width < 0 || height < 0 {
		return Size{}, fmt.Errorf("size %q cannot be negative", s)
	}
	return NewSize(width, height), nil
}
