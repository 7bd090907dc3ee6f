package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Valentine is the question screen's background gradient, top to bottom.
var Valentine = []string{"#f9c8d4", "#f7c2a3", "#f7efe3"}

func parse(colorString string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}

func Darken(colorString string) (string, error) {
	c, err := parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := c.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

// Sample returns the color at t in [0, 1] along evenly spaced stops, blended in Lab space.
func Sample(stops []string, t float64) (string, error) {
	if len(stops) == 0 {
		return "", fmt.Errorf("cannot sample an empty gradient")
	}
	if len(stops) == 1 || t <= 0 {
		c, err := parse(stops[0])
		if err != nil {
			return "", err
		}
		return c.Clamped().Hex(), nil
	}
	if t >= 1 {
		c, err := parse(stops[len(stops)-1])
		if err != nil {
			return "", err
		}
		return c.Clamped().Hex(), nil
	}

	segments := float64(len(stops) - 1)
	i := int(t * segments)
	local := t*segments - float64(i)

	from, err := parse(stops[i])
	if err != nil {
		return "", err
	}
	to, err := parse(stops[i+1])
	if err != nil {
		return "", err
	}
	return from.BlendLab(to, local).Clamped().Hex(), nil
}
