package backdrop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/evade"
	"oss.terrastruct.com/evade/backdrop"
	"oss.terrastruct.com/evade/lib/geo"
)

func TestScatter(t *testing.T) {
	t.Parallel()

	area := geo.NewSize(390, 844)
	sprites, err := backdrop.Scatter(area, 26, nil, evade.NewRand(14))
	require.NoError(t, err)
	require.Len(t, sprites, 26)

	bounds := geo.NewBox(geo.NewPoint(0, 0), area.Width, area.Height)
	for _, s := range sprites {
		assert.True(t, bounds.Contains(geo.BoxAt(s.TopLeft, geo.NewSize(s.Size, s.Size))))
		assert.GreaterOrEqual(t, s.Size, 8.)
		assert.LessOrEqual(t, s.Size, 18.)
		assert.GreaterOrEqual(t, s.Opacity, 0.3)
		assert.LessOrEqual(t, s.Opacity, 0.7)
		assert.GreaterOrEqual(t, s.Rotation, -20.)
		assert.LessOrEqual(t, s.Rotation, 20.)
		assert.Contains(t, backdrop.DefaultScatter.Glyphs, s.Glyph)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Color)
	}

	again, err := backdrop.Scatter(area, 26, nil, evade.NewRand(14))
	require.NoError(t, err)
	assert.Equal(t, sprites, again)
}

func TestScatterEmpty(t *testing.T) {
	t.Parallel()

	sprites, err := backdrop.Scatter(geo.Size{}, 10, nil, evade.NewRand(1))
	assert.NoError(t, err)
	assert.Empty(t, sprites)

	sprites, err = backdrop.Scatter(geo.NewSize(10, 10), 0, nil, evade.NewRand(1))
	assert.NoError(t, err)
	assert.Empty(t, sprites)
}

func TestScatterBadPalette(t *testing.T) {
	t.Parallel()

	opts := backdrop.DefaultScatter
	opts.Palette = []string{"#zzzzzz"}
	_, err := backdrop.Scatter(geo.NewSize(100, 100), 3, &opts, evade.NewRand(1))
	assert.Error(t, err)
}

func TestChecker(t *testing.T) {
	t.Parallel()

	boxes := backdrop.Checker(geo.NewSize(100, 50), 0)
	// 3 columns by 2 rows, half of them filled.
	require.Len(t, boxes, 3)
	assert.Equal(t, geo.NewBox(geo.NewPoint(0, 0), 46, 46), boxes[0])
	assert.Equal(t, geo.NewBox(geo.NewPoint(92, 0), 46, 46), boxes[1])
	assert.Equal(t, geo.NewBox(geo.NewPoint(46, 46), 46, 46), boxes[2])

	assert.Len(t, backdrop.Checker(geo.NewSize(40, 40), 10), 8)
	assert.Empty(t, backdrop.Checker(geo.Size{}, 10))
}

func TestScatterDefaultRand(t *testing.T) {
	t.Parallel()

	sprites, err := backdrop.Scatter(geo.NewSize(100, 100), 3, nil, nil)
	require.NoError(t, err)
	assert.Len(t, sprites, 3)
}

func TestScatterFilledDarker(t *testing.T) {
	t.Parallel()

	outline := backdrop.DefaultScatter
	outline.Glyphs = []string{"♡"}
	filled := outline
	filled.Glyphs = []string{"❤"}

	area := geo.NewSize(200, 400)
	light, err := backdrop.Scatter(area, 5, &outline, evade.NewRand(21))
	require.NoError(t, err)
	dark, err := backdrop.Scatter(area, 5, &filled, evade.NewRand(21))
	require.NoError(t, err)

	for i := range light {
		assert.Equal(t, light[i].TopLeft, dark[i].TopLeft)
		assert.NotEqual(t, light[i].Color, dark[i].Color)
	}
}
