package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxOverlaps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a    *Box
		b    *Box
		exp  bool
	}{
		{
			name: "apart",
			a:    NewBox(NewPoint(0, 0), 10, 10),
			b:    NewBox(NewPoint(20, 20), 10, 10),
			exp:  false,
		},
		{
			name: "touching_right_edge",
			a:    NewBox(NewPoint(0, 0), 10, 10),
			b:    NewBox(NewPoint(10, 0), 10, 10),
			exp:  false,
		},
		{
			name: "touching_bottom_edge",
			a:    NewBox(NewPoint(0, 0), 10, 10),
			b:    NewBox(NewPoint(0, 10), 10, 10),
			exp:  false,
		},
		{
			name: "partial",
			a:    NewBox(NewPoint(0, 0), 10, 10),
			b:    NewBox(NewPoint(5, 5), 10, 10),
			exp:  true,
		},
		{
			name: "contained",
			a:    NewBox(NewPoint(0, 0), 100, 100),
			b:    NewBox(NewPoint(25, 25), 10, 10),
			exp:  true,
		},
		{
			name: "nil",
			a:    NewBox(NewPoint(0, 0), 100, 100),
			b:    nil,
			exp:  false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.exp, tc.b.Overlaps(tc.a))
		})
	}
}

func TestBoxExpand(t *testing.T) {
	b := NewBox(NewPoint(10, 20), 30, 40).Expand(5)
	assert.Equal(t, NewPoint(5, 15), b.TopLeft)
	assert.Equal(t, 40.0, b.Width)
	assert.Equal(t, 50.0, b.Height)

	// Touching boxes overlap once either side gains clearance.
	a := NewBox(NewPoint(0, 0), 10, 10)
	c := NewBox(NewPoint(10, 0), 10, 10)
	assert.False(t, a.Overlaps(c))
	assert.True(t, a.Expand(1).Overlaps(c))
}

func TestBoxContains(t *testing.T) {
	arena := NewBox(NewPoint(0, 0), 100, 50)
	assert.True(t, arena.Contains(NewBox(NewPoint(0, 0), 100, 50)))
	assert.True(t, arena.Contains(NewBox(NewPoint(10, 10), 20, 20)))
	assert.False(t, arena.Contains(NewBox(NewPoint(90, 10), 20, 20)))
}

func TestParse(t *testing.T) {
	s, err := ParseSize("300x260")
	assert.NoError(t, err)
	assert.Equal(t, NewSize(300, 260), s)
	assert.Equal(t, "300x260", s.ToString())

	_, err = ParseSize("300")
	assert.Error(t, err)
	_, err = ParseSize("-1x2")
	assert.Error(t, err)

	b, err := ParseBox("0, 10, 300x260")
	assert.NoError(t, err)
	assert.Equal(t, NewBox(NewPoint(0, 10), 300, 260), b)

	_, err = ParseBox("0,300x260")
	assert.Error(t, err)
}

func TestSizeSlack(t *testing.T) {
	x, y := NewSize(200, 100).Slack(NewSize(40, 20))
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 80.0, y)

	x, y = NewSize(20, 100).Slack(NewSize(40, 200))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	assert.True(t, Size{}.Empty())
	assert.True(t, NewSize(10, 0).Empty())
	assert.False(t, NewSize(10, 1).Empty())
}
