// Package evade computes where a target that runs away from the user should go next.
//
// Everything in this package is a pure function of its inputs plus an injected
// source of randomness. Callers own the current position, scale and attempt
// count and thread them through each call. See package question for a caller.
package evade

import (
	"math"

	"oss.terrastruct.com/evade/lib/geo"
	"oss.terrastruct.com/evade/lib/go2"
)

// DefaultMaxSamples bounds how many candidates NextPosition draws while
// looking for one that clears the counterpart.
const DefaultMaxSamples = 12

type Options struct {
	// Counterpart is the fixed element the target should stay away from.
	Counterpart *geo.Box
	// Clearance is the margin kept around the target when testing against Counterpart.
	Clearance float64
	// AvoidCounterpart turns the overlap test on. Without it candidates are accepted as drawn.
	AvoidCounterpart bool
	MaxSamples       int
	// Snap rounds candidates to whole pixels.
	Snap bool

	// Rand defaults to a time seeded source.
	Rand Rand
}

func (opts *Options) maxSamples() int {
	if opts.MaxSamples <= 0 {
		return DefaultMaxSamples
	}
	return opts.MaxSamples
}

func (opts *Options) avoiding() bool {
	return opts.AvoidCounterpart && opts.Counterpart != nil
}

// NextPosition returns a new top left corner for a target of size target inside arena.
//
// The result always satisfies 0 <= x <= max(0, arena.Width-target.Width) and the
// same on y. The first candidate is uniform over that range. When avoidance is on,
// a candidate whose box grown by Clearance overlaps Counterpart is redrawn, up to
// MaxSamples draws in total, after which the last candidate is returned as is.
// Redraws come from the bands of the arena that lie wholly beside, above or below
// Counterpart when any exist, so a thin strip of free space is still found quickly.
//
// An arena that has not been measured yet (either side <= 0) leaves prev unchanged.
func NextPosition(prev geo.Point, arena, target geo.Size, opts *Options) geo.Point {
	p, _ := Place(prev, arena, target, opts)
	return p
}

// Place is NextPosition that also reports how many candidates were drawn.
// Zero samples means the arena was unmeasured and prev was returned.
func Place(prev geo.Point, arena, target geo.Size, opts *Options) (geo.Point, int) {
	if opts == nil {
		opts = &Options{}
	}
	if arena.Empty() {
		return prev, 0
	}

	r := opts.Rand
	if r == nil {
		r = defaultRand
	}

	target = geo.NewSize(go2.Max(0, target.Width), go2.Max(0, target.Height))
	maxX, maxY := arena.Slack(target)
	clearance := go2.Max(0, opts.Clearance)

	full := geo.NewBox(geo.NewPoint(0, 0), maxX, maxY)
	candidate := sample(r, full, maxX, maxY, opts.Snap)
	if !opts.avoiding() {
		return candidate, 1
	}

	var free []*geo.Box
	banded := false
	n := opts.maxSamples()
	for i := 1; ; i++ {
		if !geo.BoxAt(candidate, target).Expand(clearance).Overlaps(opts.Counterpart) {
			return candidate, i
		}
		if i == n {
			return candidate, n
		}
		if !banded {
			free = freeBands(opts.Counterpart, target, clearance, maxX, maxY)
			banded = true
		}
		region := full
		if len(free) > 0 {
			region = pick(r, free)
		}
		candidate = sample(r, region, maxX, maxY, opts.Snap)
	}
}

// sample draws a top left corner uniformly from region, which lies within [0, maxX]x[0, maxY].
func sample(r Rand, region *geo.Box, maxX, maxY float64, snap bool) geo.Point {
	x := region.TopLeft.X + r.Float64()*region.Width
	y := region.TopLeft.Y + r.Float64()*region.Height
	if snap {
		x = geo.Clamp(math.Round(x), 0, math.Floor(maxX))
		y = geo.Clamp(math.Round(y), 0, math.Floor(maxY))
	}
	return geo.NewPoint(x, y)
}

// freeBands returns the regions of top left corners whose clearance-grown box lies
// entirely left of, right of, above or below obstacle.
func freeBands(obstacle *geo.Box, target geo.Size, clearance, maxX, maxY float64) []*geo.Box {
	var bands []*geo.Box

	// Corners strictly inside (lo, hi) on an axis collide with obstacle on that axis.
	loX := obstacle.TopLeft.X - target.Width - clearance
	hiX := obstacle.Right() + clearance
	loY := obstacle.TopLeft.Y - target.Height - clearance
	hiY := obstacle.Bottom() + clearance

	if loX >= 0 {
		bands = append(bands, geo.NewBox(geo.NewPoint(0, 0), go2.Min(loX, maxX), maxY))
	}
	if hiX <= maxX {
		x := go2.Max(0, hiX)
		bands = append(bands, geo.NewBox(geo.NewPoint(x, 0), maxX-x, maxY))
	}
	if loY >= 0 {
		bands = append(bands, geo.NewBox(geo.NewPoint(0, 0), maxX, go2.Min(loY, maxY)))
	}
	if hiY <= maxY {
		y := go2.Max(0, hiY)
		bands = append(bands, geo.NewBox(geo.NewPoint(0, y), maxX, maxY-y))
	}
	return bands
}

// pick chooses one of bands weighted by the number of whole pixel corners it holds,
// so zero-width bands along an edge stay reachable.
func pick(r Rand, bands []*geo.Box) *geo.Box {
	weights := make([]float64, len(bands))
	total := 0.
	for i, b := range bands {
		weights[i] = (b.Width + 1) * (b.Height + 1)
		total += weights[i]
	}
	v := r.Float64() * total
	for i, w := range weights {
		if v < w {
			return bands[i]
		}
		v -= w
	}
	return bands[len(bands)-1]
}

// CenteredPosition centers target within arena. A target larger than the arena
// is pinned to the origin on that axis.
func CenteredPosition(arena, target geo.Size) geo.Point {
	return geo.NewPoint(
		go2.Max(0, (arena.Width-target.Width)/2),
		go2.Max(0, (arena.Height-target.Height)/2),
	)
}

// NextAttemptScale grows prev by step, saturating at max.
func NextAttemptScale(prev, step, max float64) float64 {
	return go2.Min(max, prev+step)
}

// Contained reports whether p is a legal top left corner for target inside arena.
func Contained(p geo.Point, arena, target geo.Size) bool {
	maxX, maxY := arena.Slack(target)
	return p.X >= 0 && p.X <= maxX && p.Y >= 0 && p.Y <= maxY
}
