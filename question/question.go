// Package question holds the state of the "will you be my Valentine" screen: the
// measured layout, where the No button currently sits, how large the Yes button
// has grown and which teasing message is showing.
//
// A Session is the caller that package evade leaves to the screen. It is safe for
// concurrent use; every operation holds the session lock for its whole duration
// so attempts are applied one at a time.
package question

import (
	"context"
	"sync"
	"time"

	"cdr.dev/slog"

	"oss.terrastruct.com/evade"
	"oss.terrastruct.com/evade/lib/geo"
	"oss.terrastruct.com/evade/lib/go2"
	"oss.terrastruct.com/evade/lib/log"
)

const (
	DefaultScaleStep   = 0.08
	DefaultMaxYesScale = 2.2
)

// DefaultMessages rotate under the question each time No gets away.
var DefaultMessages = []string{
	"Are you sure? 😅",
	"Not so fast 😏",
	"Think it over 💖",
	"You can't fool me 🙈",
	"Last chance ✨",
}

type Config struct {
	ScaleStep   float64
	MaxYesScale float64

	// AvoidYes keeps No at least Clearance away from the Yes button once it has been measured.
	AvoidYes   bool
	Clearance  float64
	MaxSamples int
	Snap       bool

	Messages []string

	// Rand defaults to a source seeded from the clock.
	Rand evade.Rand
}

// Placement is what the screen renders after an event.
type Placement struct {
	Position geo.Point `json:"position"`
	Scale    float64   `json:"scale"`
	Attempt  int       `json:"attempt"`
	Message  string    `json:"message"`
	Answered bool      `json:"answered"`
	// Samples is how many candidates the last move drew. Zero when No did not move.
	Samples int `json:"samples"`
}

type Session struct {
	mu sync.Mutex

	cfg  Config
	rand evade.Rand

	arena geo.Size
	no    geo.Size
	yes   *geo.Box

	position geo.Point
	centered bool
	scale    float64
	attempts int
	message  string
	answered bool
	samples  int
}

func New(cfg *Config) *Session {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	if c.ScaleStep <= 0 {
		c.ScaleStep = DefaultScaleStep
	}
	if c.MaxYesScale <= 0 {
		c.MaxYesScale = DefaultMaxYesScale
	}
	if len(c.Messages) == 0 {
		c.Messages = DefaultMessages
	}

	s := &Session{
		cfg:     c,
		rand:    c.Rand,
		scale:   1,
		message: c.Messages[0],
	}
	if s.rand == nil {
		s.rand = evade.NewRand(time.Now().UnixNano())
	}
	return s
}

// MeasureArena records the size of the region No may roam in.
func (s *Session) MeasureArena(ctx context.Context, size geo.Size) Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.arena = size
	s.centerOnce(ctx)
	s.keepInside(ctx)
	return s.snapshot()
}

// MeasureNo records the rendered size of the No button.
func (s *Session) MeasureNo(ctx context.Context, size geo.Size) Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.no = size
	s.centerOnce(ctx)
	s.keepInside(ctx)
	return s.snapshot()
}

// MeasureYes records where the Yes button is drawn. nil forgets it.
func (s *Session) MeasureYes(ctx context.Context, box *geo.Box) Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.yes = box.Copy()
	log.Debug(ctx, "measured yes", slog.F("box", box.ToString()))
	return s.snapshot()
}

// centerOnce puts No in the middle of the arena the first time both sizes are known.
// Later measurements, e.g. after a rotation, leave the position alone.
func (s *Session) centerOnce(ctx context.Context) {
	if s.centered || s.arena.Empty() || s.no.Empty() {
		return
	}
	s.position = evade.CenteredPosition(s.arena, s.no)
	s.centered = true
	log.Debug(ctx, "centered no",
		slog.F("arena", s.arena.ToString()),
		slog.F("no", s.no.ToString()),
		slog.F("position", s.position.ToString()),
	)
}

// keepInside pulls No back into the arena after a measurement shrinks it.
// No is moved the least distance that fits, not re-centered.
func (s *Session) keepInside(ctx context.Context) {
	if !s.centered || s.arena.Empty() {
		return
	}
	maxX, maxY := s.arena.Slack(s.no)
	p := geo.NewPoint(geo.Clamp(s.position.X, 0, maxX), geo.Clamp(s.position.Y, 0, maxY))
	if p.Equals(s.position) {
		return
	}
	log.Debug(ctx, "pulled no back inside arena",
		slog.F("arena", s.arena.ToString()),
		slog.F("from", s.position.ToString()),
		slog.F("to", p.ToString()),
	)
	s.position = p
}

// Attempt handles the user reaching for No: the attempt is counted, Yes grows,
// the message changes and No jumps somewhere else in the arena. Before the arena
// is measured No stays put. Once the question is answered Attempt changes nothing.
func (s *Session) Attempt(ctx context.Context) Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answered {
		return s.snapshot()
	}

	s.attempts++
	s.scale = evade.NextAttemptScale(s.scale, s.cfg.ScaleStep, s.cfg.MaxYesScale)
	s.message = s.nextMessage()

	prev := s.position
	s.position, s.samples = evade.Place(prev, s.arena, s.no, &evade.Options{
		Counterpart:      s.yes,
		Clearance:        s.cfg.Clearance,
		AvoidCounterpart: s.cfg.AvoidYes,
		MaxSamples:       s.cfg.MaxSamples,
		Snap:             s.cfg.Snap,
		Rand:             s.rand,
	})

	if s.samples == 0 {
		log.Debug(ctx, "no attempt before arena was measured", slog.F("attempt", s.attempts))
	} else if s.cfg.AvoidYes && s.yes != nil &&
		geo.BoxAt(s.position, s.no).Expand(go2.Max(0, s.cfg.Clearance)).Overlaps(s.yes) {
		log.Warn(ctx, "no could not get clear of yes",
			slog.F("attempt", s.attempts),
			slog.F("to", s.position.ToString()),
			slog.F("yes", s.yes.ToString()),
			slog.F("samples", s.samples),
		)
	} else {
		log.Debug(ctx, "no evaded",
			slog.F("attempt", s.attempts),
			slog.F("from", prev.ToString()),
			slog.F("to", s.position.ToString()),
			slog.F("moved", geo.TruncateDecimals(prev.DistanceTo(s.position))),
			slog.F("samples", s.samples),
			slog.F("scale", s.scale),
		)
	}
	return s.snapshot()
}

// nextMessage picks any message other than the current one.
func (s *Session) nextMessage() string {
	options := go2.Filter(s.cfg.Messages, func(m string) bool {
		return m != s.message
	})
	if len(options) == 0 {
		return s.message
	}
	i := int(s.rand.Float64() * float64(len(options)))
	return options[go2.Min(i, len(options)-1)]
}

// Accept handles Yes. The session stops reacting to attempts afterwards.
func (s *Session) Accept(ctx context.Context) Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.answered {
		s.answered = true
		log.Info(ctx, "question answered", slog.F("attempts", s.attempts), slog.F("scale", s.scale))
	}
	return s.snapshot()
}

func (s *Session) Snapshot() Placement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Placement {
	return Placement{
		Position: s.position,
		Scale:    s.scale,
		Attempt:  s.attempts,
		Message:  s.message,
		Answered: s.answered,
		Samples:  s.samples,
	}
}

func (s *Session) Position() geo.Point {
	return s.Snapshot().Position
}

func (s *Session) Scale() float64 {
	return s.Snapshot().Scale
}

func (s *Session) Attempts() int {
	return s.Snapshot().Attempt
}

func (s *Session) Message() string {
	return s.Snapshot().Message
}

func (s *Session) Centered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.centered
}
