package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/evade"
	"oss.terrastruct.com/evade/backdrop"
	"oss.terrastruct.com/evade/lib/geo"
	"oss.terrastruct.com/evade/lib/log"
	"oss.terrastruct.com/evade/lib/version"
	"oss.terrastruct.com/evade/lib/xmain"
	"oss.terrastruct.com/evade/question"
)

func main() {
	xmain.Main(run)
}

type layout struct {
	arena geo.Size
	no    geo.Size
	yes   *geo.Box
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	arenaFlag := ms.Opts.String("EVADE_ARENA", "arena", "a", "300x300", "size of the region the No button roams in, as WIDTHxHEIGHT.")
	noFlag := ms.Opts.String("EVADE_NO", "no", "n", "96x44", "size of the No button, as WIDTHxHEIGHT.")
	yesFlag := ms.Opts.String("EVADE_YES", "yes", "y", "", "the Yes button, as X,Y,WIDTHxHEIGHT in arena coordinates.")
	avoidFlag, err := ms.Opts.Bool("EVADE_AVOID", "avoid", "", false, "keep the No button clear of the Yes button.")
	if err != nil {
		return err
	}
	clearanceFlag, err := ms.Opts.Float64("EVADE_CLEARANCE", "clearance", "c", 0, "margin kept between the buttons when avoiding.")
	if err != nil {
		return err
	}
	samplesFlag, err := ms.Opts.Int64("EVADE_SAMPLES", "samples", "s", evade.DefaultMaxSamples, "candidates drawn per attempt before giving up on avoiding the Yes button.")
	if err != nil {
		return err
	}
	attemptsFlag, err := ms.Opts.Int64("EVADE_ATTEMPTS", "attempts", "t", 5, "number of times to reach for No.")
	if err != nil {
		return err
	}
	seedFlag, err := ms.Opts.Int64("EVADE_SEED", "seed", "", 0, "seed for the placements. 0 seeds from the clock.")
	if err != nil {
		return err
	}
	snapFlag, err := ms.Opts.Bool("EVADE_SNAP", "snap", "", false, "round positions to whole pixels.")
	if err != nil {
		return err
	}
	heartsFlag, err := ms.Opts.Int64("EVADE_HEARTS", "hearts", "", 0, "also scatter this many background hearts over the arena.")
	if err != nil {
		return err
	}
	jsonFlag, err := ms.Opts.Bool("EVADE_JSON", "json", "j", false, "print one JSON object per line.")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "print the version.")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if len(ms.Opts.Flags.Args()) > 0 {
		return xmain.UsageErrorf("unexpected arguments: %v", ms.Opts.Flags.Args())
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	l, err := parseLayout(*arenaFlag, *noFlag, *yesFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	if *attemptsFlag < 0 {
		return xmain.UsageErrorf("--attempts cannot be negative: %d", *attemptsFlag)
	}
	if *clearanceFlag < 0 {
		return xmain.UsageErrorf("--clearance cannot be negative: %v", *clearanceFlag)
	}
	if *avoidFlag && l.yes == nil {
		ms.Log.Warn.Printf("--avoid has no effect without --yes")
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
		ms.Log.Info.Printf("using seed %d", seed)
	}
	r := evade.NewRand(seed)

	ctx = log.Human(ctx, ms.Stderr, *debugFlag)

	s := question.New(&question.Config{
		AvoidYes:   *avoidFlag,
		Clearance:  *clearanceFlag,
		MaxSamples: int(*samplesFlag),
		Snap:       *snapFlag,
		Rand:       r,
	})
	s.MeasureArena(ctx, l.arena)
	s.MeasureNo(ctx, l.no)
	p := s.MeasureYes(ctx, l.yes)

	pr := newPrinter(ms, *jsonFlag)
	if err := pr.placement("start", p); err != nil {
		return err
	}
	for i := int64(0); i < *attemptsFlag; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pr.placement("attempt", s.Attempt(ctx)); err != nil {
			return err
		}
	}

	if *heartsFlag > 0 {
		sprites, err := backdrop.Scatter(l.arena, int(*heartsFlag), nil, r)
		if err != nil {
			return err
		}
		for _, sp := range sprites {
			if err := pr.sprite(sp); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseLayout(arena, no, yes string) (_ layout, err error) {
	defer xdefer.Errorf(&err, "failed to parse layout")

	var l layout
	l.arena, err = geo.ParseSize(arena)
	if err != nil {
		return layout{}, fmt.Errorf("--arena: %w", err)
	}
	l.no, err = geo.ParseSize(no)
	if err != nil {
		return layout{}, fmt.Errorf("--no: %w", err)
	}
	if yes != "" {
		l.yes, err = geo.ParseBox(yes)
		if err != nil {
			return layout{}, fmt.Errorf("--yes: %w", err)
		}
	}
	return l, nil
}

type printer struct {
	ms   *xmain.State
	json bool
	enc  *json.Encoder
}

func newPrinter(ms *xmain.State, asJSON bool) *printer {
	return &printer{
		ms:   ms,
		json: asJSON,
		enc:  json.NewEncoder(ms.Stdout),
	}
}

func (pr *printer) placement(event string, p question.Placement) error {
	if pr.json {
		return pr.enc.Encode(struct {
			Event string `json:"event"`
			question.Placement
		}{event, p})
	}
	var err error
	if event == "start" {
		_, err = fmt.Fprintf(pr.ms.Stdout, "start: no at %s\n", p.Position.ToString())
	} else {
		_, err = fmt.Fprintf(pr.ms.Stdout, "attempt %d: no at %s, yes x%v, %q\n", p.Attempt, p.Position.ToString(), geo.TruncateDecimals(p.Scale), p.Message)
	}
	return err
}

func (pr *printer) sprite(s backdrop.Sprite) error {
	if pr.json {
		return pr.enc.Encode(struct {
			Event string `json:"event"`
			backdrop.Sprite
		}{"heart", s})
	}
	_, err := fmt.Fprintf(pr.ms.Stdout, "heart: %s at %s, size %v, %s\n", s.Glyph, s.TopLeft.ToString(), geo.TruncateDecimals(s.Size), s.Color)
	return err
}
