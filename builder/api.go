// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// Sketch accumulates the segments emitted by constructors.
type Sketch struct {
	segs []core.Segment
}

// Line appends the segment a–b with the next generated ID.
func (s *Sketch) Line(cfg builderConfig, a, b geom.Point) {
	s.segs = append(s.segs, core.Seg(cfg.idFn(len(s.segs)), a, b))
}

// Len returns the number of segments emitted so far.
func (s *Sketch) Len() int { return len(s.segs) }

// Constructor emits one topology into the sketch. Constructors validate
// their parameters before emitting anything and never panic.
type Constructor func(s *Sketch, cfg builderConfig) error

// Build resolves bopts, runs cons in order and returns the segments.
// The first constructor error is returned wrapped; no partial result is
// returned with it.
func Build(bopts []BuilderOption, cons ...Constructor) ([]core.Segment, error) {
	cfg := newBuilderConfig(bopts...)
	s := &Sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if cfg.rng != nil {
		shuffle(s.segs, cfg)
	}
	return s.segs, nil
}

// shuffle permutes segs and flips endpoints, both driven by cfg.rng.
func shuffle(segs []core.Segment, cfg builderConfig) {
	cfg.rng.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
	for i := range segs {
		if cfg.rng.Intn(2) == 1 {
			segs[i].A, segs[i].B = segs[i].B, segs[i].A
		}
	}
}
