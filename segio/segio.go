// SPDX-License-Identifier: MIT

package segio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

var (
	// ErrBadPoint indicates a coordinate list that is not 2 or 3 numbers long.
	ErrBadPoint = errors.New("segio: point must have 2 or 3 coordinates")

	// ErrNoSegments indicates a document without a segments list.
	ErrNoSegments = errors.New("segio: no segments")
)

// document is the on-disk layout.
type document struct {
	Segments []record `yaml:"segments"`
}

type record struct {
	ID   string    `yaml:"id,omitempty"`
	From []float64 `yaml:"from,flow"`
	To   []float64 `yaml:"to,flow"`
}

// Read decodes one document from r.
func Read(r io.Reader) ([]core.Segment, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSegments
		}
		return nil, fmt.Errorf("segio: decode: %w", err)
	}
	if len(doc.Segments) == 0 {
		return nil, ErrNoSegments
	}

	segs := make([]core.Segment, 0, len(doc.Segments))
	for i, rec := range doc.Segments {
		a, err := point(rec.From)
		if err != nil {
			return nil, fmt.Errorf("segio: segment %d from: %w", i, err)
		}
		b, err := point(rec.To)
		if err != nil {
			return nil, fmt.Errorf("segio: segment %d to: %w", i, err)
		}
		segs = append(segs, core.Seg(rec.ID, a, b))
	}
	return segs, nil
}

// ReadFile reads the document at path.
func ReadFile(path string) ([]core.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	segs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return segs, nil
}

// Write encodes segs as one YAML document.
func Write(w io.Writer, segs []core.Segment) error {
	doc := document{Segments: make([]record, len(segs))}
	for i, s := range segs {
		doc.Segments[i] = record{
			ID:   s.ID,
			From: []float64{s.A.X, s.A.Y, s.A.Z},
			To:   []float64{s.B.X, s.B.Y, s.B.Z},
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("segio: encode: %w", err)
	}
	return enc.Close()
}

// WriteFile writes segs to path, replacing any existing file.
func WriteFile(path string, segs []core.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, segs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func point(c []float64) (geom.Point, error) {
	switch len(c) {
	case 2:
		return geom.Pt(c[0], c[1], 0), nil
	case 3:
		return geom.Pt(c[0], c[1], c[2]), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: got %d", ErrBadPoint, len(c))
	}
}
