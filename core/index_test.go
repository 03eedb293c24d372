// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// Common points used across index tests.
var (
	ptA = geom.Pt(0, 0, 0)
	ptB = geom.Pt(10, 0, 0)
	ptC = geom.Pt(10, 10, 0)
	ptD = geom.Pt(0, 10, 0)
)

func TestNewIndex_Empty(t *testing.T) {
	for _, segs := range [][]core.Segment{nil, {}} {
		idx := core.NewIndex(segs)
		assert.Equal(t, 0, idx.Len())
		assert.Equal(t, 0, idx.SegmentCount())
		assert.Empty(t, idx.Terminals())
		assert.Empty(t, idx.Points())
	}
}

func TestNewIndex_EveryEndpointListsSegment(t *testing.T) {
	segs := []core.Segment{
		core.Seg("ab", ptA, ptB),
		core.Seg("bc", ptB, ptC),
		core.Seg("cd", ptC, ptD),
	}
	idx := core.NewIndex(segs)

	require.Equal(t, 4, idx.Len())
	require.Equal(t, 3, idx.SegmentCount())

	for _, s := range segs {
		assert.Contains(t, idx.Incident(s.A), s)
		assert.Contains(t, idx.Incident(s.B), s)
	}
	assert.Equal(t, 1, idx.Degree(ptA))
	assert.Equal(t, 2, idx.Degree(ptB))
	assert.Equal(t, 2, idx.Degree(ptC))
	assert.Equal(t, 1, idx.Degree(ptD))
	assert.Equal(t, 0, idx.Degree(geom.Pt(99, 99, 99)))
	assert.False(t, idx.Has(geom.Pt(99, 99, 99)))
}

func TestNewIndex_InsertionOrder(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		core.Seg("2", ptC, ptB),
		core.Seg("1", ptB, ptA),
	})
	assert.Equal(t, []geom.Point{ptC, ptB, ptA}, idx.Points())
	assert.Equal(t, []geom.Point{ptC, ptA}, idx.Terminals())

	inc := idx.Incident(ptB)
	require.Len(t, inc, 2)
	assert.Equal(t, "2", inc[0].ID)
	assert.Equal(t, "1", inc[1].ID)
}

func TestNewIndex_DuplicateIDs(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		core.Seg("x", ptA, ptB),
		core.Seg("x", ptC, ptD), // dropped: same identity
	})
	assert.Equal(t, 1, idx.SegmentCount())
	assert.Equal(t, 1, idx.Stats().Duplicates)
	assert.False(t, idx.Has(ptC))

	s, ok := idx.Segment("x")
	require.True(t, ok)
	assert.Equal(t, ptA, s.A)
}

func TestNewIndex_GeneratedIDs(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		{A: ptA, B: ptB},
		core.Seg("s2", ptB, ptC), // caller already owns "s2"
		{A: ptC, B: ptD},
	})
	require.Equal(t, 3, idx.SegmentCount())

	ids := make([]string, 0, 3)
	for _, s := range idx.Segments() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids)

	idx = core.NewIndex([]core.Segment{{A: ptA, B: ptB}}, core.WithIDPrefix("edge-"))
	_, ok := idx.Segment("edge-1")
	assert.True(t, ok)
}

func TestNewIndex_GeneratedIDsAvoidLaterExplicit(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		{A: ptA, B: ptB},
		core.Seg("s1", ptB, ptC),
	})
	assert.Equal(t, 2, idx.SegmentCount())
	assert.Zero(t, idx.Stats().Duplicates)
	_, ok := idx.Segment("s2")
	assert.True(t, ok)
}

func TestNewIndex_DegenerateCountsTwice(t *testing.T) {
	idx := core.NewIndex([]core.Segment{core.Seg("loop", ptA, ptA)})
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 2, idx.Degree(ptA))
	assert.Len(t, idx.Incident(ptA), 2)
	assert.Empty(t, idx.Terminals())
	assert.Equal(t, 1, idx.Stats().Degenerate)
}

func TestNewIndex_SkipNonFinite(t *testing.T) {
	bad := core.Seg("nan", ptA, geom.Pt(math.NaN(), 0, 0))
	good := core.Seg("ok", ptA, ptB)

	idx := core.NewIndex([]core.Segment{bad, good}, core.WithSkipNonFinite())
	assert.Equal(t, 1, idx.SegmentCount())
	assert.Equal(t, 1, idx.Stats().Rejected)

	idx = core.NewIndex([]core.Segment{bad, good})
	assert.Equal(t, 2, idx.SegmentCount(), "non-finite segments are indexed unless asked otherwise")
}

func TestWithIDPrefix_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { core.WithIDPrefix("") })
}

func TestSegment_Other(t *testing.T) {
	s := core.Seg("ab", ptA, ptB)

	o, err := s.Other(ptA)
	require.NoError(t, err)
	assert.Equal(t, ptB, o)

	o, err = s.Other(ptB)
	require.NoError(t, err)
	assert.Equal(t, ptA, o)

	_, err = s.Other(ptC)
	assert.ErrorIs(t, err, core.ErrNotEndpoint)

	d := core.Seg("d", ptC, ptC)
	o, err = d.Other(ptC)
	require.NoError(t, err)
	assert.Equal(t, ptC, o)
	assert.True(t, d.IsDegenerate())
	assert.InDelta(t, 10, s.Length(), 1e-12)
}

func TestIndex_Stats(t *testing.T) {
	// Y junction: hub degree 3, three leaves.
	hub := geom.Pt(0, 0, 0)
	idx := core.NewIndex([]core.Segment{
		core.Seg("1", hub, geom.Pt(1, 0, 0)),
		core.Seg("2", hub, geom.Pt(0, 1, 0)),
		core.Seg("3", hub, geom.Pt(-1, 0, 0)),
	})
	st := idx.Stats()
	assert.Equal(t, core.Stats{Points: 4, Segments: 3, Terminals: 4}, st)
}
