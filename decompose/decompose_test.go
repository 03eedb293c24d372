// SPDX-License-Identifier: MIT

package decompose_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/decompose"
	"github.com/anayp/roadbuilder/geom"
)

var (
	pA = geom.Pt(0, 0, 0)
	pB = geom.Pt(10, 0, 0)
	pC = geom.Pt(10, 10, 0)
	pD = geom.Pt(0, 10, 0)
	pE = geom.Pt(20, 0, 0)
	pF = geom.Pt(20, 10, 0)
)

// coverage returns how many segments the paths account for, counting
// len-1 for open paths and len(Ordered) for closed ones.
func coverage(paths []decompose.Path) int {
	n := 0
	for _, p := range paths {
		if p.Closed {
			n += len(p.Ordered())
		} else {
			n += len(p.Points) - 1
		}
	}
	return n
}

// assertPartition checks that every indexed segment is consumed exactly once.
func assertPartition(t *testing.T, idx *core.Index, res *decompose.Result) {
	t.Helper()
	seen := map[string]int{}
	for _, p := range res.Paths {
		for _, id := range p.Segments {
			seen[id]++
		}
	}
	for _, s := range idx.Segments() {
		assert.Equal(t, 1, seen[s.ID], "segment %s", s.ID)
	}
	assert.Len(t, seen, idx.SegmentCount())
	assert.Equal(t, idx.SegmentCount(), coverage(res.Paths))
}

func TestDecompose_NilIndex(t *testing.T) {
	res, err := decompose.Decompose(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, decompose.ErrIndexNil)
}

func TestDecompose_Empty(t *testing.T) {
	res, err := decompose.Decompose(core.NewIndex(nil))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestDecompose_OpenChain(t *testing.T) {
	// A–B–C–D given out of order and with mixed endpoint order.
	idx := core.NewIndex([]core.Segment{
		core.Seg("bc", pB, pC),
		core.Seg("dc", pD, pC),
		core.Seg("ab", pA, pB),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)

	p := res.Paths[0]
	assert.False(t, p.Closed)
	assert.Len(t, p.Points, 4)
	assert.Equal(t, 3, p.SegmentCount())
	// The chain runs between the two degree-1 points.
	assert.ElementsMatch(t, []geom.Point{pA, pD}, []geom.Point{p.First(), p.Last()})
	assert.Equal(t, 1, res.Chains)
	assert.Equal(t, 0, res.Loops)
	assertPartition(t, idx, res)
}

func TestDecompose_Triangle(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		core.Seg("ab", pA, pB),
		core.Seg("bc", pB, pC),
		core.Seg("ca", pC, pA),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)

	p := res.Paths[0]
	assert.True(t, p.Closed)
	assert.Equal(t, []geom.Point{pA, pB, pC, pA}, p.Points)
	assert.Equal(t, []geom.Point{pA, pB, pC}, p.Ordered())
	assert.Equal(t, 1, res.Loops)
	assertPartition(t, idx, res)
}

func TestDecompose_JunctionEmitsOneChainPerBranch(t *testing.T) {
	hub := geom.Pt(0, 0, 0)
	idx := core.NewIndex([]core.Segment{
		core.Seg("e", hub, geom.Pt(10, 0, 0)),
		core.Seg("n", hub, geom.Pt(0, 10, 0)),
		core.Seg("w1", hub, geom.Pt(-10, 0, 0)),
		core.Seg("w2", geom.Pt(-10, 0, 0), geom.Pt(-20, 0, 0)),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	assert.Len(t, res.Paths, 3)
	for _, p := range res.Paths {
		assert.False(t, p.Closed)
	}
	assertPartition(t, idx, res)
}

func TestDecompose_FigureEight(t *testing.T) {
	// Two triangles sharing pB (degree 4): both come out as open walks that
	// start and end on the shared point.
	idx := core.NewIndex([]core.Segment{
		core.Seg("1", pA, pB), core.Seg("2", pB, pD), core.Seg("3", pD, pA),
		core.Seg("4", pB, pE), core.Seg("5", pE, pF), core.Seg("6", pF, pB),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	require.Len(t, res.Paths, 2)
	for _, p := range res.Paths {
		assert.False(t, p.Closed)
		assert.Equal(t, pB, p.First())
		assert.Equal(t, pB, p.Last())
		assert.Equal(t, 3, p.SegmentCount())
	}
	assertPartition(t, idx, res)
}

func TestDecompose_ChainPlusSeparateLoop(t *testing.T) {
	idx := core.NewIndex([]core.Segment{
		core.Seg("ab", pA, pB),
		core.Seg("ce", pC, pE), core.Seg("ef", pE, pF), core.Seg("fc", pF, pC),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	require.Len(t, res.Paths, 2)
	assert.False(t, res.Paths[0].Closed, "chains are emitted before loops")
	assert.True(t, res.Paths[1].Closed)
	assertPartition(t, idx, res)
}

func TestDecompose_DegenerateSegments(t *testing.T) {
	// A zero-length segment hanging off a terminal yields a two-point path
	// whose points coincide; an isolated one yields a closed self-loop.
	idx := core.NewIndex([]core.Segment{
		core.Seg("ab", pA, pB),
		core.Seg("aa", pA, pA),
		core.Seg("cc", pC, pC),
	})
	res, err := decompose.Decompose(idx)
	require.NoError(t, err)
	assertPartition(t, idx, res)

	var selfLoop *decompose.Path
	for i := range res.Paths {
		if res.Paths[i].Closed {
			selfLoop = &res.Paths[i]
		}
	}
	require.NotNil(t, selfLoop)
	assert.Equal(t, []geom.Point{pC, pC}, selfLoop.Points)
	assert.Equal(t, 1, selfLoop.Distinct())
	assert.Len(t, selfLoop.Ordered(), 1)
}

func TestDecompose_OnPathHook(t *testing.T) {
	idx := core.NewIndex([]core.Segment{core.Seg("ab", pA, pB), core.Seg("cd", pC, pD)})

	var n int
	_, err := decompose.Decompose(idx, decompose.WithOnPath(func(decompose.Path) error {
		n++
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stop := errors.New("stop")
	res, err := decompose.Decompose(idx, decompose.WithOnPath(func(decompose.Path) error { return stop }))
	assert.ErrorIs(t, err, stop)
	assert.Len(t, res.Paths, 1)
}

func TestDecompose_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := core.NewIndex([]core.Segment{core.Seg("ab", pA, pB)})
	res, err := decompose.Decompose(idx, decompose.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Paths)
}

func TestStepFactorOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { decompose.WithChainStepFactor(0) })
	assert.Panics(t, func() { decompose.WithLoopStepFactor(-1) })
	assert.NotPanics(t, func() { decompose.WithLoopStepFactor(1) })
}

func TestDecompose_Deterministic(t *testing.T) {
	segs := []core.Segment{
		core.Seg("1", pA, pB), core.Seg("2", pB, pC), core.Seg("3", pB, pE),
		core.Seg("4", pE, pF), core.Seg("5", pF, pC),
	}
	first, err := decompose.Decompose(core.NewIndex(segs))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := decompose.Decompose(core.NewIndex(segs))
		require.NoError(t, err)
		assert.Equal(t, first.Paths, again.Paths)
	}
}

func TestPath_OrderedKeepsDistinctPoints(t *testing.T) {
	a, b := geom.Pt(0, 0, 0), geom.Pt(5, 0, 0)
	paths := []decompose.Path{
		{Points: []geom.Point{a, b}},
		{Points: []geom.Point{a, b, a}, Closed: true},
		{Points: []geom.Point{a, a, b}},
		{Points: []geom.Point{a, b, b, a}, Closed: true},
	}
	for i, p := range paths {
		require.GreaterOrEqual(t, p.Distinct(), 2, "path %d", i)
		assert.GreaterOrEqual(t, len(p.Ordered()), p.Distinct(), "path %d", i)
	}
}
