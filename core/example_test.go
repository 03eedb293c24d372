// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// ExampleNewIndex indexes a T junction and lists its terminals:
//
//	L───J───R
//	    │
//	    S
func ExampleNewIndex() {
	l, j, r, s := geom.Pt(-1, 0, 0), geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(0, -1, 0)
	idx := core.NewIndex([]core.Segment{
		core.Seg("lj", l, j),
		core.Seg("jr", j, r),
		core.Seg("js", j, s),
	})

	for _, p := range idx.Terminals() {
		fmt.Println(p, idx.Degree(p))
	}
	// Output:
	// (-1, 0, 0) 1
	// (0, 0, 0) 3
	// (1, 0, 0) 1
	// (0, -1, 0) 1
}
