// SPDX-License-Identifier: MIT

package road_test

import (
	"context"
	"fmt"

	"github.com/anayp/roadbuilder/builder"
	"github.com/anayp/roadbuilder/road"
)

// ExampleCompile builds a T junction with a dashed centerline.
func ExampleCompile() {
	segs, _ := builder.Build(nil, builder.Star(4))

	cfg := road.DefaultConfig()
	cfg.AddCenterLine = true
	cfg.CenterDashLength, cfg.CenterGapLength = 3, 2

	res, err := road.Compile(context.Background(), segs, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, pr := range res.Paths {
		fmt.Println(len(pr.Path.Points), pr.TopFaces, len(pr.Spans))
	}
	fmt.Println("segments:", res.TotalSegments)
	// Output:
	// 2 1 2
	// 2 1 2
	// 2 1 2
	// segments: 3
}
