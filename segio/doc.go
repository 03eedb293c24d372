// SPDX-License-Identifier: MIT

// Package segio reads and writes segment lists as YAML documents:
//
//	segments:
//	  - id: main-1
//	    from: [0, 0, 0]
//	    to: [10, 0, 0]
//	  - from: [10, 0]        # z defaults to 0, id is assigned by core.NewIndex
//	    to: [10, 10]
//
// JSON is a subset of YAML, so the same reader accepts
// {"segments": [{"id": "a", "from": [0,0,0], "to": [1,0,0]}]}.
package segio
