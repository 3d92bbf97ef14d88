package main

import (
	"fmt"
	"strconv"
	"strings"

	"desktop-automate/src/geometry"
)

// parseRect parses "left,top,right,bottom". The values are passed through
// as-is: mirrored rects are legal overlay input.
func parseRect(s string) (geometry.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("invalid rect %q, want \"left,top,right,bottom\"", s)
	}

	var vals [4]int32
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("invalid rect coordinate %q", p)
		}
		vals[i] = int32(v)
	}

	return geometry.Rect{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}, nil
}
