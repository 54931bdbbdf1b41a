package main

import (
	"fmt"
	"io"
	"time"

	"cinder/internal/buildpipeline"
)

func printUnitTimings(out io.Writer, res buildpipeline.BuildResult) {
	if out == nil {
		return
	}
	for _, u := range res.Units {
		switch {
		case u.Cached:
			fmt.Fprintf(out, "%s: cached\n", u.Path)
		case u.ErrorCount > 0:
			fmt.Fprintf(out, "%s: %d error(s) in %.1f ms\n", u.Path, u.ErrorCount, toMillis(u.Elapsed))
		default:
			fmt.Fprintf(out, "%s: %.1f ms\n", u.Path, toMillis(u.Elapsed))
		}
	}
	fmt.Fprintf(out, "total %.1f ms\n", toMillis(res.Elapsed))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
