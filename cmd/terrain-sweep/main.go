// Command terrain-sweep generates worlds over a grid of generation settings
// and ranks them by how much of the map one walker can reach.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"tileroam/internal/gen"
)

func main() {
	pipelines := flag.String("pipelines", "cellular,initial,scatter,perlin,simplex", "comma-separated pipelines to sweep")
	seeds := flag.Int("seeds", 4, "seeds per setting")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	w := flag.Int("w", gen.DefaultConfig().Width, "grid width")
	h := flag.Int("h", gen.DefaultConfig().Height, "grid height")
	flag.Parse()

	base := gen.DefaultConfig()
	base.Width, base.Height = *w, *h
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	scenarios := grid(strings.Split(*pipelines, ","), *seeds)
	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d)\n", len(scenarios), *workers, base.Width, base.Height)

	start := time.Now()
	results, err := sweep(base, scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}
