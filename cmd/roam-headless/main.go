// Command roam-headless runs the simulation without a window, printing text
// frames and optionally serving Prometheus metrics.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"tileroam/internal/config"
	"tileroam/internal/metrics"
)

func main() {
	path := flag.String("config", "", "YAML run file (default $"+config.EnvPath+")")
	pipeline := flag.String("pipeline", "", "override the generation pipeline")
	seed := flag.Int64("seed", 0, "override the generation seed")
	ticks := flag.Int("ticks", -1, "override the number of ticks")
	addr := flag.String("metrics", "", "serve /metrics on this address")
	flag.Parse()

	runID := uuid.NewString()
	logger := log.New(os.Stderr, "["+runID[:8]+"] ", log.LstdFlags)

	file, err := config.Load(*path)
	if err != nil {
		logger.Fatal(err)
	}
	if *pipeline != "" {
		file.Generation["pipeline"] = *pipeline
	}
	if *seed != 0 {
		file.Generation["seed"] = itoa(*seed)
	}
	if *ticks >= 0 {
		file.Run.Ticks = *ticks
	}
	if *addr != "" {
		file.Metrics.Addr = *addr
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)
	if file.Metrics.Addr != "" {
		go func() {
			logger.Printf("serving /metrics on %s", file.Metrics.Addr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(reg))
			if err := http.ListenAndServe(file.Metrics.Addr, mux); err != nil {
				logger.Printf("metrics server: %v", err)
			}
		}()
	}

	logger.Printf("run %s starting", runID)
	summary, err := run(file, collector, os.Stdout, logger)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("run %s done: %s", runID, summary)
	if usage, err := processUsage(); err == nil {
		logger.Printf("process: %s", usage)
	}
}
