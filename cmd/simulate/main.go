package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/careerpilot/backend/internal/analyzer"
	"github.com/careerpilot/backend/internal/logger"
	"github.com/careerpilot/backend/internal/service"
	"github.com/careerpilot/backend/internal/simulation"
	"github.com/careerpilot/backend/internal/store"
)

// simulate runs a cohort of scripted candidates through full practice
// sessions against an in-memory database and prints their verdicts.
func main() {
	workers := flag.Int("workers", 3, "sessions to run in parallel")
	verbose := flag.Bool("v", false, "log service events to stdout")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		log = logger.New("development", "")
	}
	defer log.Sync()

	db, err := store.NewSQLite(":memory:")
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	svc := service.NewInterviewService(db, analyzer.HeuristicAnalyzer{}, log, service.Options{})

	outcomes := simulation.Run(context.Background(), svc, simulation.SampleCandidates(), *workers)
	simulation.Report(os.Stdout, outcomes)
}
