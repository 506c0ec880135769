package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/dblibaum/random-function-machine/dataset"
	"github.com/dblibaum/random-function-machine/evolve"
	"github.com/dblibaum/random-function-machine/fitness"
)

func cmdEvolve(args []string) int {
	fs := flag.NewFlagSet("evolve", flag.ContinueOnError)
	cfgPath := fs.String("config", "experiment.yaml", "experiment YAML file")
	generations := fs.Int("generations", 0, "override evolution.generations when > 0")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	exp, err := loadExperiment(*cfgPath)
	if err != nil {
		log.Printf("load: %v", err)
		return 1
	}
	cfg := exp.cfg
	if *generations > 0 {
		cfg.Evolution.Generations = *generations
	}

	runID := uuid.NewString()
	train, test := dataset.Split(exp.records, cfg.Data.TestFraction)
	log.Printf("run %s: %d records (%d train, %d held-out), %d symbols, outputs [0,%d], genome %d genes",
		runID, len(exp.records), len(train), len(test), exp.pipe.Sizes().Alphabet, exp.pipe.Sizes().Outputs, exp.pipe.Layout().Len())

	ev, err := fitness.New(exp.pipe, train, test, fitness.Options{
		Stochastic:    cfg.Evaluation.Stochastic,
		BatchSize:     cfg.Evaluation.BatchSize,
		ReportHeldOut: cfg.Evaluation.ReportHeldOut,
		Store:         fitness.FileStore{Path: cfg.Evaluation.SaveFile},
		Seed:          cfg.Model.Seed,
	})
	if err != nil {
		log.Printf("evaluator: %v", err)
		return 1
	}

	ga, err := evolve.New(exp.pipe.Layout().Ranges(), ev.Evaluate, cfg.Evolution,
		evolve.OnGeneration(func(s evolve.Stats) {
			best, _, ok := ev.Best()
			if !ok {
				log.Printf("gen %4d  train best %.4f  mean %.4f  worst %.4f", s.Generation, s.Best, s.Mean, s.Worst)
				return
			}
			log.Printf("gen %4d  train best %.4f  mean %.4f  worst %.4f  held-out best %.4f",
				s.Generation, s.Best, s.Mean, s.Worst, best)
		}))
	if err != nil {
		log.Printf("optimizer: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := ga.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("run %s interrupted after %d generations", runID, res.Generations)
	case err != nil:
		log.Printf("run %s: %v", runID, err)
		return 1
	}

	log.Printf("run %s: best training accuracy %.4f", runID, res.Best.Fitness)
	if best, _, ok := ev.Best(); ok {
		log.Printf("run %s: best held-out accuracy %.4f saved to %s", runID, best, cfg.Evaluation.SaveFile)
	}

	return 0
}
