package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-assist/internal/config"
	"github.com/robalobadob/wordle-assist/internal/daily"
	"github.com/robalobadob/wordle-assist/internal/freq"
	"github.com/robalobadob/wordle-assist/internal/session"
	"github.com/robalobadob/wordle-assist/internal/solver"
	"github.com/robalobadob/wordle-assist/internal/words"
)

// app holds what every session shares: dictionary, frequency oracle and
// the base seed for opening draws.
type app struct {
	cfg    *config.Config
	dict   *words.Dictionary
	list   []string
	oracle freq.Source
	seed   uint64
	games  atomic.Uint64
	log    zerolog.Logger
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	dict, err := words.Load(cfg.Solver.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	oracle, err := freq.Load(ctx, cfg.Solver.FreqDB)
	if err != nil {
		return nil, fmt.Errorf("load frequencies: %w", err)
	}
	seed := cfg.Solver.Seed
	if seed == 0 {
		seed = daily.Seed(time.Now(), cfg.Solver.DailySalt)
	}
	log.Debug().
		Int("words", dict.Len()).
		Uint64("seed", seed).
		Str("order", cfg.Order().String()).
		Msg("solver ready")
	return &app{cfg: cfg, dict: dict, list: dict.Words(), oracle: oracle, seed: seed, log: log}, nil
}

// newSolver builds a solver whose opening draw is fixed by the base seed
// and the number of sessions started so far.
func (a *app) newSolver() *solver.Solver {
	n := a.games.Add(1)
	return solver.New(a.list,
		solver.WithRand(rand.New(rand.NewPCG(a.seed, n))),
		solver.WithOracle(a.oracle),
		solver.WithLanguage(a.cfg.Solver.Language),
		solver.WithOpeningPool(a.cfg.Solver.OpeningPool),
		solver.WithFeedbackOrder(a.cfg.Order()),
		solver.WithLogger(a.log),
	)
}

func (a *app) newSession() (*session.Session, error) {
	return session.New(a.newSolver(), a.log), nil
}

func (a *app) Close() error { return a.oracle.Close() }
