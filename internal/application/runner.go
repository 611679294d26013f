package application

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/puzzles/internal/puzzles"
	"github.com/eugenenazirov/puzzles/internal/storage"
)

// Runner drives the solvers from the command line: it loads an input, checks
// the sample first when asked to, and solves both parts.
type Runner struct {
	solver puzzles.Solver
	store  storage.Storage
	logger *zap.Logger
}

// NewRunner constructs a Runner.
func NewRunner(solver puzzles.Solver, store storage.Storage, logger *zap.Logger) *Runner {
	return &Runner{
		solver: solver,
		store:  store,
		logger: logger,
	}
}

// Solve answers day's puzzle. The input comes from inputPath when set and
// from the store otherwise. With verify set, a failing sample aborts the run
// before the real input is read.
func (r *Runner) Solve(day int, inputPath string, verify bool) (puzzles.Answer, error) {
	if verify {
		if err := r.Check(day); err != nil {
			return puzzles.Answer{}, err
		}
	}

	lines, err := r.loadInput(day, inputPath)
	if err != nil {
		return puzzles.Answer{}, err
	}

	start := time.Now()
	answer, err := r.solver.Solve(day, lines)
	if err != nil {
		return puzzles.Answer{}, err
	}
	r.logger.Debug("puzzle solved",
		zap.Int("day", day),
		zap.Int("lines", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)
	return answer, nil
}

// Check replays the sample of day.
func (r *Runner) Check(day int) error {
	if err := r.solver.Check(day); err != nil {
		return err
	}
	r.logger.Debug("sample check passed", zap.Int("day", day))
	return nil
}

// CheckAll replays the sample of every registered puzzle and reports the
// first failure.
func (r *Runner) CheckAll() error {
	for _, p := range r.solver.Puzzles() {
		if err := r.Check(p.Day); err != nil {
			return err
		}
	}
	return nil
}

// Puzzles lists the registered puzzles.
func (r *Runner) Puzzles() []puzzles.Puzzle {
	return r.solver.Puzzles()
}

func (r *Runner) loadInput(day int, inputPath string) ([]string, error) {
	if inputPath != "" {
		lines, err := storage.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("load input: %w", err)
		}
		return lines, nil
	}
	lines, err := r.store.GetInput(day)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	return lines, nil
}
