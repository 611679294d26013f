package puzzles

import (
	"fmt"
	"slices"
)

// Registry maps days to puzzles. It is read-only once built.
type Registry struct {
	byDay map[int]Puzzle
}

// NewRegistry builds a Registry from the given puzzles.
func NewRegistry(puzzles ...Puzzle) (*Registry, error) {
	byDay := make(map[int]Puzzle, len(puzzles))
	for _, p := range puzzles {
		if _, exists := byDay[p.Day]; exists {
			return nil, fmt.Errorf("%w %d", ErrDuplicateDay, p.Day)
		}
		byDay[p.Day] = p
	}
	return &Registry{byDay: byDay}, nil
}

// Default returns a Registry holding every solved day.
func Default() *Registry {
	r, err := NewRegistry(calorieCounting(), rockPaperScissors())
	if err != nil {
		panic(err)
	}
	return r
}

// Puzzles returns the registered puzzles ordered by day.
func (r *Registry) Puzzles() []Puzzle {
	out := make([]Puzzle, 0, len(r.byDay))
	for _, p := range r.byDay {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int {
		return a.Day - b.Day
	})
	return out
}

// Get returns the puzzle registered for day.
func (r *Registry) Get(day int) (Puzzle, error) {
	p, ok := r.byDay[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return p, nil
}

// Solve runs both parts of day's puzzle over lines.
func (r *Registry) Solve(day int, lines []string) (Answer, error) {
	p, err := r.Get(day)
	if err != nil {
		return Answer{}, err
	}
	return p.Solve(lines)
}

// Check replays day's sample input.
func (r *Registry) Check(day int) error {
	p, err := r.Get(day)
	if err != nil {
		return err
	}
	return p.Check()
}

// Solve runs both parts over lines. The first failing part aborts the run.
func (p Puzzle) Solve(lines []string) (Answer, error) {
	part1, err := p.Part1(lines)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d part 1: %w", p.Day, err)
	}
	part2, err := p.Part2(lines)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d part 2: %w", p.Day, err)
	}
	return Answer{Part1: part1, Part2: part2}, nil
}

// Check solves the sample and compares the result with the expected answer.
func (p Puzzle) Check() error {
	got, err := p.Solve(p.Sample)
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	if got.Part1 != p.Want.Part1 {
		return fmt.Errorf("day %d part 1: %w: got %d, want %d", p.Day, ErrSampleMismatch, got.Part1, p.Want.Part1)
	}
	if got.Part2 != p.Want.Part2 {
		return fmt.Errorf("day %d part 2: %w: got %d, want %d", p.Day, ErrSampleMismatch, got.Part2, p.Want.Part2)
	}
	return nil
}
