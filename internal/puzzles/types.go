package puzzles

// PartFunc computes one answer from a puzzle input.
type PartFunc func(lines []string) (int, error)

// Puzzle describes one day: its two parts and the sample that checks them.
type Puzzle struct {
	Day    int
	Name   string
	Part1  PartFunc
	Part2  PartFunc
	Sample []string
	Want   Answer
}

// Answer holds the results of both parts of a puzzle.
type Answer struct {
	Part1 int `json:"part1"`
	Part2 int `json:"part2"`
}

// Solver describes the behaviour required from a puzzle runner.
type Solver interface {
	Puzzles() []Puzzle
	Solve(day int, lines []string) (Answer, error)
	Check(day int) error
}
