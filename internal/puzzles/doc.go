// Package puzzles registers the daily solvers and runs them: both parts over
// an input, or a replay of the worked sample to check the solver.
package puzzles
