// Package api exposes the puzzle solvers over a small JSON HTTP API: list the
// registered days, upload inputs, solve, replay samples and hash strings.
package api
