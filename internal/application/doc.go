// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the input store, the puzzle registry, the
// HTTP handlers, router and server, and the command-line Runner, keeping the
// main package focused on CLI parsing and orchestration.
package application
