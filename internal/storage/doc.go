// Package storage supplies puzzle inputs as line sequences. Inputs come from
// DayNN.txt files in an input directory or from an in-memory store filled
// through the API.
package storage
