package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
)

const (
	// MinDay and MaxDay bound the puzzle days an input can be stored for.
	MinDay = 1
	MaxDay = 25

	maxLineBytes = 1 << 20
)

var (
	// ErrInvalidDay indicates a day outside MinDay..MaxDay.
	ErrInvalidDay = fmt.Errorf("day must be between %d and %d", MinDay, MaxDay)
	// ErrInputNotFound indicates no input has been stored for the requested day.
	ErrInputNotFound = errors.New("puzzle input not found")
)

// Storage provides access to puzzle inputs, one line sequence per day.
type Storage interface {
	GetInput(day int) ([]string, error)
	SetInput(day int, lines []string) error
}

// MemoryStorage keeps inputs in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu     sync.RWMutex
	inputs map[int][]string
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		inputs: make(map[int][]string),
	}
}

// GetInput returns a defensive copy of the lines stored for day.
func (s *MemoryStorage) GetInput(day int) ([]string, error) {
	if err := validateDay(day); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.inputs[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrInputNotFound)
	}
	return slices.Clone(lines), nil
}

// SetInput stores a copy of lines for day, replacing any previous input.
func (s *MemoryStorage) SetInput(day int, lines []string) error {
	if err := validateDay(day); err != nil {
		return err
	}

	copied := slices.Clone(lines)
	if copied == nil {
		copied = []string{}
	}

	s.mu.Lock()
	s.inputs[day] = copied
	s.mu.Unlock()

	return nil
}

// ReadLines splits r into lines without their terminators. A final newline
// does not produce a trailing empty line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

func validateDay(day int) error {
	if day < MinDay || day > MaxDay {
		return fmt.Errorf("%w, got %d", ErrInvalidDay, day)
	}
	return nil
}
