package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStorage reads and writes inputs as DayNN.txt files inside a directory.
type FileStorage struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStorage returns a store rooted at dir. The directory is created on
// the first write.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// InputFileName returns the file name an input for day is stored under.
func InputFileName(day int) string {
	return fmt.Sprintf("Day%02d.txt", day)
}

// Path returns the full path of the input file for day.
func (s *FileStorage) Path(day int) string {
	return filepath.Join(s.dir, InputFileName(day))
}

// GetInput reads the input file for day.
func (s *FileStorage) GetInput(day int) ([]string, error) {
	if err := validateDay(day); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return ReadFile(s.Path(day))
}

// SetInput replaces the input file for day. The write goes through a
// temporary file so readers never see a partial input.
func (s *FileStorage) SetInput(day int, lines []string) error {
	if err := validateDay(day); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, InputFileName(day)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write input: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close input: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(day)); err != nil {
		return fmt.Errorf("replace input: %w", err)
	}
	return nil
}

// ReadFile reads path into lines. A missing file is reported as ErrInputNotFound.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrInputNotFound)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}
