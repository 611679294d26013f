package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/eugenenazirov/puzzles/internal/calories"
	"github.com/eugenenazirov/puzzles/internal/hashing"
	"github.com/eugenenazirov/puzzles/internal/puzzles"
	"github.com/eugenenazirov/puzzles/internal/rps"
	"github.com/eugenenazirov/puzzles/internal/storage"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"

	defaultMaxInputBytes = 1 << 20
)

// Handler wires the puzzle solver and input storage into HTTP handlers.
type Handler struct {
	solver  puzzles.Solver
	storage storage.Storage

	clock         func() time.Time
	maxInputBytes int64

	mu              sync.RWMutex
	inputsUpdatedAt map[int]time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithMaxInputBytes caps the size of request bodies.
func WithMaxInputBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxInputBytes = n
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(solver puzzles.Solver, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:        solver,
		storage:       store,
		maxInputBytes: defaultMaxInputBytes,
		clock: func() time.Time {
			return time.Now().UTC()
		},
		inputsUpdatedAt: make(map[int]time.Time),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	_ = r
	list := h.solver.Puzzles()
	resp := puzzleListResponse{Puzzles: make([]puzzleSummary, 0, len(list))}
	for _, p := range list {
		resp.Puzzles = append(resp.Puzzles, puzzleSummary{
			Day:            p.Day,
			Name:           p.Name,
			InputUpdatedAt: h.inputUpdatedAt(p.Day),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutInput(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(w, r)
	if !ok {
		return
	}
	if h.puzzleName(day) == "" {
		writeSolveError(w, day, fmt.Errorf("%w %d", puzzles.ErrUnknownDay, day))
		return
	}

	lines, _, err := h.readInput(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.storage.SetInput(day, lines); err != nil {
		writeSolveError(w, day, err)
		return
	}
	h.markInputUpdated(day)

	resp := inputResponse{
		Day:       day,
		Lines:     len(lines),
		UpdatedAt: h.inputUpdatedAt(day),
		Message:   "Puzzle input stored successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(w, r)
	if !ok {
		return
	}

	lines, provided, err := h.readInput(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	source := "request"
	if !provided {
		source = "stored"
		lines, err = h.storage.GetInput(day)
		if err != nil {
			writeSolveError(w, day, err)
			return
		}
	}

	start := time.Now()
	answer, err := h.solver.Solve(day, lines)
	elapsed := time.Since(start)
	if err != nil {
		writeSolveError(w, day, err)
		return
	}

	resp := solveResponse{
		Day:               day,
		Name:              h.puzzleName(day),
		Part1:             answer.Part1,
		Part2:             answer.Part2,
		Source:            source,
		Lines:             len(lines),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(w, r)
	if !ok {
		return
	}

	if err := h.solver.Check(day); err != nil {
		writeSolveError(w, day, err)
		return
	}

	resp := checkResponse{
		Day:    day,
		Name:   h.puzzleName(day),
		Status: "ok",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHash(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	body := http.MaxBytesReader(w, r.Body, h.maxInputBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeRequestError(w, err)
		return
	}

	resp := hashResponse{
		Text: req.Text,
		MD5:  hashing.MD5Hex(req.Text),
	}
	writeJSON(w, http.StatusOK, resp)
}

// readInput returns the request body as lines. provided is false when the
// body is empty.
func (h *Handler) readInput(w http.ResponseWriter, r *http.Request) (lines []string, provided bool, err error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxInputBytes))
	if err != nil {
		return nil, false, err
	}
	if len(data) == 0 {
		return []string{}, false, nil
	}
	lines, err = storage.ReadLines(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}
	return lines, true, nil
}

func (h *Handler) puzzleName(day int) string {
	for _, p := range h.solver.Puzzles() {
		if p.Day == day {
			return p.Name
		}
	}
	return ""
}

func (h *Handler) inputUpdatedAt(day int) *time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ts, ok := h.inputsUpdatedAt[day]
	if !ok {
		return nil
	}
	return &ts
}

func (h *Handler) markInputUpdated(day int) {
	h.mu.Lock()
	h.inputsUpdatedAt[day] = h.clock()
	h.mu.Unlock()
}

func parseDay(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("day")
	day, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day", fmt.Sprintf("day must be an integer, got %q", raw))
		return 0, false
	}
	return day, true
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type hashRequest struct {
	Text string `json:"text"`
}

type hashResponse struct {
	Text string `json:"text"`
	MD5  string `json:"md5"`
}

type puzzleSummary struct {
	Day            int        `json:"day"`
	Name           string     `json:"name"`
	InputUpdatedAt *time.Time `json:"inputUpdatedAt,omitempty"`
}

type puzzleListResponse struct {
	Puzzles []puzzleSummary `json:"puzzles"`
}

type inputResponse struct {
	Day       int        `json:"day"`
	Lines     int        `json:"lines"`
	UpdatedAt *time.Time `json:"updatedAt"`
	Message   string     `json:"message,omitempty"`
}

type solveResponse struct {
	Day               int    `json:"day"`
	Name              string `json:"name"`
	Part1             int    `json:"part1"`
	Part2             int    `json:"part2"`
	Source            string `json:"source"`
	Lines             int    `json:"lines"`
	CalculationTimeMs int64  `json:"calculationTimeMs"`
}

type checkResponse struct {
	Day    int    `json:"day"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}

func writeRequestError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request too large", fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid request", "unable to read request body")
}

func writeSolveError(w http.ResponseWriter, day int, err error) {
	switch {
	case errors.Is(err, puzzles.ErrUnknownDay):
		writeError(w, http.StatusNotFound, "Unknown puzzle", err.Error(), "GET /api/puzzles lists the available days")
	case errors.Is(err, storage.ErrInvalidDay):
		writeError(w, http.StatusBadRequest, "Invalid day", err.Error())
	case errors.Is(err, storage.ErrInputNotFound):
		suggestion := fmt.Sprintf("Upload an input with PUT /api/puzzles/%d/input or send it in the request body", day)
		writeError(w, http.StatusNotFound, "Input not found", err.Error(), suggestion)
	case errors.Is(err, calories.ErrParse),
		errors.Is(err, calories.ErrEmptyInput),
		errors.Is(err, rps.ErrParse):
		writeError(w, http.StatusUnprocessableEntity, "Invalid puzzle input", err.Error())
	case errors.Is(err, puzzles.ErrSampleMismatch):
		writeError(w, http.StatusConflict, "Sample check failed", err.Error())
	default:
		writeInternalError(w, err)
	}
}
