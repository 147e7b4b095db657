package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// Session is an interactive conversation over one input stream. Questions go
// to w and answers are read from r, so several process sets can be entered
// one after another.
type Session struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{scanner: bufio.NewScanner(r), w: w}
}

// Prompt reads a single process set from r.
func Prompt(r io.Reader, w io.Writer) (*requests.ScheduleRequests, error) {
	return NewSession(r, w).Processes()
}

// ask writes question and returns the next trimmed line. ok is false once
// the input is exhausted.
func (s *Session) ask(question string) (string, bool, error) {
	fmt.Fprint(s.w, question)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimSpace(s.scanner.Text()), true, nil
}

func (s *Session) readLine(question string) (string, error) {
	answer, ok, err := s.ask(question)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: input ended early", core.ErrInvalidInput)
	}
	return answer, nil
}

// Processes asks for a process count, then for "arrival burst" of each process.
func (s *Session) Processes() (*requests.ScheduleRequests, error) {
	answer, err := s.readLine("How many processes?: ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: process count %q", core.ErrInvalidInput, answer)
	}

	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, n)}
	for i := 0; i < n; i++ {
		answer, err := s.readLine(fmt.Sprintf("Process %d) Arrival time and burst time (separated by space): ", i+1))
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(answer)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: process %d: want \"arrival burst\", got %q", core.ErrInvalidInput, i+1, answer)
		}
		arrival, err1 := strconv.ParseInt(fields[0], 10, 64)
		burst, err2 := strconv.ParseInt(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: process %d: %q is not two integers", core.ErrInvalidInput, i+1, answer)
		}
		req.Jobs = append(req.Jobs, requests.Job{ArrivalTime: arrival, BurstTime: burst})
	}
	return req, nil
}

// Again asks whether to enter another process set. Only y or yes continues;
// any other answer or the end of input stops.
func (s *Session) Again() (bool, error) {
	answer, ok, err := s.ask("Run again with new processes? (y/n): ")
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no", "":
	default:
		fmt.Fprintf(s.w, "Unknown option %q, exiting.\n", answer)
	}
	return false, nil
}
