// Package session runs the interactive prompt loop as an explicit state
// machine. Each Step performs exactly one transition, so the loop can be
// driven and inspected from tests without a terminal.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

// Prompt and message texts.
const (
	LocationPrompt  = "Enter your location (city or zip code): "
	NextPrompt      = "Enter 1 to check another location, 2 to exit: "
	InvalidChoice   = "Invalid choice. Please try again."
	InvalidLocation = "Invalid location. Please try again."
	FetchFailed     = "Failed to get weather data."

	separator = "\n====================\n"
	divider   = "\n~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~\n"
)

// State is a position in the prompt loop.
type State int

const (
	AwaitingLocation State = iota
	Fetching
	Displaying
	PromptingNext
	Exiting
)

func (s State) String() string {
	switch s {
	case AwaitingLocation:
		return "awaiting_location"
	case Fetching:
		return "fetching"
	case Displaying:
		return "displaying"
	case PromptingNext:
		return "prompting_next"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Formatter renders a report into display lines.
type Formatter interface {
	Format(r domain.Report) []string
}

// Config wires a session to its collaborators.
type Config struct {
	In        io.Reader
	Out       io.Writer
	Fetcher   domain.ReportFetcher
	Formatter Formatter
	Clock     clockwork.Clock
	Logger    *slog.Logger
	// Days limits the forecast days shown; negative shows all.
	Days      int
}

// Session holds the loop state between steps.
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	fetcher   domain.ReportFetcher
	formatter Formatter
	clock     clockwork.Clock
	logger    *slog.Logger
	days      int

	state    State
	location string
	header   string
	located  bool
	report   domain.Report
}

// New creates a session waiting for a location to be typed in.
func New(cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Session{
		in:        bufio.NewScanner(cfg.In),
		out:       cfg.Out,
		fetcher:   cfg.Fetcher,
		formatter: cfg.Formatter,
		clock:     cfg.Clock,
		logger:    cfg.Logger,
		days:      cfg.Days,
		state:     AwaitingLocation,
	}
}

// StartAt skips the first prompt and fetches the auto-located place.
func (s *Session) StartAt(p domain.Place) {
	q := p.Query()
	if q == "" {
		return
	}
	s.location = q
	s.located = true
	s.header = fmt.Sprintf("Current Weather for %s (%s):", q, p.IP)
	if p.IP == "" {
		s.header = fmt.Sprintf("Current Weather for %s:", q)
	}
	s.state = Fetching
}

// StartWith skips the first prompt and fetches a location given up front.
func (s *Session) StartWith(location string) {
	location = strings.TrimSpace(location)
	if location == "" {
		return
	}
	s.setLocation(location)
	s.state = Fetching
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run steps the session until it exits, the context is cancelled, or a
// step fails.
func (s *Session) Run(ctx context.Context) error {
	for s.state != Exiting {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one transition.
func (s *Session) Step(ctx context.Context) error {
	switch s.state {
	case AwaitingLocation:
		return s.awaitLocation()
	case Fetching:
		return s.fetch(ctx)
	case Displaying:
		s.display()
		return nil
	case PromptingNext:
		return s.promptNext()
	case Exiting:
		return nil
	default:
		return fmt.Errorf("session: unexpected state %s", s.state)
	}
}

func (s *Session) awaitLocation() error {
	s.println(divider)
	s.print(LocationPrompt)
	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		s.state = Exiting
		return nil
	}
	s.println(separator)
	if line == "" {
		s.println(InvalidLocation)
		return nil
	}
	s.setLocation(line)
	s.state = Fetching
	return nil
}

func (s *Session) fetch(ctx context.Context) error {
	start := s.clock.Now()
	rep, err := s.fetcher.Fetch(ctx, s.location)
	elapsed := s.clock.Since(start)

	switch {
	case err == nil:
		s.logger.Debug("report fetched", "location", s.location, "elapsed", elapsed)
		s.report = rep.WithDays(s.days)
		s.state = Displaying
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, domain.ErrUnknownLocation):
		s.logger.Info("unknown location", "location", s.location)
		s.println(InvalidLocation)
	default:
		s.logger.Error("fetch report failed", "location", s.location, "elapsed", elapsed, "error", err)
		s.println(FetchFailed)
		if s.located {
			s.state = Exiting
			return fmt.Errorf("fetch %q: %w", s.location, err)
		}
	}
	s.located = false
	s.state = AwaitingLocation
	return nil
}

func (s *Session) display() {
	s.println(s.header)
	for _, line := range s.formatter.Format(s.report) {
		s.println(line)
	}
	s.println(separator)
	s.state = PromptingNext
}

func (s *Session) promptNext() error {
	s.print(NextPrompt)
	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	switch {
	case !ok, line == "2":
		s.state = Exiting
	case line == "1":
		s.located = false
		s.state = AwaitingLocation
	default:
		s.println(InvalidChoice)
	}
	return nil
}

func (s *Session) setLocation(location string) {
	s.location = location
	s.located = false
	s.header = fmt.Sprintf("Current Weather for %s:", location)
}

// readLine returns the next trimmed input line; ok is false at end of input.
func (s *Session) readLine() (string, bool, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimSpace(s.in.Text()), true, nil
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}
