package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

// Console messages.
const (
	PromptLetters = "Letters (ctrl+C to quit)"
	PromptLength  = "Word length (ctrl+C to quit)"
	HeaderResults = "Solutions"
	NoSolution    = "no solution found in the dictionary"
)

// LineReader reads one line of user input per call.
// It returns readline.ErrInterrupt on Ctrl+C and io.EOF when input ends.
type LineReader interface {
	Readline() (string, error)
}

// errQuit signals a user-initiated exit.
var errQuit = errors.New("quit")

// Session runs the interactive query loop.
type Session struct {
	in      LineReader
	out     io.Writer
	handler Handler
	cfg     config.QueryConfig
	log     *slog.Logger
}

// NewSession creates a session reading from in and writing prompts and
// results to out. Every query goes through handler wrapped with the
// query ID, logging and recovery middleware.
func NewSession(logger *slog.Logger, in LineReader, out io.Writer, handler Handler, cfg config.QueryConfig) *Session {
	logger = logger.With("transport", "repl")
	return &Session{
		in:      in,
		out:     out,
		handler: Chain(QueryID, Logger(logger), Recovery(logger))(handler),
		cfg:     cfg,
		log:     logger,
	}
}

// Run loops until the user quits, input ends or ctx is cancelled.
// A user-initiated exit returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		q, err := s.readQuery()
		if errors.Is(err, errQuit) {
			s.log.DebugContext(ctx, "session ended by user")
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl.Run: %w", err)
		}

		words, err := s.handler(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		s.printResults(words)
	}
}

func (s *Session) readQuery() (domain.Query, error) {
	rawLetters, err := s.prompt(PromptLetters)
	if err != nil {
		return domain.Query{}, err
	}
	rawLength, err := s.prompt(PromptLength)
	if err != nil {
		return domain.Query{}, err
	}

	length, ok := domain.ParseLength(rawLength)
	if !ok {
		s.log.Debug("unparsable word length", slog.String("input", rawLength))
	}
	return domain.Query{
		Letters: domain.NormalizeLetters(rawLetters, s.cfg.MaxLetters),
		Length:  length,
	}, nil
}

// prompt prints msg on its own line and reads the answer.
func (s *Session) prompt(msg string) (string, error) {
	fmt.Fprintln(s.out, msg)

	line, err := s.in.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", errQuit
	case err != nil:
		return "", err
	}

	if s.cfg.ExitCommand != "" && strings.TrimSpace(line) == s.cfg.ExitCommand {
		return "", errQuit
	}
	return line, nil
}

func (s *Session) printResults(words []string) {
	fmt.Fprintln(s.out, HeaderResults)
	if len(words) == 0 {
		fmt.Fprintln(s.out, NoSolution)
		return
	}
	for _, w := range words {
		fmt.Fprintln(s.out, w)
	}
}
