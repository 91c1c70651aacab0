package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/wordfinder/internal/adapter/postgres"
	pgdictionary "github.com/heartmarshall/wordfinder/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/wordfinder/internal/adapter/wordlist"
	"github.com/heartmarshall/wordfinder/internal/cli"
	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
	"github.com/heartmarshall/wordfinder/internal/service/finder"
	"github.com/heartmarshall/wordfinder/internal/transport/repl"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, loads the dictionary once and then serves interactive queries
// on the terminal until the user quits.
func Run(ctx context.Context, opts *cli.Options, out io.Writer) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting wordfinder",
		slog.String("version", BuildVersion()),
		slog.String("source", cfg.Dictionary.Source),
	)

	words, err := LoadDictionary(ctx, cfg, logger, out)
	if err != nil {
		return err
	}

	term, err := repl.NewTerminal(nil, out, cfg.Query.HistoryFile)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()

	return Serve(ctx, cfg, logger, words, term, out)
}

// LoadConfig reads the configuration file and environment, then applies
// the command-line overrides.
func LoadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	if cfg.Dictionary.Source == config.SourceFile && cfg.Dictionary.Path == "" {
		return nil, cli.MissingDictionary()
	}
	return cfg, nil
}

// LoadDictionary reads the configured dictionary and prints a one-line
// summary to out.
func LoadDictionary(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) (domain.Dictionary, error) {
	var (
		words domain.Dictionary
		name  string
		err   error
	)
	switch cfg.Dictionary.Source {
	case config.SourcePostgres:
		words, name, err = loadFromPostgres(ctx, cfg, logger)
	default:
		src := wordlist.NewFileSource(cfg.Dictionary.Path, cfg.Dictionary.Split)
		name = src.String()
		words, err = src.Words(ctx)
		if err == nil {
			stats := src.Stats()
			logger.Debug("dictionary parsed",
				slog.String("path", src.Path),
				slog.String("split", src.Split),
				slog.Int64("bytes", stats.Bytes),
				slog.Int("lines", stats.Lines),
				slog.Int("empty_lines", stats.EmptyLines),
			)
		}
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Loaded %s words from %s\n", humanize.Comma(int64(len(words))), name)
	return words, nil
}

// loadFromPostgres reads the whole dictionary in one query; the pool is
// closed before the interactive session starts.
func loadFromPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Dictionary, string, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, "", err
	}
	defer pool.Close()

	repo := pgdictionary.New(pool, postgres.NewTxManager(pool))
	src := pgdictionary.NewSource(repo, cfg.Dictionary.Name)

	words, err := src.Words(ctx)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("dictionary fetched",
		slog.String("name", cfg.Dictionary.Name),
		slog.Int("words", len(words)),
	)
	return words, src.String(), nil
}

// Serve runs the query loop over words, reading answers from in.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, words domain.Dictionary, in repl.LineReader, out io.Writer) error {
	svc := finder.NewService(logger, cfg.Finder)
	handler := func(ctx context.Context, q domain.Query) ([]string, error) {
		return svc.Find(ctx, words, q)
	}

	session := repl.NewSession(logger, in, out, handler, cfg.Query)
	if err := session.Run(ctx); err != nil {
		return err
	}

	logger.Info("wordfinder stopped")
	return nil
}
