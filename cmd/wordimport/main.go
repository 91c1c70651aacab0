// Command wordimport loads a plain-text dictionary into PostgreSQL so that
// wordfinder can serve it with -source postgres. It applies the embedded
// schema migrations first and replaces any dictionary of the same name in
// a single transaction.
//
// Usage:
//
//	wordimport [flags] FILE
//	wordimport -list
//	wordimport -delete NAME
//
// Flags:
//
//	-config      path to the YAML config file
//	-name        dictionary name (default: dictionary.name from config)
//	-split       line split mode, "crlf" or "lines" (default: dictionary.split)
//	-batch-size  words per insert batch (default: import.batch_size)
//	-normalize   trim and lowercase every word before storing it
//	-dry-run     parse the file without writing to the database
//
// Exit codes: 0 = success, 1 = error, 2 = usage error, 3 = file or dictionary not found.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/wordfinder/internal/adapter/postgres"
	pgdictionary "github.com/heartmarshall/wordfinder/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/wordfinder/internal/adapter/wordlist"
	"github.com/heartmarshall/wordfinder/internal/app"
	"github.com/heartmarshall/wordfinder/internal/cli"
	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

func main() {
	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(cli.ExitCode(err))
	}
}

type options struct {
	configPath string
	name       string
	split      string
	batchSize  int
	normalize  bool
	dryRun     bool
	list       bool
	deleteName string
	file       string
}

func parseFlags(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("wordimport", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "path to the YAML config file")
	fs.StringVar(&opts.name, "name", "", "dictionary name (default: dictionary.name)")
	fs.StringVar(&opts.split, "split", "", "line split mode: crlf or lines (default: dictionary.split)")
	fs.IntVar(&opts.batchSize, "batch-size", 0, "words per insert batch (default: import.batch_size)")
	fs.BoolVar(&opts.normalize, "normalize", false, "trim and lowercase every word before storing it")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "parse the file without writing to the database")
	fs.BoolVar(&opts.list, "list", false, "list stored dictionaries and exit")
	fs.StringVar(&opts.deleteName, "delete", "", "delete the named dictionary and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	if opts.list || opts.deleteName != "" {
		if fs.NArg() > 0 {
			return nil, false, &cli.ExitError{Code: cli.ExitUsage, Message: "-list and -delete take no FILE argument"}
		}
		return &opts, false, nil
	}

	if fs.NArg() != 1 {
		return nil, false, &cli.ExitError{Code: cli.ExitUsage, Message: "usage: wordimport [flags] FILE"}
	}
	opts.file = fs.Arg(0)
	return &opts, false, nil
}

// run encapsulates the command logic for easier testing and error handling.
func run(ctx context.Context, out io.Writer, args []string) error {
	opts, shouldExit, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.name != "" {
		cfg.Dictionary.Name = opts.name
	}
	if opts.split != "" {
		cfg.Dictionary.Split = opts.split
	}
	if opts.batchSize != 0 {
		cfg.Import.BatchSize = opts.batchSize
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	var words domain.Dictionary
	if opts.file != "" {
		res, err := wordlist.Load(opts.file, cfg.Dictionary.Split)
		if err != nil {
			return err
		}
		words = res.Words
		if opts.normalize {
			words = normalize(words)
		}
		logger.Info("dictionary parsed",
			slog.String("file", opts.file),
			slog.Int64("bytes", res.Stats.Bytes),
			slog.Int("lines", res.Stats.Lines),
			slog.Int("empty_lines", res.Stats.EmptyLines),
		)
		if opts.dryRun {
			fmt.Fprintf(out, "Parsed %s words from %s (dry run, nothing written)\n",
				humanize.Comma(int64(len(words))), opts.file)
			return nil
		}
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("config: validate: %w",
			domain.NewValidationError("database.dsn", "required for wordimport"))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return err
	}

	repo := pgdictionary.New(pool, postgres.NewTxManager(pool))

	switch {
	case opts.list:
		return listDictionaries(ctx, repo, out)
	case opts.deleteName != "":
		if err := repo.Delete(ctx, opts.deleteName); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted dictionary %s\n", opts.deleteName)
		return nil
	}

	start := time.Now()
	info, err := repo.Replace(ctx, cfg.Dictionary.Name, opts.file, words, cfg.Import.BatchSize)
	if err != nil {
		return err
	}
	logger.Info("dictionary imported",
		slog.String("id", info.ID.String()),
		slog.String("name", info.Name),
		slog.Int("words", info.WordCount),
		slog.Duration("duration", time.Since(start)),
	)

	fmt.Fprintf(out, "Imported %s words into dictionary %s\n", humanize.Comma(int64(info.WordCount)), info.Name)
	return nil
}

// normalize makes stored words match the lowercased letters typed at the
// prompt. Order and duplicates are kept.
func normalize(words domain.Dictionary) domain.Dictionary {
	out := make(domain.Dictionary, len(words))
	for i, w := range words {
		out[i] = domain.NormalizeWord(w)
	}
	return out
}

func listDictionaries(ctx context.Context, repo *pgdictionary.Repo, out io.Writer) error {
	infos, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(out, "no dictionaries")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWORDS\tSOURCE\tIMPORTED")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			info.Name,
			humanize.Comma(int64(info.WordCount)),
			info.Source,
			humanize.Time(info.ImportedAt),
		)
	}
	return tw.Flush()
}
