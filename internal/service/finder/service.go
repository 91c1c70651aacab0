package finder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
	"github.com/heartmarshall/wordfinder/pkg/ctxutil"
)

// Service answers word queries against a loaded dictionary.
type Service struct {
	log *slog.Logger
	cfg config.FinderConfig
}

// NewService creates a new finder service.
func NewService(logger *slog.Logger, cfg config.FinderConfig) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		log: logger.With("service", "finder"),
		cfg: cfg,
	}
}

// Find returns the words of q.Length characters that can be spelled with
// q.Letters, in dictionary order. Large candidate sets are split across
// workers; the result is the same as the sequential filter.
func (s *Service) Find(ctx context.Context, words domain.Dictionary, q domain.Query) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("finder.Find: %w", err)
	}
	start := time.Now()

	candidates := domain.FilterByLength(words, q.Length)
	available := domain.CountChars(q.Letters)

	var (
		matches []string
		err     error
	)
	if s.parallel(len(candidates)) {
		matches, err = s.filterParallel(ctx, candidates, available)
	} else {
		matches = domain.FilterConstructible(candidates, available)
	}
	if err != nil {
		return nil, fmt.Errorf("finder.Find: %w", err)
	}

	attrs := []any{
		slog.Int("length", q.Length),
		slog.Int("letters", available.Total()),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
		slog.Duration("duration", time.Since(start)),
	}
	if id, ok := ctxutil.QueryIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("query_id", id.String()))
	}
	s.log.DebugContext(ctx, "query finished", attrs...)

	return matches, nil
}

func (s *Service) parallel(candidates int) bool {
	return s.cfg.Workers > 1 && candidates > 0 && candidates >= s.cfg.ParallelThreshold
}

// filterParallel splits candidates into contiguous chunks, one per worker.
// Each worker writes only its own slot, so chunks concatenate in input order.
func (s *Service) filterParallel(ctx context.Context, candidates []string, available domain.LetterMultiset) ([]string, error) {
	chunks := splitChunks(candidates, s.cfg.Workers)
	parts := make([][]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = domain.FilterConstructible(chunk, available)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]string, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// splitChunks divides words into at most n contiguous, nearly equal chunks.
func splitChunks(words []string, n int) [][]string {
	if n > len(words) {
		n = len(words)
	}
	if n < 1 {
		return nil
	}
	size := (len(words) + n - 1) / n
	chunks := make([][]string, 0, n)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, words[start:end])
	}
	return chunks
}
