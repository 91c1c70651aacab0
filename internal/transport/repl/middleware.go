package repl

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/heartmarshall/wordfinder/internal/domain"
	"github.com/heartmarshall/wordfinder/pkg/ctxutil"
)

// Handler answers a single query.
type Handler func(ctx context.Context, q domain.Query) ([]string, error)

// Middleware wraps a Handler.
type Middleware func(Handler) Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(h) results in mw1(mw2(h)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// QueryID stores a fresh query ID in the context of every query.
func QueryID(next Handler) Handler {
	return func(ctx context.Context, q domain.Query) ([]string, error) {
		ctx, _ = ctxutil.NewQueryContext(ctx)
		return next(ctx, q)
	}
}

// Recovery returns middleware that turns a panic in the handler into an
// error, logging it with a stack trace.
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, q domain.Query) (words []string, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(debug.Stack())),
						slog.Int("length", q.Length),
					)
					words, err = nil, fmt.Errorf("query panicked: %v", r)
				}
			}()
			return next(ctx, q)
		}
	}
}

// Logger returns middleware that logs each query with its outcome and duration.
func Logger(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, q domain.Query) ([]string, error) {
			start := time.Now()
			words, err := next(ctx, q)

			attrs := []slog.Attr{
				slog.String("letters", q.Letters),
				slog.Int("length", q.Length),
				slog.Int("matches", len(words)),
				slog.Duration("duration", time.Since(start)),
			}
			if id, ok := ctxutil.QueryIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("query_id", id.String()))
			}

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, level, "repl.query", attrs...)
			return words, err
		}
	}
}
