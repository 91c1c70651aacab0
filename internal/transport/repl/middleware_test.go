package repl

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordfinder/internal/domain"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, q domain.Query) ([]string, error) {
				order = append(order, name)
				return next(ctx, q)
			}
		}
	}

	h := Chain(mw("first"), mw("second"))(func(context.Context, domain.Query) ([]string, error) {
		order = append(order, "handler")
		return nil, nil
	})
	_, err := h(context.Background(), domain.Query{})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestLogger_LogsQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(QueryID, Logger(logger))(func(context.Context, domain.Query) ([]string, error) {
		return []string{"cat", "act"}, nil
	})
	_, err := h(context.Background(), domain.Query{Letters: "tac", Length: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"repl.query"`)
	assert.Contains(t, out, `"matches":2`)
	assert.Contains(t, out, `"query_id":`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogger_LogsErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logger(logger)(func(context.Context, domain.Query) ([]string, error) {
		return nil, errors.New("boom")
	})
	_, err := h(context.Background(), domain.Query{})
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestRecovery_ReturnsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Recovery(logger)(func(context.Context, domain.Query) ([]string, error) {
		panic("kaboom")
	})
	words, err := h(context.Background(), domain.Query{})

	require.Error(t, err)
	assert.Nil(t, words)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "stack")
}
