package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordfinder/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:             "postgres://u:p@localhost:5432/words",
		MaxConns:        3,
		MinConns:        9,
		MaxConnLifetime: time.Minute,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 3, cfg.MaxConns)
	assert.EqualValues(t, 3, cfg.MinConns, "min conns capped at max conns")
	assert.Equal(t, time.Minute, cfg.MaxConnLifetime)
	assert.Equal(t, applicationName, cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_KeepsDSNApplicationName(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN: "postgres://u:p@localhost:5432/words?application_name=nightly-import",
	})
	require.NoError(t, err)
	assert.Equal(t, "nightly-import", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestNewPool_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := NewPool(context.Background(), config.DatabaseConfig{DSN: "postgres://u:p@localhost:notaport/words"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database DSN")
}
