//go:build integration

package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordfinder/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wordfinder/internal/cli"
	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

func TestLoadDictionary_Postgres(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	name := testhelper.UniqueName("app")
	testhelper.SeedDictionary(t, pool, name, []string{"cat", "act", "cats", "dog"})

	cfg := testConfig("")
	cfg.Dictionary.Source = config.SourcePostgres
	cfg.Dictionary.Name = name
	cfg.Database = config.DatabaseConfig{DSN: testhelper.DSN(), MaxConns: 2}

	var out bytes.Buffer
	words, err := LoadDictionary(context.Background(), cfg, discardLogger(), &out)
	require.NoError(t, err)

	assert.Equal(t, domain.Dictionary{"cat", "act", "cats", "dog"}, words)
	assert.Equal(t, "Loaded 4 words from postgres:"+name+"\n", out.String())
}

func TestLoadDictionary_PostgresUnknownName(t *testing.T) {
	t.Parallel()

	testhelper.SetupTestDB(t)

	cfg := testConfig("")
	cfg.Dictionary.Source = config.SourcePostgres
	cfg.Dictionary.Name = testhelper.UniqueName("missing")
	cfg.Database = config.DatabaseConfig{DSN: testhelper.DSN(), MaxConns: 2}

	_, err := LoadDictionary(context.Background(), cfg, discardLogger(), &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, cli.ExitDictionaryGone, cli.ExitCode(err))
}
