//go:build integration

package dictionary_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/wordfinder/internal/adapter/postgres"
	"github.com/heartmarshall/wordfinder/internal/adapter/postgres/dictionary"
	"github.com/heartmarshall/wordfinder/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

func newRepo(t *testing.T) *dictionary.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return dictionary.New(pool, postgres.NewTxManager(pool))
}

func TestRepo_Words_PreservesOrderAndDuplicates(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := dictionary.New(pool, postgres.NewTxManager(pool))
	name := testhelper.UniqueName("order")

	testhelper.SeedDictionary(t, pool, name, []string{"cat", "act", "cats", "", "act"})

	words, err := repo.Words(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, domain.Dictionary{"cat", "act", "cats", "", "act"}, words)
}

func TestRepo_Words_UnknownName(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Words(context.Background(), testhelper.UniqueName("missing"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Words_EmptyDictionary(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := dictionary.New(pool, postgres.NewTxManager(pool))
	name := testhelper.UniqueName("empty")

	testhelper.SeedDictionary(t, pool, name, nil)

	words, err := repo.Words(context.Background(), name)
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestRepo_Replace(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	name := testhelper.UniqueName("replace")

	first, err := repo.Replace(ctx, name, "first.txt", []string{"a", "b", "c", "d", "e"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, first.WordCount)

	words, err := repo.Words(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, domain.Dictionary{"a", "b", "c", "d", "e"}, words)

	second, err := repo.Replace(ctx, name, "second.txt", []string{"tea", "eat"}, 1000)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	words, err = repo.Words(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, domain.Dictionary{"tea", "eat"}, words)

	info, err := repo.GetByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, second.ID, info.ID)
	assert.Equal(t, "second.txt", info.Source)
	assert.Equal(t, 2, info.WordCount)
}

func TestRepo_ListAndDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	name := testhelper.UniqueName("list")

	_, err := repo.Replace(ctx, name, "list.txt", []string{"x"}, 10)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)

	found := false
	for _, d := range all {
		if d.Name == name {
			found = true
		}
	}
	assert.True(t, found, "List should include %q", name)

	require.NoError(t, repo.Delete(ctx, name))
	require.ErrorIs(t, repo.Delete(ctx, name), domain.ErrNotFound)

	_, err = repo.GetByName(ctx, name)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_Words(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := dictionary.New(pool, postgres.NewTxManager(pool))
	name := testhelper.UniqueName("source")

	testhelper.SeedDictionary(t, pool, name, []string{"go", "og"})

	src := dictionary.NewSource(repo, name)
	words, err := src.Words(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Dictionary{"go", "og"}, words)
	assert.Equal(t, "postgres:"+name, src.String())
}
