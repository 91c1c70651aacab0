package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordfinder/internal/domain"
)

// UniqueName returns a dictionary name that does not collide with other tests.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedDictionary inserts a dictionary with the given words in order.
// Returns the stored metadata.
func SeedDictionary(t *testing.T, pool *pgxpool.Pool, name string, words []string) domain.DictionaryInfo {
	t.Helper()
	ctx := context.Background()

	info := domain.DictionaryInfo{
		ID:         uuid.New(),
		Name:       name,
		Source:     "testhelper",
		WordCount:  len(words),
		ImportedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dictionaries (id, name, source, word_count, imported_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		info.ID, info.Name, info.Source, info.WordCount, info.ImportedAt,
	)
	if err != nil {
		t.Fatalf("SeedDictionary: insert dictionary: %v", err)
	}

	for i, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO dictionary_words (dictionary_id, position, word) VALUES ($1, $2, $3)`,
			info.ID, i, w,
		)
		if err != nil {
			t.Fatalf("SeedDictionary: insert word %q: %v", w, err)
		}
	}

	return info
}
