//go:build integration

package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	info := SeedDictionary(t, pool, UniqueName("smoke"), []string{"cat", "act"})

	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM dictionary_words WHERE dictionary_id = $1`,
		info.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected words in DB, got error: %v", err)
	}

	if count != 2 {
		t.Fatalf("expected 2 words, got %d", count)
	}
}
