package domain

import (
	"time"

	"github.com/google/uuid"
)

// DictionaryInfo describes a word list stored in the database.
type DictionaryInfo struct {
	ID         uuid.UUID
	Name       string
	Source     string
	WordCount  int
	ImportedAt time.Time
}
