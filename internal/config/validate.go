package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordfinder/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// Call it once, after any command-line overrides have been applied to the loaded values.
// Source and split names are lowercased in place.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	c.Dictionary.Source = strings.ToLower(strings.TrimSpace(c.Dictionary.Source))
	c.Dictionary.Split = strings.ToLower(strings.TrimSpace(c.Dictionary.Split))

	switch c.Dictionary.Source {
	case SourceFile, SourcePostgres:
	default:
		errs = append(errs, domain.FieldError{
			Field:   "dictionary.source",
			Message: fmt.Sprintf("must be %q or %q (got %q)", SourceFile, SourcePostgres, c.Dictionary.Source),
		})
	}

	switch c.Dictionary.Split {
	case SplitCRLF, SplitLines:
	default:
		errs = append(errs, domain.FieldError{
			Field:   "dictionary.split",
			Message: fmt.Sprintf("must be %q or %q (got %q)", SplitCRLF, SplitLines, c.Dictionary.Split),
		})
	}

	if c.Dictionary.Source == SourcePostgres {
		if strings.TrimSpace(c.Dictionary.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "dictionary.name", Message: "required for postgres source"})
		}
		if c.Database.DSN == "" {
			errs = append(errs, domain.FieldError{Field: "database.dsn", Message: "required for postgres source"})
		}
	}

	if c.Query.MaxLetters <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "query.max_letters",
			Message: fmt.Sprintf("must be > 0 (got %d)", c.Query.MaxLetters),
		})
	}

	if c.Finder.Workers < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "finder.workers",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Finder.Workers),
		})
	}
	if c.Finder.ParallelThreshold < 0 {
		errs = append(errs, domain.FieldError{
			Field:   "finder.parallel_threshold",
			Message: fmt.Sprintf("must be >= 0 (got %d)", c.Finder.ParallelThreshold),
		})
	}

	if c.Import.BatchSize < 1 {
		errs = append(errs, domain.FieldError{
			Field:   "import.batch_size",
			Message: fmt.Sprintf("must be >= 1 (got %d)", c.Import.BatchSize),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
