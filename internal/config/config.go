package config

import "time"

// Dictionary sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Dictionary file split modes.
const (
	// SplitCRLF splits on the exact "\r\n" sequence.
	SplitCRLF = "crlf"
	// SplitLines splits on "\n", "\r\n" or "\r".
	SplitLines = "lines"
)

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Query      QueryConfig      `yaml:"query"`
	Finder     FinderConfig     `yaml:"finder"`
	Import     ImportConfig     `yaml:"import"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects where the word list comes from.
type DictionaryConfig struct {
	Source string `yaml:"source" env:"DICTIONARY_SOURCE" env-default:"file"`
	Path   string `yaml:"path"   env:"DICTIONARY_PATH"`
	Split  string `yaml:"split"  env:"DICTIONARY_SPLIT"  env-default:"lines"`
	// Name identifies the word list inside the database.
	Name string `yaml:"name" env:"DICTIONARY_NAME" env-default:"default"`
}

// QueryConfig holds interactive prompt settings.
type QueryConfig struct {
	MaxLetters  int    `yaml:"max_letters"  env:"QUERY_MAX_LETTERS"  env-default:"12"`
	ExitCommand string `yaml:"exit_command" env:"QUERY_EXIT_COMMAND" env-default:":q"`
	HistoryFile string `yaml:"history_file" env:"QUERY_HISTORY_FILE"`
}

// FinderConfig holds word filter tuning.
type FinderConfig struct {
	Workers           int `yaml:"workers"            env:"FINDER_WORKERS"            env-default:"4"`
	ParallelThreshold int `yaml:"parallel_threshold" env:"FINDER_PARALLEL_THRESHOLD" env-default:"50000"`
}

// ImportConfig holds wordimport settings.
type ImportConfig struct {
	BatchSize int `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"1000"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// Only used when Dictionary.Source is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
