package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/orgpulse/schema"
)

// Default values for configuration.
const (
	DefaultRawDir     = "data/raw"
	DefaultOutDir     = "data/aggregated"
	DefaultTableLimit = 50
	MaxTableLimit     = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a command invocation.
// This struct remains the "final, validated" config.
type Config struct {
	OrgName    string
	RawDir     string
	OutDir     string
	AsOf       time.Time
	TableLimit int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// MaxCritical is the check command's gate: the run fails when the
	// aggregated risk_critical count exceeds it.
	MaxCritical int

	// CollectToken authenticates the collector against the hosting API.
	CollectToken string

	// RepoLimit caps how many repositories the collector fetches (0 = all).
	RepoLimit int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Org        string `mapstructure:"org"`
	RawDir     string `mapstructure:"raw-dir"`
	OutDir     string `mapstructure:"out-dir"`
	AsOf       string `mapstructure:"as-of"`
	Limit      int    `mapstructure:"limit"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from checkCmd.Flags() ---
	MaxCritical int `mapstructure:"max-critical"`

	// --- Fields from collectCmd.Flags() ---
	Token     string `mapstructure:"token"`
	RepoLimit int    `mapstructure:"repo-limit"`
}

// Clone returns a copy of the Config struct. Handlers that tweak per-request
// settings work on a clone so the base config stays untouched.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAsOf(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-time fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OrgName = strings.TrimSpace(input.Org)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.CollectToken = input.Token
	cfg.MaxCritical = input.MaxCritical
	cfg.RepoLimit = input.RepoLimit

	cfg.RawDir = input.RawDir
	if cfg.RawDir == "" {
		cfg.RawDir = DefaultRawDir
	}
	cfg.OutDir = input.OutDir
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxTableLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxTableLimit, input.Limit)
	}
	cfg.TableLimit = input.Limit

	if cfg.MaxCritical < 0 {
		return fmt.Errorf("max-critical cannot be negative (received %d)", cfg.MaxCritical)
	}
	if cfg.RepoLimit < 0 {
		return fmt.Errorf("repo-limit cannot be negative (received %d)", cfg.RepoLimit)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv", input.Output)
	}

	return nil
}

// processAsOf resolves the explicit as-of timestamp every time-relative
// computation is anchored to. It defaults to now; an override makes runs
// reproducible against recorded data.
func processAsOf(cfg *Config, input *ConfigRawInput) error {
	if input.AsOf == "" {
		cfg.AsOf = time.Now().UTC()
		return nil
	}
	t, err := time.Parse(DateTimeFormat, input.AsOf)
	if err != nil {
		return fmt.Errorf("invalid as-of date format for '%s'. Expected absolute ISO8601: %w", input.AsOf, err)
	}
	cfg.AsOf = t.UTC()
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
