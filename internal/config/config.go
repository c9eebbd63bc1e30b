package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the ironlog binary needs before it can open
// its database.
type Config struct {
	DataDir   string      `yaml:"data_dir"`
	DBPath    string      `yaml:"db_path"`
	BackupDir string      `yaml:"backup_dir"`
	Log       LogConfig   `yaml:"log"`
	Timer     TimerConfig `yaml:"timer"`
}

type LogConfig struct {
	File      string `yaml:"file"`
	Level     string `yaml:"level"`
	Stderr    bool   `yaml:"stderr"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

type TimerConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	Bell         bool          `yaml:"bell"`
}

// DefaultConfig returns the built-in defaults. Paths left empty are
// derived from DataDir by Load.
func DefaultConfig() Config {
	return Config{
		DataDir: defaultDataDir(),
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
		Timer: TimerConfig{
			PollInterval: 100 * time.Millisecond,
			Bell:         true,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ironlog"
	}
	return filepath.Join(home, ".ironlog")
}

// Path returns the config file location: IRONLOG_CONFIG when set,
// otherwise config.yaml in the default data directory.
func Path() string {
	if v := os.Getenv("IRONLOG_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load layers defaults, the YAML file at path (a missing file is fine)
// and IRONLOG_* environment overrides, then fills in derived paths and
// validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	cfg.derivePaths()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies IRONLOG_* variables. Values that do not parse
// are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONLOG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("IRONLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("IRONLOG_BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}
	if v := os.Getenv("IRONLOG_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("IRONLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("IRONLOG_LOG_STDERR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Stderr = b
		}
	}
	if v := os.Getenv("IRONLOG_LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Log.MaxSizeMB = n
		}
	}
	if v := os.Getenv("IRONLOG_TIMER_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timer.PollInterval = d
		}
	}
	if v := os.Getenv("IRONLOG_TIMER_BELL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Timer.Bell = b
		}
	}
}

func (c *Config) derivePaths() {
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "ironlog.db")
	}
	if c.BackupDir == "" {
		c.BackupDir = filepath.Join(c.DataDir, "backups")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "ironlog.log")
	}
}

var logLevels = []string{"debug", "info", "warn", "error"}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Timer.PollInterval <= 0 {
		return fmt.Errorf("timer.poll_interval must be positive, got %s", c.Timer.PollInterval)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("log.level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", "))
}
