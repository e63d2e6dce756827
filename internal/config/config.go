package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Catalog selects where the drama catalog is read from.
type Catalog struct {
	// Source is "csv" to parse Path on every start or "sqlite" to read the
	// snapshot written by `dramarec catalog import`.
	Source   string `toml:"source"`
	Path     string `toml:"path"`
	Database string `toml:"database"`
}

// Recommend contains result sizing for recommendations and browsing.
type Recommend struct {
	DefaultCount int `toml:"default_count"`
	MaxCount     int `toml:"max_count"`
	PageSize     int `toml:"page_size"`
}

// Similarity contains limits for the pairwise similarity matrix.
type Similarity struct {
	// MaxEntries caps the catalog size; the matrix needs n*n floats.
	MaxEntries int `toml:"max_entries"`
}

// API contains HTTP server settings.
type API struct {
	Bind string `toml:"bind"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for dramarec.
//
// Configuration sections:
//   - Catalog: input file and optional SQLite snapshot
//   - Recommend: default and maximum result counts, browse page size
//   - Similarity: catalog size ceiling for the similarity matrix
//   - API: HTTP bind address for `dramarec serve`
//   - Logging: log format, level, and optional file directory
type Config struct {
	Catalog    Catalog    `toml:"catalog"`
	Recommend  Recommend  `toml:"recommend"`
	Similarity Similarity `toml:"similarity"`
	API        API        `toml:"api"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the per-user config file.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A .env file in
// the working directory is read first so DRAMAREC_* overrides can live next
// to the project. Path fields of the returned config are absolute.
func Load(path string) (*Config, string, bool, error) {
	_ = godotenv.Load()

	cfg := Default()
	target, exists, err := locateConfig(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		if err := decodeFile(target, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, target, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// locateConfig resolves an explicit path as given. Without one it tries the
// per-user file and then ./dramarec.toml, reporting the per-user path when
// neither exists.
func locateConfig(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		target, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := isFile(target)
		if err != nil {
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return target, exists, nil
	}

	userPath, err := ExpandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := isFile(candidate); ok {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// EnsureDirectories creates the directories holding the catalog snapshot and log files.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Catalog.Database)}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dirs = append(dirs, c.Logging.Dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute, cleaned path. The empty string is returned unchanged.
func ExpandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if rest, ok := strings.CutPrefix(value, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, strings.TrimLeft(rest, "/\\"))
	}
	absolute, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return absolute, nil
}

// CreateSample writes the commented sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
