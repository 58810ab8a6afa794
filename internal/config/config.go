// Package config loads the MindNotes YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndrivA89/mindnotes/internal/summarizer"
)

const (
	BackendBadger = "badger"
	BackendMemory = "memory"
	BackendNeo4j  = "neo4j"
)

type Config struct {
	Log        LogConfig        `yaml:"log"`
	Storage    StorageConfig    `yaml:"storage"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Notes      NotesConfig      `yaml:"notes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File, when set, receives JSON logs instead of the console.
	File string `yaml:"file"`
}

type StorageConfig struct {
	// Backend is where notes live: badger, memory or neo4j. The session
	// record and API keys always use the key-value store.
	Backend string       `yaml:"backend"`
	Badger  BadgerConfig `yaml:"badger"`
	Neo4j   Neo4jConfig  `yaml:"neo4j"`
}

type BadgerConfig struct {
	Path string `yaml:"path"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SummarizerConfig struct {
	Provider summarizer.Provider `yaml:"provider"`
	Model    string              `yaml:"model,omitempty"`
	BaseURL  string              `yaml:"base_url,omitempty"`
}

type NotesConfig struct {
	SeedWelcome bool `yaml:"seed_welcome"`
}

// Dir returns the per-user MindNotes directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".mindnotes"), nil
}

// DefaultPath is the config file used when none is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Default() Config {
	dataDir := ".mindnotes"
	if dir, err := Dir(); err == nil {
		dataDir = dir
	}
	return Config{
		Log: LogConfig{Level: "info"},
		Storage: StorageConfig{
			Backend: BackendBadger,
			Badger:  BadgerConfig{Path: filepath.Join(dataDir, "data")},
			Neo4j: Neo4jConfig{
				URI:      "bolt://localhost:7687",
				Username: "neo4j",
				Password: "password",
			},
		},
		Summarizer: SummarizerConfig{Provider: summarizer.Heuristic},
		Notes:      NotesConfig{SeedWelcome: true},
	}
}

// Load reads the config at path, writing the defaults there first when the
// file does not exist yet. Missing keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if cfg.Summarizer.Provider == "" {
		cfg.Summarizer.Provider = summarizer.Heuristic
	}
	cfg.Storage.Badger.Path = expandHome(cfg.Storage.Badger.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	return cfg, cfg.Validate()
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendBadger:
		if c.Storage.Badger.Path == "" {
			return errors.New("storage.badger.path is required for the badger backend")
		}
	case BackendMemory:
	case BackendNeo4j:
		if c.Storage.Neo4j.URI == "" {
			return errors.New("storage.neo4j.uri is required for the neo4j backend")
		}
		if c.Storage.Badger.Path == "" {
			return errors.New("storage.badger.path is required to keep the session")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if !c.Summarizer.Provider.Valid() {
		return fmt.Errorf("unknown summarizer provider %q", c.Summarizer.Provider)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
