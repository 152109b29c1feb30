// Package config handles the configuration directory, the optional
// config.toml file, and task file path resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "tasktrack"

	// ConfigFile is the optional TOML configuration filename.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultTasksFile is the task file path when nothing overrides it.
	DefaultTasksFile = "tasks.json"

	// DefaultPushList is the Google Tasks list that push mirrors into.
	DefaultPushList = "tasktrack"

	// TasksFileEnv overrides the task file path from the environment.
	TasksFileEnv = "TASKTRACK_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TasksFile is the task file path.
	TasksFile string

	// PushList is the Google Tasks list name used by push.
	PushList string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the shape of config.toml.
type fileConfig struct {
	TasksFile string `toml:"tasks_file"`
	PushList  string `toml:"push_list"`
	Quiet     bool   `toml:"quiet"`
}

// New creates a Config with the default or specified config directory and
// resolves settings in precedence order: defaults, config.toml, environment.
// Flag overrides are applied by the caller afterwards.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:       dir,
		TasksFile: DefaultTasksFile,
		PushList:  DefaultPushList,
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if env := os.Getenv(TasksFileEnv); env != "" {
		cfg.TasksFile = env
	}

	return cfg, nil
}

// loadFile merges config.toml into cfg if the file exists.
func (c *Config) loadFile() error {
	path := filepath.Join(c.Dir, ConfigFile)
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("invalid %s: %w", path, err)
	}

	if fc.TasksFile != "" {
		c.TasksFile = fc.TasksFile
	}
	if fc.PushList != "" {
		c.PushList = fc.PushList
	}
	if fc.Quiet {
		c.Quiet = true
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
