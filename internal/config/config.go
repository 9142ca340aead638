// Package config provides configuration for soli-go: defaults, the
// optional ~/.soli/config.json file, and environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Source types for loading the ontology document.
const (
	SourceGitHub = "github"
	SourceHTTP   = "http"
)

// Defaults for the canonical SOLI repository.
const (
	DefaultGitHubAPIURL    = "https://api.github.com"
	DefaultGitHubObjectURL = "https://raw.githubusercontent.com"
	DefaultRepoOwner       = "alea-institute"
	DefaultRepoName        = "soli"
	DefaultRepoBranch      = "1.0.0"
	DefaultSourceType      = SourceGitHub
)

// Config describes where and how the ontology document is loaded.
type Config struct {
	// Source is either "github" or "http".
	Source string `json:"source"`

	// URL is the document URL when Source is "http".
	URL string `json:"url,omitempty"`

	// RepoOwner, RepoName, Branch locate the document when Source is
	// "github".
	RepoOwner string `json:"repo_owner,omitempty"`
	RepoName  string `json:"repo_name,omitempty"`
	Branch    string `json:"branch,omitempty"`

	// CacheDir is where fetched documents are cached.
	CacheDir string `json:"cache_dir,omitempty"`

	// UseCache controls whether the local document cache is consulted.
	UseCache bool `json:"use_cache"`
}

// Default returns the canonical GitHub-sourced configuration.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Source:    DefaultSourceType,
		RepoOwner: DefaultRepoOwner,
		RepoName:  DefaultRepoName,
		Branch:    DefaultRepoBranch,
		CacheDir:  filepath.Join(home, ".soli", "cache"),
		UseCache:  true,
	}
}

// DefaultPath returns the default config file location
// (~/.soli/config.json).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".soli", "config.json")
}

// configFile is the on-disk JSON shape, nested under a "soli" key.
type configFile struct {
	Soli Config `json:"soli"`
}

// Load reads a config file, filling unset fields from Default. A missing
// file is an error; callers wanting silent defaults use LoadOrDefault.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := file.Soli
	defaults := Default()
	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}
	if cfg.RepoOwner == "" {
		cfg.RepoOwner = defaults.RepoOwner
	}
	if cfg.RepoName == "" {
		cfg.RepoName = defaults.RepoName
	}
	if cfg.Branch == "" {
		cfg.Branch = defaults.Branch
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaults.CacheDir
	}
	return &cfg, nil
}

// LoadOrDefault reads the config file at path (or DefaultPath when path
// is empty), falling back to Default when the file does not exist.
func LoadOrDefault(path string) *Config {
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks source-specific required fields.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceGitHub:
		if c.RepoOwner == "" || c.RepoName == "" || c.Branch == "" {
			return fmt.Errorf("github source requires repo_owner, repo_name, and branch")
		}
	case SourceHTTP:
		if c.URL == "" {
			return fmt.Errorf("http source requires url")
		}
	default:
		return fmt.Errorf("invalid source %q: must be %q or %q", c.Source, SourceGitHub, SourceHTTP)
	}
	return nil
}

// Descriptor returns the cache-key descriptor for this source.
func (c *Config) Descriptor() string {
	if c.Source == SourceHTTP {
		return c.URL
	}
	return fmt.Sprintf("%s/%s/%s", c.RepoOwner, c.RepoName, c.Branch)
}

// String implements fmt.Stringer for log context.
func (c *Config) String() string {
	if c.Source == SourceHTTP {
		return fmt.Sprintf("%s/%s", c.Source, c.URL)
	}
	return fmt.Sprintf("%s/%s", c.Source, c.Descriptor())
}

// Env holds environment variables consulted by soli-go.
type Env struct {
	// AnthropicKey is the Anthropic API key (ANTHROPIC_API_KEY),
	// enabling the LLM classification helper.
	AnthropicKey string

	// AnthropicBaseURL overrides the Anthropic API base URL
	// (ANTHROPIC_BASE_URL).
	AnthropicBaseURL string

	// Model is the classification model (SOLI_LLM_MODEL).
	Model string

	// Neo4jURI is the graph database URI for exports (NEO4J_URI).
	Neo4jURI string

	// Neo4jUser is the graph database user (NEO4J_USER).
	Neo4jUser string

	// Neo4jPassword is the graph database password (NEO4J_PASSWORD).
	Neo4jPassword string
}

var (
	env     *Env
	envOnce sync.Once
)

// GetEnv returns the singleton environment configuration. Thread-safe,
// loads once on first call.
func GetEnv() *Env {
	envOnce.Do(func() {
		env = &Env{
			AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
			Model:            getEnvDefault("SOLI_LLM_MODEL", "claude-3-5-haiku-20241022"),
			Neo4jURI:         getEnvDefault("NEO4J_URI", "bolt://localhost:7687"),
			Neo4jUser:        os.Getenv("NEO4J_USER"),
			Neo4jPassword:    os.Getenv("NEO4J_PASSWORD"),
		}
	})
	return env
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
