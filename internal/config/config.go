// Package config loads and persists the screener configuration file.
// Configuration is stored as TOML under the screener home directory,
// ~/.screener by default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hireloop/screener/internal/chunker"
	"github.com/hireloop/screener/internal/core/services"
)

// File and directory names under the screener home.
const (
	DirName   = ".screener"
	FileName  = "config.toml"
	TokenName = "token.json"
)

// Config is the full screener configuration.
type Config struct {
	// DataDir holds the index database. Defaults to <home>/data.
	DataDir string `toml:"data_dir,omitempty"`

	Index     IndexConfig     `toml:"index"`
	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
	Google    GoogleConfig    `toml:"google"`
}

// IndexConfig controls chunking and retrieval.
type IndexConfig struct {
	// ChunkSize is the maximum chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the number of characters shared between
	// neighbouring chunks.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is the default number of chunks retrieved per query.
	TopK int `toml:"top_k"`
}

// EmbeddingConfig selects and configures the embedding backend.
type EmbeddingConfig struct {
	// Provider is "openai" or "ollama".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url,omitempty"`

	// Model overrides the provider's default model.
	Model string `toml:"model,omitempty"`

	// APIKey authenticates against the provider. The OPENAI_API_KEY
	// environment variable takes precedence.
	APIKey string `toml:"api_key,omitempty"`
}

// LLMConfig selects and configures the language model backend.
type LLMConfig struct {
	// Provider is "groq" or "ollama".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url,omitempty"`

	// Model overrides the provider's default model.
	Model string `toml:"model,omitempty"`

	// APIKey authenticates against the provider. The GROQ_API_KEY
	// environment variable takes precedence.
	APIKey string `toml:"api_key,omitempty"`
}

// GoogleConfig configures the Gmail and Calendar collaborators.
type GoogleConfig struct {
	// TokenFile is the stored OAuth2 token. Defaults to <home>/token.json.
	TokenFile string `toml:"token_file,omitempty"`

	// Timezone applies to scheduled meetings.
	Timezone string `toml:"timezone"`

	// SenderEmail sets the From header on notification emails. When
	// empty, Gmail uses the authenticated account.
	SenderEmail string `toml:"sender_email,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Index: IndexConfig{
			ChunkSize:    chunker.DefaultChunkSize,
			ChunkOverlap: chunker.DefaultChunkOverlap,
			TopK:         services.DefaultTopK,
		},
		Embedding: EmbeddingConfig{
			Provider: "ollama",
		},
		LLM: LLMConfig{
			Provider: "groq",
		},
		Google: GoogleConfig{
			Timezone: "Asia/Kolkata",
		},
	}
}

// HomeDir returns the screener home directory, creating it if needed.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads the configuration at path, applying defaults for anything
// the file leaves unset. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// API keys may be present, keep the file private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// applyEnv lets environment variables override stored credentials.
func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Embedding.APIKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
}

// ResolveDataDir returns the configured data directory or the default
// under the screener home.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "data"), nil
}

// ResolveTokenFile returns the configured Google token path or the
// default under the screener home.
func (c Config) ResolveTokenFile() (string, error) {
	if c.Google.TokenFile != "" {
		return c.Google.TokenFile, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, TokenName), nil
}
