// Package cli provides the cobra command tree for the screener binary.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/adapters/driven/embedding/ollama"
	"github.com/hireloop/screener/internal/adapters/driven/embedding/openai"
	groqllm "github.com/hireloop/screener/internal/adapters/driven/llm/groq"
	ollamallm "github.com/hireloop/screener/internal/adapters/driven/llm/ollama"
	"github.com/hireloop/screener/internal/adapters/driven/storage/sqlite"
	"github.com/hireloop/screener/internal/chunker"
	"github.com/hireloop/screener/internal/config"
	googleconn "github.com/hireloop/screener/internal/connectors/google"
	gcalendar "github.com/hireloop/screener/internal/connectors/google/calendar"
	ggmail "github.com/hireloop/screener/internal/connectors/google/gmail"
	"github.com/hireloop/screener/internal/core/ports/driven"
	"github.com/hireloop/screener/internal/core/ports/driving"
	"github.com/hireloop/screener/internal/core/services"
	"github.com/hireloop/screener/internal/loaders"
	"github.com/hireloop/screener/internal/logger"
)

// version is stamped by the build; "dev" otherwise.
var version = "dev"

// SetVersion overrides the reported version. Called from main.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var (
	cfgPath string
	verbose bool
	cfg     config.Config
)

// Services used by the commands. Tests substitute these directly;
// production wiring happens lazily in the ensure* helpers so commands
// like version never touch the network or the index.
var (
	indexService     driving.Indexer
	retrievalService driving.Retriever
	ratingService    driving.Rater
	mailer           driven.Mailer
	scheduler        driven.MeetingScheduler

	// chunkIndex is retained for shutdown when ensurePipeline opened it.
	chunkIndex driven.ChunkIndex
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening from the command line",
	Long: `Screener indexes a folder of resumes into a local embedding index,
rates candidates against experience and skill criteria using a language
model, and handles the follow-up: notification emails and interview
scheduling.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.screener/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command and releases the index on exit.
func Execute() error {
	defer func() {
		if chunkIndex != nil {
			if err := chunkIndex.Close(); err != nil {
				logger.Warn("Closing index: %v", err)
			}
		}
	}()
	return rootCmd.Execute()
}

func loadConfig(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	path := cfgPath
	if path == "" {
		home, err := config.HomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, config.FileName)
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	logger.Debug("Config loaded from %s", path)
	return nil
}

// ensurePipeline wires the index, retrieval and rating services from
// the loaded config unless a test already provided them.
func ensurePipeline() error {
	if indexService != nil && retrievalService != nil && ratingService != nil {
		return nil
	}

	embedder, err := newEmbedder()
	if err != nil {
		return err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return err
	}
	chunkIndex = store

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.Index.ChunkSize),
		chunker.WithOverlap(cfg.Index.ChunkOverlap),
	)

	if indexService == nil {
		indexService = services.NewIndexService(loaders.Defaults(), splitter, embedder, store)
	}
	if retrievalService == nil {
		retrievalService = services.NewRetrievalService(embedder, store)
	}
	if ratingService == nil {
		llm, err := newLLM()
		if err != nil {
			return err
		}
		ratingService = services.NewRatingService(retrievalService, llm, cfg.Index.TopK)
	}
	return nil
}

func newEmbedder() (driven.EmbeddingService, error) {
	switch cfg.Embedding.Provider {
	case "openai":
		return openai.NewEmbeddingService(openai.Config{
			APIKey:  cfg.Embedding.APIKey,
			BaseURL: cfg.Embedding.BaseURL,
			Model:   cfg.Embedding.Model,
		})
	case "", "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL: cfg.Embedding.BaseURL,
			Model:   cfg.Embedding.Model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}

func newLLM() (driven.LLMService, error) {
	switch cfg.LLM.Provider {
	case "", "groq":
		return groqllm.NewLLMService(groqllm.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
	case "ollama":
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

// ensureMailer wires the Gmail sender unless a test provided one.
func ensureMailer(cmd *cobra.Command) error {
	if mailer != nil {
		return nil
	}

	tokenFile, err := cfg.ResolveTokenFile()
	if err != nil {
		return err
	}
	ts, err := googleconn.NewFileTokenSource(tokenFile)
	if err != nil {
		return err
	}
	svc, err := googleconn.NewGmailService(cmd.Context(), ts)
	if err != nil {
		return fmt.Errorf("create gmail service: %w", err)
	}

	mailer = ggmail.NewSender(svc)
	return nil
}

// ensureScheduler wires the Calendar scheduler unless a test provided one.
func ensureScheduler(cmd *cobra.Command) error {
	if scheduler != nil {
		return nil
	}

	tokenFile, err := cfg.ResolveTokenFile()
	if err != nil {
		return err
	}
	ts, err := googleconn.NewFileTokenSource(tokenFile)
	if err != nil {
		return err
	}
	svc, err := googleconn.NewCalendarService(cmd.Context(), ts)
	if err != nil {
		return fmt.Errorf("create calendar service: %w", err)
	}

	scheduler = gcalendar.NewScheduler(svc)
	return nil
}
