package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/catalog"
	"github.com/ersonp/story-core/internal/domain/ports"
	"github.com/ersonp/story-core/internal/domain/services"
	"github.com/ersonp/story-core/internal/infrastructure/config"
	"github.com/ersonp/story-core/internal/infrastructure/llm/gemini"
	"github.com/ersonp/story-core/internal/infrastructure/llm/openai"
	"github.com/ersonp/story-core/internal/infrastructure/random"
	"github.com/ersonp/story-core/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	BasePath        string
	Config          *config.Config
	AssembleHandler *handlers.AssembleHandler
	GenerateHandler *handlers.GenerateHandler
	StoryHandler    *handlers.StoryHandler
}

// workspace is the working directory and its configuration.
type workspace struct {
	basePath string
	cfg      *config.Config
}

// loadWorkspace loads the configuration of the current directory, falling
// back to defaults when 'story init' has not been run.
func loadWorkspace() (*workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &workspace{basePath: cwd, cfg: cfg}, nil
}

// newAssembler builds the assembler over the configured catalog.
func (w *workspace) newAssembler() (*services.AssemblerService, error) {
	cat, err := catalog.Load(w.cfg.CatalogPath(w.basePath))
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return services.NewAssemblerService(cat), nil
}

// newRandom returns a seeded source when seed is non-zero.
func newRandom(seed uint64) ports.RandomSource {
	if seed != 0 {
		return random.NewSeeded(seed, seed)
	}
	return random.New()
}

// newStoryWriter connects to the configured model. It returns a nil writer
// without an API key so that assembly keeps working offline.
func newStoryWriter(ctx context.Context, cfg config.LLMConfig) (ports.StoryWriter, func() error, error) {
	noop := func() error { return nil }

	if cfg.APIKey == "" {
		logger.Debug("no API key configured, story generation disabled", zap.String("provider", cfg.Provider))
		return nil, noop, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := openai.NewClient(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("creating openai client: %w", err)
		}
		return client, noop, nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("creating gemini client: %w", err)
		}
		return client, client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// openStore opens the story database and ensures its schema.
func (w *workspace) openStore(ctx context.Context) (*sqlite.Repository, error) {
	path := w.cfg.SQLitePath(w.basePath)
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}

	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	return store, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	assembler, err := ws.newAssembler()
	if err != nil {
		return err
	}

	store, err := ws.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	writer, closeWriter, err := newStoryWriter(ctx, ws.cfg.LLM)
	if err != nil {
		return err
	}
	defer closeWriter()

	writerService := services.NewWriterService(writer, logger)
	sessionService := services.NewSessionService(store, writerService, logger)

	deps := &Deps{
		BasePath:        ws.basePath,
		Config:          ws.cfg,
		AssembleHandler: handlers.NewAssembleHandler(assembler, random.New(), ws.cfg.Server.EscapeHTML, logger),
		GenerateHandler: handlers.NewGenerateHandler(writerService),
		StoryHandler:    handlers.NewStoryHandler(sessionService),
	}

	return fn(deps)
}

// withStoryHandler provides the story handler for session commands.
func withStoryHandler(ctx context.Context, fn func(*handlers.StoryHandler) error) error {
	return withDeps(ctx, func(d *Deps) error {
		return fn(d.StoryHandler)
	})
}
