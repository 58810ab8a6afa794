// Package app wires configuration, storage and use cases together for the
// command line and desktop front ends.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"github.com/AndrivA89/mindnotes/internal/config"
	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/repository"
	"github.com/AndrivA89/mindnotes/internal/storage"
	"github.com/AndrivA89/mindnotes/internal/storage/badger"
	"github.com/AndrivA89/mindnotes/internal/summarizer"
	"github.com/AndrivA89/mindnotes/internal/usecase"
)

type App struct {
	Config   config.Config
	Logger   zerolog.Logger
	Sessions *usecase.SessionUseCase
	Notes    *usecase.NoteUseCase
	APIKeys  *repository.APIKeyStore

	closers []func() error
}

// New opens the configured backends. Call Close when done.
func New(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	kv, err := a.openKV(cfg)
	if err != nil {
		return nil, err
	}

	var notes usecase.NoteRepository
	if cfg.Storage.Backend == config.BackendNeo4j {
		notes, err = a.openNeo4j(ctx, cfg.Storage.Neo4j)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
	} else {
		notes = repository.NewKVNoteRepository(kv)
	}

	a.APIKeys = repository.NewAPIKeyStore(kv)
	sum, err := summarizer.New(summarizer.Config{
		Provider: cfg.Summarizer.Provider,
		Model:    cfg.Summarizer.Model,
		BaseURL:  cfg.Summarizer.BaseURL,
	}, a.APIKeys, http.DefaultClient, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Sessions = usecase.NewSessionUseCase(repository.NewUserStore(kv), logger)
	a.Notes = usecase.NewNoteUseCase(notes, sum, logger)
	logger.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("provider", string(cfg.Summarizer.Provider)).
		Msg("app ready")
	return a, nil
}

func (a *App) openKV(cfg config.Config) (storage.KV, error) {
	if cfg.Storage.Backend == config.BackendMemory {
		return storage.NewMemory(), nil
	}
	store, err := badger.Open(badger.DefaultConfig(cfg.Storage.Badger.Path), a.Logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}

func (a *App) openNeo4j(ctx context.Context, cfg config.Neo4jConfig) (usecase.NoteRepository, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}
	a.closers = append(a.closers, func() error { return driver.Close(context.Background()) })
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("neo4j unreachable at %s: %w", cfg.URI, err)
	}
	return repository.NewNeo4jNoteRepository(driver, a.Logger), nil
}

// Provider is the configured summarizer provider.
func (a *App) Provider() summarizer.Provider {
	return a.Config.Summarizer.Provider
}

// SignIn resolves the persisted session and returns a context carrying it.
func (a *App) SignIn(ctx context.Context) (context.Context, *domain.User, error) {
	user, err := a.Sessions.CurrentUser(ctx)
	if err != nil {
		return ctx, nil, err
	}
	return usecase.WithUser(ctx, user), user, nil
}

// Start records a freshly signed-in user on ctx and seeds the welcome
// notes when configured.
func (a *App) Start(ctx context.Context, user *domain.User) (context.Context, error) {
	ctx = usecase.WithUser(ctx, user)
	if a.Config.Notes.SeedWelcome {
		if _, err := a.Notes.SeedWelcome(ctx); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
