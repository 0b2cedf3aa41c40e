// Package app assembles the router, its pipelines and their stores from config.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/afero"

	"finpal-guardian/config"
	"finpal-guardian/internal/document"
	docRepo "finpal-guardian/internal/document/repository"
	docFile "finpal-guardian/internal/document/repository/file"
	docSample "finpal-guardian/internal/document/repository/sample"
	docUC "finpal-guardian/internal/document/usecase"
	"finpal-guardian/internal/guardian"
	tgDelivery "finpal-guardian/internal/guardian/delivery/telegram"
	guardianUC "finpal-guardian/internal/guardian/usecase"
	"finpal-guardian/internal/intent"
	"finpal-guardian/internal/knowledge"
	kbRepo "finpal-guardian/internal/knowledge/repository"
	kbMemory "finpal-guardian/internal/knowledge/repository/memory"
	kbPostgres "finpal-guardian/internal/knowledge/repository/postgres"
	kbUC "finpal-guardian/internal/knowledge/usecase"
	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"
	threatRepo "finpal-guardian/internal/threat/repository"
	threatMemory "finpal-guardian/internal/threat/repository/memory"
	threatPostgres "finpal-guardian/internal/threat/repository/postgres"
	threatUC "finpal-guardian/internal/threat/usecase"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/llmprovider"
	"finpal-guardian/pkg/log"
	"finpal-guardian/pkg/metrics"
	"finpal-guardian/pkg/newsapi"
	"finpal-guardian/pkg/postgres"
	"finpal-guardian/pkg/telegram"
)

// App is the assembled service.
type App struct {
	Config  *config.Config
	Metrics *metrics.Metrics

	Guardian  guardian.UseCase
	Document  document.UseCase
	Knowledge knowledge.UseCase
	Threat    threat.UseCase

	// Bot and TelegramHandler are nil when no bot token is configured.
	Bot             *telegram.Bot
	TelegramHandler tgDelivery.Handler

	pool *pgxpool.Pool
	l    log.Logger
}

type options struct {
	gw gateway.Gateway
	fs afero.Fs
}

// Option customises Build.
type Option func(*options)

// WithGateway replaces the LLM-backed gateway.
func WithGateway(gw gateway.Gateway) Option {
	return func(o *options) { o.gw = gw }
}

// WithFs replaces the OS filesystem used for document storage and YAML seeds.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// Build wires every component described by cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, opts ...Option) (*App, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Metrics: metrics.New(), l: l}

	gw := o.gw
	if gw == nil {
		var err error
		if gw, err = a.buildGateway(ctx); err != nil {
			return nil, err
		}
	}

	if cfg.Postgres.DSN != "" {
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		l.Info(ctx, "Postgres connected, using persistent corpus and pattern stores")
	}

	store, writer, err := a.buildDocumentStore(ctx, o.fs)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Document = docUC.New(gw, store, writer, l)

	corpus, err := a.buildCorpus(ctx, o.fs)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Knowledge = kbUC.New(gw, corpus, l)

	patterns, err := a.buildPatternStore(ctx, o.fs)
	if err != nil {
		a.Close()
		return nil, err
	}
	news := newsapi.New(newsapi.Config{APIKey: cfg.NewsAPI.APIKey, BaseURL: cfg.NewsAPI.BaseURL})
	if !news.Enabled() {
		l.Warn(ctx, "NEWS_API_KEY not set, scam pattern harvesting disabled")
	}
	a.Threat = threatUC.New(gw, patterns, news, a.Metrics, l)

	a.Guardian = guardianUC.New(
		guardianUC.Config{FallbackRoute: model.Category(cfg.Guardian.FallbackRoute)},
		intent.New(gw, l),
		guardianUC.Pipelines{Document: a.Document, Knowledge: a.Knowledge, Threat: a.Threat},
		a.Metrics,
		l,
	)

	if cfg.Telegram.BotToken != "" {
		a.Bot = telegram.NewBot(cfg.Telegram.BotToken)
		a.TelegramHandler = tgDelivery.New(l, a.Guardian, a.Bot, cfg.Telegram.WebhookSecret)
	} else {
		l.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, Telegram channel disabled")
	}

	return a, nil
}

// RegisterWebhook points Telegram at the configured webhook URL.
// It is a no-op without a bot or URL.
func (a *App) RegisterWebhook(ctx context.Context) error {
	if a.Bot == nil || a.Config.Telegram.WebhookURL == "" {
		return nil
	}
	if err := a.Bot.SetWebhook(ctx, a.Config.Telegram.WebhookURL, a.Config.Telegram.WebhookSecret); err != nil {
		return err
	}
	a.l.Infof(ctx, "Telegram webhook registered at %s", a.Config.Telegram.WebhookURL)
	return nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

func (a *App) buildGateway(ctx context.Context) (gateway.Gateway, error) {
	providers, initErrs, err := llmprovider.InitializeProviders(&a.Config.LLM)
	for _, e := range initErrs {
		a.l.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		return nil, fmt.Errorf("initialize llm providers: %w", err)
	}

	var maxTotal time.Duration
	if a.Config.LLM.MaxTotalTimeout != "" {
		if maxTotal, err = time.ParseDuration(a.Config.LLM.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("invalid llm.max_total_timeout %q: %w", a.Config.LLM.MaxTotalTimeout, err)
		}
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: a.Config.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, a.l)
	for _, p := range providers {
		a.l.Infof(ctx, "LLM provider ready: %s", p.Name())
	}

	return gateway.New(manager, a.l, a.Metrics), nil
}

// buildDocumentStore chains the bundled samples with the upload directory.
// writer is nil when no directory is configured.
func (a *App) buildDocumentStore(ctx context.Context, fs afero.Fs) (docRepo.Store, docRepo.Writer, error) {
	samples := docSample.New()
	if a.Config.Document.StoreDir == "" {
		a.l.Warn(ctx, "document.store_dir not set, uploads disabled")
		return samples, nil, nil
	}

	files, err := docFile.New(fs, a.Config.Document.StoreDir, a.l)
	if err != nil {
		return nil, nil, err
	}
	return docRepo.Chain(samples, files), files, nil
}

func (a *App) buildCorpus(ctx context.Context, fs afero.Fs) (kbRepo.Corpus, error) {
	docs := kbMemory.DefaultDocuments()
	if path := a.Config.Knowledge.CorpusFile; path != "" {
		loaded, err := kbMemory.LoadFile(fs, path)
		if err != nil {
			return nil, err
		}
		docs = loaded
		a.l.Infof(ctx, "Loaded %d policy documents from %s", len(docs), path)
	}

	if a.pool == nil {
		return kbMemory.New(docs), nil
	}

	corpus, err := kbPostgres.New(ctx, a.pool, a.l)
	if err != nil {
		return nil, err
	}
	if err := corpus.SeedIfEmpty(ctx, docs); err != nil {
		return nil, err
	}
	return corpus, nil
}

func (a *App) buildPatternStore(ctx context.Context, fs afero.Fs) (threatRepo.Store, error) {
	patterns := threatMemory.Defaults()
	if path := a.Config.Threat.PatternsFile; path != "" {
		loaded, err := threatMemory.LoadFile(fs, path)
		if err != nil {
			return nil, err
		}
		patterns = loaded
		a.l.Infof(ctx, "Loaded %d scam patterns from %s", len(patterns), path)
	}

	if a.pool == nil {
		return threatMemory.New(patterns), nil
	}

	store, err := threatPostgres.New(ctx, a.pool, a.l)
	if err != nil {
		return nil, err
	}
	if err := store.SeedIfEmpty(ctx, patterns); err != nil {
		return nil, err
	}
	return store, nil
}
