// Package bootstrap wires the outreach service from a loaded configuration.
// cmd/api and cmd/outreachctl share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"mbg_outreach/internal/adapter/persistence/memory"
	"mbg_outreach/internal/adapter/persistence/repository"
	"mbg_outreach/internal/config"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/infrastructure/database"
	"mbg_outreach/internal/infrastructure/drafting"
	"mbg_outreach/internal/infrastructure/events"
	"mbg_outreach/internal/infrastructure/leadsource"
	"mbg_outreach/internal/infrastructure/lock"
	"mbg_outreach/internal/infrastructure/messaging"
	"mbg_outreach/internal/infrastructure/metrics"
	"mbg_outreach/internal/infrastructure/search"
	"mbg_outreach/internal/usecase"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// App holds every wired component. Close releases the connections it opened.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Registry *prometheus.Registry

	Leads    interfaces.ILeadRepository
	Messages interfaces.IMessageRepository
	RunLock  interfaces.IRunLock

	publisher interfaces.IEventPublisher

	Supervisor   *usecase.Supervisor
	Locator      *usecase.LeadLocator
	Content      *usecase.ContentCreator
	Outreach     *usecase.OutreachUseCase
	Orchestrator *usecase.OrchestratorUseCase
	Scanner      *usecase.ContactScanner
	LeadUseCase  *usecase.LeadUseCase

	// Pacing spaces consecutive outbound sends.
	Pacing usecase.PacingPolicy

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{Config: cfg, Log: logger}

	if err := app.openStore(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	if err := app.openEvents(); err != nil {
		_ = app.Close()
		return nil, err
	}
	app.openRunLock()

	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	outreachMetrics := metrics.NewOutreach(app.Registry)

	var provider interfaces.IDraftingProvider
	openai, err := drafting.NewOpenAIProvider(cfg.OpenAI, logger)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("drafting provider: %w", err)
	}
	if openai != nil {
		provider = openai
	}

	transport := app.transport()
	publisher := app.publisher

	app.Supervisor = usecase.NewSupervisor(app.Leads, app.Messages, cfg.DraftingMode(), transport.Mode(), logger)
	app.Locator = usecase.NewLeadLocator(
		[]interfaces.ILeadSource{leadsource.NewSampleSource(cfg.Discovery.SeedFile)},
		app.Leads, app.Supervisor, outreachMetrics, logger,
	)
	app.Content = usecase.NewContentCreator(provider, outreachMetrics, logger)
	app.Outreach = usecase.NewOutreachUseCase(app.Leads, app.Messages, transport, app.Supervisor, publisher, outreachMetrics, logger)
	app.Pacing = usecase.UniformPacing(cfg.Pacing.Min, cfg.Pacing.Max)
	app.Orchestrator = usecase.NewOrchestratorUseCase(
		app.Supervisor, app.Locator, app.Content, app.Outreach, app.Leads,
		app.Pacing, outreachMetrics, logger,
		usecase.WithRecentContactWindow(cfg.Discovery.RecentContactWindow),
	)

	client := search.NewClient(cfg.Search.Rate, cfg.Search.Timeout, cfg.Search.UserAgent)
	app.Scanner = usecase.NewContactScanner(
		app.Leads,
		search.NewWebSearcher(client, cfg.Search.BaseURL),
		search.NewPageFetcher(client),
		usecase.UniformPacing(cfg.Search.MinPause, cfg.Search.MaxPause),
		logger,
	)
	app.LeadUseCase = usecase.NewLeadUseCase(app.Leads, app.Messages, publisher, logger)

	logger.Info("outreach service wired",
		zap.String("store", cfg.Store.Driver),
		zap.String("channel_mode", string(transport.Mode())),
		zap.String("drafting_mode", string(cfg.DraftingMode())),
		zap.Bool("nats", cfg.NATS.URL != ""),
		zap.Bool("redis_lock", cfg.Redis.Addr != ""))
	return app, nil
}

func (a *App) openStore(ctx context.Context) error {
	cfg := a.Config
	switch cfg.Store.Driver {
	case config.StoreMemory:
		a.Leads = memory.NewLeadRepository()
		a.Messages = memory.NewMessageRepository()
	case config.StoreSQLite, config.StorePostgres:
		db, err := database.ConnectSQL(ctx, cfg.Store)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, db.Close)
		if err := repository.MigrateSQL(ctx, db); err != nil {
			return err
		}
		a.Leads = repository.NewLeadSQLRepository(db)
		a.Messages = repository.NewMessageSQLRepository(db)
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
		if err != nil {
			return err
		}
		if cfg.DynamoDB.CreateTables {
			if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB.LeadsTable, cfg.DynamoDB.MessagesTable, repository.MessagesByLeadIndex); err != nil {
				return err
			}
		}
		a.Leads = repository.NewLeadDynamoRepository(ddb, cfg.DynamoDB.LeadsTable)
		a.Messages = repository.NewMessageDynamoRepository(ddb, cfg.DynamoDB.MessagesTable)
	default:
		return fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
	return nil
}

func (a *App) openEvents() error {
	if a.Config.NATS.URL == "" {
		return nil
	}
	nc, err := events.Connect(a.Config.NATS.URL)
	if err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	a.closers = append(a.closers, func() error { nc.Close(); return nil })
	a.publisher = events.NewNATSPublisher(nc, a.Config.NATS.Subject, a.Log)
	return nil
}

func (a *App) openRunLock() {
	rc := a.Config.Redis
	if rc.Addr == "" {
		a.RunLock = lock.NewLocalRunLock()
		return
	}
	rdb := redis.NewClient(&redis.Options{Addr: rc.Addr, Password: rc.Password, DB: rc.DB})
	a.closers = append(a.closers, rdb.Close)
	a.RunLock = lock.NewRedisRunLock(rdb, rc.LockKey, rc.LockTTL)
}

func (a *App) transport() interfaces.IChannelTransport {
	wa := a.Config.WhatsApp
	if a.Config.ChannelMode() != entities.ChannelModeProduction {
		return messaging.NewSimulatedTransport(wa.SimulatedLatency, a.Log)
	}
	var opts []func(*messaging.WhatsAppTransport)
	if wa.BaseURL != "" {
		opts = append(opts, messaging.WithBaseURL(wa.BaseURL))
	}
	return messaging.NewWhatsAppTransport(wa.Token, wa.PhoneID, a.Log, opts...)
}

// Close runs the registered closers in reverse order and joins their errors.
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
