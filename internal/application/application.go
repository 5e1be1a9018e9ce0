package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"ahoy_market/internal/config"
	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/service/analysis"
	"ahoy_market/internal/domain/service/buy"
	"ahoy_market/internal/domain/service/catalog"
	"ahoy_market/internal/domain/service/pricetable"
	"ahoy_market/internal/domain/value"
	"ahoy_market/internal/infrastructure/market"
	"ahoy_market/internal/infrastructure/notifier"
	"ahoy_market/internal/infrastructure/persistence"
	"ahoy_market/internal/infrastructure/report"
	"ahoy_market/internal/server"
	"ahoy_market/internal/transport/bot"
	"ahoy_market/internal/transport/bot/handler"
	"ahoy_market/internal/worker"
	"ahoy_market/pkg/application/connectors"
	"ahoy_market/pkg/application/modules"
	"ahoy_market/pkg/contextx"
	"ahoy_market/pkg/errcodes"
	"ahoy_market/pkg/logx"
	"ahoy_market/pkg/middlewarex"
)

const outcomesBuffer = 64

type Command string

const (
	CommandScan     Command = "scan"
	CommandScanOnce Command = "scan-once"
	CommandAnalyze  Command = "analyze"
	CommandRealtime Command = "realtime"
)

func ParseCommand(s string) (Command, error) {
	switch Command(s) {
	case "":
		return CommandScan, nil
	case CommandScan, CommandScanOnce, CommandAnalyze, CommandRealtime:
		return Command(s), nil
	default:
		return "", domain.NewError(errcodes.ConfigError, fmt.Sprintf("unknown command %q", s))
	}
}

// ScanMode returns the orchestrator mode for a scan command. scan-once always
// runs a single cycle, scan follows SCAN_MODE.
func ScanMode(command Command, cfg config.Scan) worker.Mode {
	if command == CommandScanOnce || cfg.Mode == config.ScanModeOnce {
		return worker.ModeOnce
	}

	return worker.ModeContinuous
}

// Application holds the collaborators shared by every command.
type Application struct {
	cfg      config.Config
	filter   value.CategoryFilter
	catalog  *catalog.Catalog
	table    *pricetable.Table
	client   *market.Client
	registry *prometheus.Registry
}

// New loads the configuration, the data files and the vendor key. The
// returned context carries the configured logger.
func New(ctx context.Context) (*Application, context.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, ctx, err
	}

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.App.SlogLevel(),
		TimeFormat: time.DateTime,
	})).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	logger(ctx).Info("configuration loaded", logx.Stringer("config", cfg))

	filter, err := cfg.Scan.Filter()
	if err != nil {
		return nil, ctx, domain.WrapError(err, errcodes.ConfigError, "scan filter")
	}

	items, err := catalog.LoadFile(cfg.Files.CatalogPath)
	if err != nil {
		return nil, ctx, err
	}

	table, err := pricetable.LoadFile(cfg.Files.PriceTablePath, items)
	if err != nil {
		return nil, ctx, err
	}

	logger(ctx).Info(
		"data files loaded",
		slog.Int("catalog", items.Len()),
		slog.Int("price-table", table.Len()),
	)

	encrypter, err := newEncrypter(cfg.Market)
	if err != nil {
		return nil, ctx, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Application{
		cfg:      cfg,
		filter:   filter,
		catalog:  items,
		table:    table,
		client:   market.NewClient(cfg.Market, encrypter),
		registry: registry,
	}, ctx, nil
}

func newEncrypter(cfg config.Market) (*market.Encrypter, error) {
	if pem := cfg.PublicKeyPEM(); pem != "" {
		return market.NewEncrypter([]byte(pem))
	}

	return market.NewEncrypterFromFile(cfg.PublicKeyPath)
}

// NewPolicy returns the buy policy named by cfg.Policy. pairs links gold
// cards to their regular cards for the gold-vs-regular policy.
func NewPolicy(cfg config.Buy, pairs buy.Pairing) (buy.Policy, error) {
	topAverage := buy.TopAverageDiscountPolicy{
		TopN:        cfg.TopN,
		Ratio:       cfg.TopRatio,
		MinListings: cfg.MinListings,
	}

	switch cfg.Policy {
	case config.BuyPolicyReference:
		return buy.ReferencePolicy{}, nil
	case config.BuyPolicyTopAverage:
		return topAverage, nil
	case config.BuyPolicyAll:
		return buy.AllPolicy{buy.ReferencePolicy{}, topAverage}, nil
	case config.BuyPolicyGold:
		return buy.GoldVsRegularPolicy{
			Pairs:       pairs,
			TopN:        cfg.TopN,
			Ratio:       cfg.GoldRatio,
			MinListings: cfg.GoldMinRegularListings,
		}, nil
	default:
		return nil, domain.NewError(errcodes.ConfigError, fmt.Sprintf("unknown buy policy %q", cfg.Policy))
	}
}

func (a *Application) Run(ctx context.Context, command Command) error {
	switch command {
	case CommandScan, CommandScanOnce:
		return a.runScan(ctx, ScanMode(command, a.cfg.Scan))
	case CommandAnalyze:
		_, err := a.WriteReport(ctx, report.KindDealTrend)
		return err
	case CommandRealtime:
		_, err := a.WriteReport(ctx, report.KindRealtime)
		return err
	default:
		return domain.NewError(errcodes.ConfigError, fmt.Sprintf("unknown command %q", command))
	}
}

// checkSession queries the wallet once. An expired session is fatal, other
// failures are only logged.
func (a *Application) checkSession(ctx context.Context) error {
	balances, err := a.client.QueryUserBalance(ctx)
	if err != nil {
		if domain.HasCode(err, errcodes.SessionExpired) {
			return err
		}

		logger(ctx).Warn("balance check failed", logx.Error(err))

		return nil
	}

	for _, balance := range balances {
		logger(ctx).Info(
			"wallet balance",
			slog.String("chain", balance.Chain),
			slog.String("unit", balance.Unit),
			logx.Stringer("balance", balance.Balance),
		)
	}

	return nil
}

func (a *Application) runScan(ctx context.Context, mode worker.Mode) error {
	if err := a.checkSession(ctx); err != nil {
		return err
	}

	policy, err := NewPolicy(a.cfg.Buy, a.catalog)
	if err != nil {
		return err
	}

	engine := buy.NewEngine(
		a.client,
		buy.WithPolicy(policy),
		buy.WithMaxLevel(a.cfg.Buy.MaxLevel),
		buy.WithMaxListings(a.cfg.Buy.MaxListings),
	)

	opts := []worker.Option{
		worker.WithFilter(a.filter),
		worker.WithPageSize(a.cfg.Scan.PageSize),
		worker.WithFanOut(a.cfg.Scan.FanOut),
		worker.WithMode(mode),
		worker.WithCycleInterval(a.cfg.Scan.CycleInterval),
		worker.WithMetrics(worker.NewMetrics(a.registry)),
	}

	var journal *persistence.PurchaseRepository

	if a.cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             a.cfg.Postgres.DSN,
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		}
		defer pg.Close(ctx)

		db, err := pg.Client(ctx)
		if err != nil {
			return domain.WrapError(err, errcodes.ConfigError, "purchase journal")
		}

		journal = persistence.NewPurchaseRepository(db)
		opts = append(opts, worker.WithJournal(journal))
	}

	g, gctx := errgroup.WithContext(ctx)

	var outcomes chan entity.Outcome

	if a.cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(a.cfg.Bot.Token, a.cfg.Bot.ChatID)
		if err != nil {
			return domain.WrapError(err, errcodes.ConfigError, "notifier bot")
		}

		outcomes = make(chan entity.Outcome, outcomesBuffer)
		opts = append(opts, worker.WithOutcomes(outcomes))

		// Drains until the orchestrator closes the channel, so outcomes of a
		// cycle finishing after shutdown are still delivered.
		g.Go(func() error {
			return alertBot.Run(context.WithoutCancel(gctx), outcomes)
		})
	}

	orchestrator := worker.NewScanOrchestrator(a.client, a.table, engine, opts...)

	if mode == worker.ModeContinuous {
		if err := a.runServers(gctx, g, orchestrator, journal, policy.Name()); err != nil {
			return err
		}

		if err := a.scheduleSnapshots(gctx, g); err != nil {
			return err
		}
	}

	g.Go(func() error {
		if outcomes != nil {
			defer close(outcomes)
		}

		return orchestrator.Run(gctx)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}

	return err
}

func (a *Application) runServers(
	ctx context.Context,
	g *errgroup.Group,
	orchestrator *worker.ScanOrchestrator,
	journal *persistence.PurchaseRepository,
	policy string,
) error {
	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       a.cfg.App.Version,
		ListenAddress: a.cfg.Servers.ProbeListenAddress,
		Ready: func() bool {
			_, ok := orchestrator.LastReport()
			return ok
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: a.cfg.Servers.MetricsListenAddress,
		Gatherer:      a.registry,
	}.Run(ctx, g)

	// A nil repository must reach the handlers as a nil interface.
	var (
		statusServer server.StatusServer
		commands     *handler.Handler
	)

	if journal != nil {
		statusServer = server.NewStatusServer(orchestrator, a.client, journal, policy)
		commands = handler.New(orchestrator, a.client, journal, policy)
	} else {
		statusServer = server.NewStatusServer(orchestrator, a.client, nil, policy)
		commands = handler.New(orchestrator, a.client, nil, policy)
	}

	modules.HTTPServer{
		Address:         a.cfg.Servers.StatusListenAddress,
		Handler:         a.statusRouter(server.NewServer(statusServer, server.NewReportServer(a))),
		ShutdownTimeout: a.cfg.Servers.ShutdownTimeout,
	}.Run(ctx, g)

	if !a.cfg.Bot.Enabled() {
		return nil
	}

	commandBot, err := bot.New(ctx, a.cfg.Bot.Token, a.cfg.Bot.ChatID, commands)
	if err != nil {
		return domain.WrapError(err, errcodes.ConfigError, "command bot")
	}

	g.Go(func() error {
		return commandBot.Run(ctx)
	})

	return nil
}

func (a *Application) scheduleSnapshots(ctx context.Context, g *errgroup.Group) error {
	if a.cfg.Files.SnapshotSchedule == "" {
		return nil
	}

	err := modules.CronRunner{Jobs: []modules.CronJob{{
		Name: "realtime-snapshot",
		Spec: a.cfg.Files.SnapshotSchedule,
		Run: func(ctx context.Context) {
			if _, err := a.WriteReport(ctx, report.KindRealtime); err != nil {
				logger(ctx).Error("scheduled snapshot failed", logx.Error(err))
			}
		},
	}}}.Run(ctx, g)
	if err != nil {
		return domain.WrapError(err, errcodes.ConfigError, "snapshot schedule")
	}

	return nil
}

func (a *Application) statusRouter(srv server.Server) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.RequestLogging(masker, a.cfg.Market.LogFieldMaxLen),
		middlewarex.Recovery,
		middlewarex.ResponseLogging(masker, a.cfg.Market.LogFieldMaxLen),
	)
	srv.RegisterRoutes(r)

	return r
}

func (a *Application) universe() []value.ItemID {
	return a.catalog.Universe(a.filter)
}

// WriteReport gathers and writes one report over the scan universe and
// returns the file name.
func (a *Application) WriteReport(ctx context.Context, kind report.Kind) (string, error) {
	svc := analysis.NewService(a.client, a.catalog)

	var write func(fh *os.File) error

	switch kind {
	case report.KindRealtime:
		rows, err := svc.RealtimeSnapshot(ctx, a.universe())
		if err != nil {
			return "", err
		}

		write = func(fh *os.File) error { return report.WriteRealtimeSnapshot(fh, rows) }
	case report.KindDealTrend:
		rows, err := svc.DealTrend(ctx, a.universe())
		if err != nil {
			return "", err
		}

		write = func(fh *os.File) error { return report.WriteDealTrend(fh, rows) }
	default:
		return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown report %q", kind))
	}

	fh, err := report.Create(a.cfg.Files.ReportDir, kind, time.Now())
	if err != nil {
		return "", err
	}
	defer fh.Close()

	if err := write(fh); err != nil {
		return "", err
	}

	logger(ctx).Info("report written", slog.String("kind", string(kind)), slog.String("file", fh.Name()))

	return fh.Name(), nil
}
