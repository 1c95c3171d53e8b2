package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/NastyaGoryachaya/crypto-portfolio-service/internal/bot"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/bot/adapter"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/config"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/coinpaprika"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/repository/memory"
	repopg "github.com/NastyaGoryachaya/crypto-portfolio-service/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/schedulers/scheduler_dispatcher"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/holdings"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/subscription"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/trend"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/valuation"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/sharedstate"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type App struct {
	cfg *config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	holdings  *holdings.Store
	valuation *valuation.Service

	updater    *scheduler.Scheduler
	bot        *botpkg.Bot
	dispatcher *scheduler_dispatcher.Scheduler

	unsubscribe []func()
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	if cfg.NeedsPostgres() {
		pool, err := db.NewPool(ctx, &cfg.Postgres)
		if err != nil {
			return nil, err
		}
		app.db = pool
	}

	shared, err := app.sharedState(ctx)
	if err != nil {
		app.closeDB()
		return nil, err
	}

	// портфель: восстановление и сохранение после каждого изменения
	repo, err := app.holdingsRepository(ctx)
	if err != nil {
		app.closeDB()
		return nil, err
	}
	app.holdings = holdings.NewStore(logger.Component(log, "holdings"))
	if err := app.holdings.Restore(ctx, repo); err != nil {
		app.closeDB()
		return nil, err
	}
	app.unsubscribe = append(app.unsubscribe,
		app.holdings.Subscribe(holdings.NewPersister(repo, logger.Component(log, "persister"))))

	provider, err := app.marketProvider(shared)
	if err != nil {
		app.closeDB()
		return nil, err
	}

	currency := strings.ToUpper(cfg.Market.Currency)
	app.valuation = valuation.NewService(provider, app.holdings, currency, logger.Component(log, "valuation"))
	app.unsubscribe = append(app.unsubscribe, app.holdings.Subscribe(app.valuation))

	loc, err := cfg.Portfolio.TimeLocation()
	if err != nil {
		app.closeDB()
		return nil, err
	}
	synth := trend.NewSynthesizer(nil, nil, cfg.Portfolio.TrendJitter, loc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	app.e = e

	httptransport.NewMarketHandler(log, market.NewService(provider, logger.Component(log, "market")), cfg.Server.RequestTimeout).
		RegisterRoutes(e)
	httptransport.NewPortfolioHandler(log, httptransport.PortfolioDeps{
		Holdings:    app.holdings,
		Valuation:   app.valuation,
		Trend:       synth,
		Benchmark:   shared,
		Currency:    currency,
		TrendPoints: cfg.Portfolio.TrendPoints,
	}, cfg.Server.RequestTimeout).RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.valuation, cfg.Scheduler.Interval, logger.Component(log, "scheduler"))
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена - ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			app.closeDB()
			return nil, errors.New("telegram token is empty")
		}

		subsRepo, err := app.subscriptionRepository(ctx)
		if err != nil {
			app.closeDB()
			return nil, err
		}
		portfolioReader := adapter.NewPortfolioReader(app.valuation, synth)

		botApp, err := botpkg.New(
			botpkg.Config{
				Token:           token,
				LongPollTimeout: cfg.Telegram.LongPollTimeout,
				WidgetRefresh:   cfg.Telegram.WidgetRefresh,
				Currency:        currency,
				TrendPoints:     cfg.Portfolio.TrendPoints,
			},
			portfolioReader,
			shared,
			subscription.New(subsRepo, logger.Component(log, "subscriptions")),
			logger.Component(log, "bot"),
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeDB()
			return nil, err
		}
		app.bot = botApp
		app.dispatcher = scheduler_dispatcher.NewScheduler(
			subscription.NewDispatcher(subsRepo, portfolioReader, botApp, logger.Component(log, "subscriptions")),
			cfg.Telegram.DispatchPeriod,
			logger.Component(log, "dispatcher"),
		)
	}

	log.Info("app initialized",
		slog.String("provider", cfg.Market.Provider),
		slog.String("currency", currency),
		slog.String("portfolio_backend", cfg.Portfolio.Backend),
		slog.String("shared_state_backend", cfg.SharedState.Backend),
		slog.Int("holdings_restored", len(app.holdings.List())),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

// sharedState - общее хранилище цены эталонной монеты
func (a *App) sharedState(ctx context.Context) (sharedstate.Store, error) {
	if a.cfg.SharedState.Backend != config.BackendPostgres {
		return sharedstate.NewMemory(a.cfg.SharedState.Suite), nil
	}
	prefs := repopg.NewSharedPrefsRepository(a.db, a.cfg.SharedState.Suite)
	if err := prefs.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (a *App) holdingsRepository(ctx context.Context) (holdings.Repository, error) {
	if a.cfg.Portfolio.Backend != config.BackendPostgres {
		return memory.NewHoldingRepository(), nil
	}
	repo := repopg.NewHoldingRepository(a.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// subscriptionRepository - подписки на отчёт хранятся там же, где портфель
func (a *App) subscriptionRepository(ctx context.Context) (subscription.Repository, error) {
	if a.cfg.Portfolio.Backend != config.BackendPostgres {
		return memory.NewSubscriptionRepository(), nil
	}
	repo := repopg.NewSubscriptionRepository(a.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// marketProvider - клиент выбранного провайдера. Эталонная монета пишется в shared state.
func (a *App) marketProvider(shared sharedstate.Store) (market.Provider, error) {
	mc := a.cfg.Market
	httpClient := marketdata.NewClient(marketdata.Config{
		Timeout:       mc.Timeout,
		UserAgent:     mc.UserAgent,
		RatePerMinute: mc.RatePerMinute,
	}, logger.Component(a.log, "marketdata"))

	coin := strings.TrimSpace(mc.BenchmarkCoin)
	if coin == "" {
		coin = consts.BenchmarkCoin(mc.Provider)
	}
	bench := marketdata.NewBenchmark(shared, coin, logger.Component(a.log, "benchmark"))

	switch mc.Provider {
	case consts.ProviderCoinPaprika:
		return coinpaprika.NewClient(coinpaprika.Config{BaseURL: mc.CoinPaprika.BaseURL, Currency: mc.Currency},
			httpClient, bench, logger.Component(a.log, "coinpaprika")), nil
	case consts.ProviderCoinGecko:
		return coingecko.NewClient(coingecko.Config{BaseURL: mc.CoinGecko.BaseURL, Currency: mc.Currency},
			httpClient, bench, logger.Component(a.log, "coingecko")), nil
	default:
		return nil, fmt.Errorf("unknown market provider %q", mc.Provider)
	}
}

// Handler - HTTP-обработчик приложения
func (a *App) Handler() http.Handler {
	return a.e
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(ctx)
	}
	if a.dispatcher != nil {
		go a.dispatcher.Run(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	errCh := make(chan error, 1)
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return err
	}
	return runErr
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	a.closeDB()

	a.log.Info("application stopped")
	return nil
}

func (a *App) closeDB() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}
