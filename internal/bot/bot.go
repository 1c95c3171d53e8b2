package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"gopkg.in/telebot.v4"
)

// Config - конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	WidgetRefresh   time.Duration
	Currency        string
	TrendPoints     int
}

// PortfolioReader - оценка портфеля и синтетический график
type PortfolioReader interface {
	Valuation(ctx context.Context) (domain.Valuation, error)
	Trend(ctx context.Context, points int) ([]domain.TrendPoint, string, error)
}

// BenchmarkSource - общее хранилище, куда сервис пишет цену BTC
type BenchmarkSource interface {
	Float(ctx context.Context, key string) (float64, bool, error)
}

// Subscriptions - управление авторассылкой отчёта
type Subscriptions interface {
	Enable(ctx context.Context, chatID int64, intervalMinutes int) error
	Disable(ctx context.Context, chatID int64) error
}

// Bot - Telegram-бот: показывает цену BTC и портфель
type Bot struct {
	bot       *telebot.Bot
	portfolio PortfolioReader
	subs      Subscriptions
	widget    *widget
	cfg       Config
	logger    *slog.Logger
}

// New создаёт бота и регистрирует команды. subs может быть nil: тогда авторассылки нет.
func New(cfg Config, portfolio PortfolioReader, benchmark BenchmarkSource, subs Subscriptions, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:       b,
		portfolio: portfolio,
		subs:      subs,
		widget:    newWidget(benchmark, cfg.WidgetRefresh, logger),
		cfg:       cfg,
		logger:    logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/price", bot.handlePrice)
	b.Handle("/portfolio", bot.handlePortfolio)
	b.Handle("/trend", bot.handleTrend)
	if subs != nil {
		b.Handle("/startauto", bot.handleStartAuto)
		b.Handle("/stopauto", bot.handleStopAuto)
	}
	return bot, nil
}

// Start запускает обновление виджета и приём сообщений
func (b *Bot) Start(ctx context.Context) {
	go b.widget.run(ctx)
	go b.bot.Start()
}

// SendText - отправка сообщения в чат, нужна рассылке
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.bot.Send(&telebot.Chat{ID: chatID}, text)
	return err
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
