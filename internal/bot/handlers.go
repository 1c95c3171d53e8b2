package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/pkg/botfmt"
	"gopkg.in/telebot.v4"
)

const helpText = "Привет! Доступные команды:\n" +
	"/price - текущая цена BTC\n" +
	"/portfolio - стоимость портфеля\n" +
	"/trend - динамика портфеля за неделю\n" +
	"/startauto N - присылать отчёт каждые N минут\n" +
	"/stopauto - выключить отчёт"

// defaultAutoInterval - интервал авторассылки, если /startauto без аргумента
const defaultAutoInterval = 60

var errBadInterval = errors.New("interval must be a positive number of minutes")

// parseInterval - аргумент /startauto в минутах
func parseInterval(args []string) (int, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return defaultAutoInterval, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n <= 0 {
		return 0, errBadInterval
	}
	return n, nil
}

// handleStart - отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

// handlePrice - цена BTC из кэша виджета, без обращения к провайдеру
func (b *Bot) handlePrice(c telebot.Context) error {
	e := b.widget.current()
	return c.Send(botfmt.FormatBenchmark(e.Price, e.OK, e.LoadedAt, b.cfg.Currency))
}

// handlePortfolio - позиции с ценами и итог
func (b *Bot) handlePortfolio(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	v, err := b.portfolio.Valuation(ctx)
	if err != nil {
		b.logger.Warn("bot: /portfolio failed", slog.Int64("chat_id", c.Chat().ID), slog.Any("err", err))
		return c.Send(translateBotError(codeOf(err)))
	}
	return c.Send(botfmt.FormatPortfolio(v))
}

// handleTrend - синтетический ряд стоимости
func (b *Bot) handleTrend(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	points, currency, err := b.portfolio.Trend(ctx, b.cfg.TrendPoints)
	if err != nil {
		b.logger.Warn("bot: /trend failed", slog.Int64("chat_id", c.Chat().ID), slog.Any("err", err))
		return c.Send(translateBotError(codeOf(err)))
	}
	return c.Send(botfmt.FormatTrend(points, currency))
}

// handleStartAuto - включает периодический отчёт по портфелю для чата
func (b *Bot) handleStartAuto(c telebot.Context) error {
	minutes, err := parseInterval(c.Args())
	if err != nil {
		return c.Send("Использование: /startauto N, где N - интервал в минутах")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := b.subs.Enable(ctx, c.Chat().ID, minutes); err != nil {
		b.logger.Warn("bot: /startauto failed", slog.Int64("chat_id", c.Chat().ID), slog.Any("err", err))
		return c.Send(translateBotError(codeOf(err)))
	}
	return c.Send("Отчёт по портфелю включён, интервал " + strconv.Itoa(minutes) + " мин.")
}

// handleStopAuto - выключает отчёт
func (b *Bot) handleStopAuto(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := b.subs.Disable(ctx, c.Chat().ID); err != nil {
		b.logger.Warn("bot: /stopauto failed", slog.Int64("chat_id", c.Chat().ID), slog.Any("err", err))
		return c.Send(translateBotError(codeOf(err)))
	}
	return c.Send("Отчёт по портфелю выключен")
}
