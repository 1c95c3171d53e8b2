package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv, переменные окружения имеют приоритет

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Market      MarketConfig      `yaml:"market"`
	Portfolio   PortfolioConfig   `yaml:"portfolio"`
	SharedState SharedStateConfig `yaml:"shared_state"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Logger      LoggerConfig      `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"5s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`
}

type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m"`
}

type MarketConfig struct {
	Provider      string          `yaml:"provider" env:"MARKET_PROVIDER" env-default:"coinpaprika"` // coinpaprika|coingecko
	Currency      string          `yaml:"currency" env:"MARKET_CURRENCY" env-default:"CAD"`
	Timeout       time.Duration   `yaml:"timeout" env-default:"8s"`
	UserAgent     string          `yaml:"user_agent" env-default:"crypto-portfolio-service/1.0"`
	RatePerMinute int             `yaml:"rate_per_minute" env:"MARKET_RATE_PER_MINUTE" env-default:"30"`
	BenchmarkCoin string          `yaml:"benchmark_coin" env:"MARKET_BENCHMARK_COIN"` // пусто - BTC выбранного провайдера
	CoinPaprika   ProviderBaseURL `yaml:"coinpaprika"`
	CoinGecko     ProviderBaseURL `yaml:"coingecko"`
}

type ProviderBaseURL struct {
	BaseURL string `yaml:"base_url"`
}

type PortfolioConfig struct {
	Backend     string  `yaml:"backend" env:"PORTFOLIO_BACKEND" env-default:"memory"` // memory|postgres
	TrendPoints int     `yaml:"trend_points" env-default:"7"`
	TrendJitter float64 `yaml:"trend_jitter" env-default:"0.05"`
	Location    string  `yaml:"location" env:"PORTFOLIO_LOCATION" env-default:"Local"`
}

type SharedStateConfig struct {
	Backend string `yaml:"backend" env:"SHARED_STATE_BACKEND" env-default:"memory"` // memory|postgres
	Suite   string `yaml:"suite" env:"SHARED_STATE_SUITE" env-default:"group.crypto-portfolio"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"crypto"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type TelegramConfig struct {
	Enabled         bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token           string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
	WidgetRefresh   time.Duration `yaml:"widget_refresh" env-default:"10m"`
	// DispatchPeriod - как часто проверять подписки на отчёт
	DispatchPeriod time.Duration `yaml:"dispatch_period" env-default:"1m"`
}

// NeedsPostgres - нужен ли пул соединений хоть одному хранилищу
func (c *Config) NeedsPostgres() bool {
	return c.Portfolio.Backend == BackendPostgres || c.SharedState.Backend == BackendPostgres
}

// Validate - проверка значений, которые cleanenv не может проверить сам
func (c *Config) Validate() error {
	c.Market.Provider = strings.ToLower(strings.TrimSpace(c.Market.Provider))
	if !consts.IsKnownProvider(c.Market.Provider) {
		return fmt.Errorf("unknown market provider %q", c.Market.Provider)
	}
	if strings.TrimSpace(c.Market.Currency) == "" {
		return errors.New("market currency is empty")
	}
	for name, backend := range map[string]string{
		"portfolio.backend":    c.Portfolio.Backend,
		"shared_state.backend": c.SharedState.Backend,
	} {
		if backend != BackendMemory && backend != BackendPostgres {
			return fmt.Errorf("%s: unknown backend %q", name, backend)
		}
	}
	if c.Scheduler.Enabled && c.Scheduler.Interval <= 0 {
		return errors.New("scheduler interval must be positive")
	}
	if c.Telegram.Enabled && strings.TrimSpace(c.Telegram.Token) == "" {
		return errors.New("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
	}
	if _, err := c.Portfolio.TimeLocation(); err != nil {
		return err
	}
	return nil
}

// TimeLocation - часовой пояс для дат синтетического графика
func (p PortfolioConfig) TimeLocation() (*time.Location, error) {
	if p.Location == "" || p.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Location)
	if err != nil {
		return nil, fmt.Errorf("portfolio location: %w", err)
	}
	return loc, nil
}

func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load - файл (если задан), затем окружение, затем проверка
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
