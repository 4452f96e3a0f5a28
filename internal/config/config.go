package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Configuration is read from a yaml file (via -c flag or CONFIG_PATH) and
// then overridden from the environment through cleanenv.

type Config struct {
	Discord      DiscordConfig      `yaml:"discord"`
	Blockchain   BlockchainConfig   `yaml:"blockchain"`
	Postgres     PostgresConfig     `yaml:"postgres"`
	Ticker       TickerConfig       `yaml:"ticker"`
	TextCommands TextCommandsConfig `yaml:"text_commands"`
	Chart        ChartConfig        `yaml:"chart"`
	Server       ServerConfig       `yaml:"server"`
	Logger       LoggerConfig       `yaml:"logger"`
}

type DiscordConfig struct {
	Token  string `yaml:"token" env:"DISCORD_TOKEN" env-required:"true"`
	Prefix string `yaml:"prefix" env-default:"!"`
}

type BlockchainConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://blockchain.info"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"coinherald/1.0"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env-default:"localhost"`
	Port            int           `yaml:"port" env-default:"5432"`
	User            string        `yaml:"user" env-default:"postgres"`
	Password        string        `yaml:"password" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env-default:"coinherald"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type TickerConfig struct {
	// Interval is the sleep between two presence updates while cycling.
	Interval time.Duration `yaml:"interval" env-default:"20s"`
	// RetryDelay is the backoff after a failed ticker fetch.
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"60s"`
	// Debug makes the loop run exactly one iteration with tiny sleeps.
	Debug bool `yaml:"debug" env:"TICKER_DEBUG" env-default:"false"`
}

type TextCommandsConfig struct {
	// Path to the yaml name->reply mapping. Absence means zero text commands.
	Path string `yaml:"path" env-default:"text_commands.yaml"`
}

type ChartConfig struct {
	// WorkDir is where rendered chart images are written.
	WorkDir string `yaml:"work_dir" env-default:"."`
}

type ServerConfig struct {
	Enabled         bool          `yaml:"enabled" env-default:"true"`
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env-default:"info"`  // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"` // text|json
	// File enables an additional rotating log file when non-empty.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" env-default:"20"`
	MaxBackups int    `yaml:"max_backups" env-default:"3"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
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
