package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/cfo-monitor/internal/source"
)

// Config holds the full application configuration.
type Config struct {
	Edgar     EdgarConfig     `yaml:"edgar" mapstructure:"edgar"`
	News      NewsConfig      `yaml:"news" mapstructure:"news"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	SMTP      SMTPConfig      `yaml:"smtp" mapstructure:"smtp"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// EdgarConfig configures the SEC EDGAR filing feed.
type EdgarConfig struct {
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	FormType  string `yaml:"form_type" mapstructure:"form_type"`
	Count     int    `yaml:"count" mapstructure:"count"`
}

// NewsConfig configures the Google News RSS scan.
type NewsConfig struct {
	Queries     []string `yaml:"queries" mapstructure:"queries"`
	PerQuery    int      `yaml:"per_query" mapstructure:"per_query"`
	MaxAgeHours int      `yaml:"max_age_hours" mapstructure:"max_age_hours"`
	PaceMs      int      `yaml:"pace_ms" mapstructure:"pace_ms"`
}

// MaxAge returns the staleness cutoff as a duration.
func (c NewsConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours) * time.Hour
}

// Pace returns the delay between feed requests.
func (c NewsConfig) Pace() time.Duration {
	return time.Duration(c.PaceMs) * time.Millisecond
}

// AnthropicConfig holds Anthropic API settings for tear sheet generation.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	PaceMs    int    `yaml:"pace_ms" mapstructure:"pace_ms"`
}

// Pace returns the delay between API requests.
func (c AnthropicConfig) Pace() time.Duration {
	return time.Duration(c.PaceMs) * time.Millisecond
}

// SMTPConfig holds email delivery settings.
type SMTPConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	From     string `yaml:"from" mapstructure:"from"`
	To       string `yaml:"to" mapstructure:"to"`
	Password string `yaml:"password" mapstructure:"password"`
}

// StoreConfig configures the run history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks bounds on the settings a scan depends on. Credentials are
// not validated here: a missing API key or SMTP password degrades the run
// instead of blocking it.
func (c *Config) Validate() error {
	var problems []string
	if c.Edgar.Count <= 0 {
		problems = append(problems, "edgar.count must be > 0")
	}
	if c.News.PerQuery <= 0 {
		problems = append(problems, "news.per_query must be > 0")
	}
	if c.News.MaxAgeHours < 0 {
		problems = append(problems, "news.max_age_hours must be >= 0")
	}
	if c.Anthropic.MaxTokens <= 0 {
		problems = append(problems, "anthropic.max_tokens must be > 0")
	}
	if c.SMTP.Port <= 0 {
		problems = append(problems, "smtp.port must be > 0")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("edgar.form_type", "8-K")
	v.SetDefault("edgar.count", 100)
	v.SetDefault("news.queries", source.DefaultQueries)
	v.SetDefault("news.per_query", 5)
	v.SetDefault("news.max_age_hours", 48)
	v.SetDefault("news.pace_ms", 500)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4000)
	v.SetDefault("anthropic.pace_ms", 2000)
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 465)
	v.SetDefault("store.path", "cfo-monitor.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
