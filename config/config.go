package config

import (
	"fmt"
	"strings"
	"time"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/rules"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Provider kinds.
const (
	ProviderMemory   = "memory"
	ProviderPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Provider  ProviderConfig  `mapstructure:"provider"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // rate limiting is off without redis
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig sizes the fixed windows applied to quote endpoints.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// RulesConfig carries the business constants. Money and rate values are kept
// as strings and parsed into decimals so YAML floats never leak into math.
type RulesConfig struct {
	WithdrawalFeeRate       string `mapstructure:"withdrawal_fee_rate"`
	P2PFeeRate              string `mapstructure:"p2p_fee_rate"`
	MinWithdrawal           string `mapstructure:"min_withdrawal"`
	RequiredDirectReferrals int    `mapstructure:"required_direct_referrals"`
	InvestorCapMultiplier   string `mapstructure:"investor_cap_multiplier"`
	NetworkerCapMultiplier  string `mapstructure:"networker_cap_multiplier"`
}

type ProviderConfig struct {
	Kind string `mapstructure:"kind"` // memory, postgres
}

// FeeSchedule parses and checks the two fee rates.
func (r RulesConfig) FeeSchedule() (domain.FeeSchedule, error) {
	w, err := parseDecimal("rules.withdrawal_fee_rate", r.WithdrawalFeeRate)
	if err != nil {
		return domain.FeeSchedule{}, err
	}
	p, err := parseDecimal("rules.p2p_fee_rate", r.P2PFeeRate)
	if err != nil {
		return domain.FeeSchedule{}, err
	}
	fees := domain.FeeSchedule{WithdrawalFeeRate: w, P2PFeeRate: p}
	if err := fees.Validate(); err != nil {
		return domain.FeeSchedule{}, err
	}
	return fees, nil
}

// Settings builds the rules engine settings. The commission table is fixed
// by the business model and is not configurable.
func (r RulesConfig) Settings() (rules.Settings, error) {
	fees, err := r.FeeSchedule()
	if err != nil {
		return rules.Settings{}, err
	}
	minWithdrawal, err := parseDecimal("rules.min_withdrawal", r.MinWithdrawal)
	if err != nil {
		return rules.Settings{}, err
	}
	if minWithdrawal.IsNegative() {
		return rules.Settings{}, fmt.Errorf("rules.min_withdrawal must not be negative, got %s", minWithdrawal)
	}
	if r.RequiredDirectReferrals < 1 {
		return rules.Settings{}, fmt.Errorf("rules.required_direct_referrals must be at least 1, got %d", r.RequiredDirectReferrals)
	}

	return rules.Settings{
		Fees:                    fees,
		MinWithdrawal:           minWithdrawal,
		Commission:              domain.DefaultCommissionTable(),
		RequiredDirectReferrals: r.RequiredDirectReferrals,
	}, nil
}

// CapMultipliers returns the investor and networker payout cap multipliers.
func (r RulesConfig) CapMultipliers() (investor, networker decimal.Decimal, err error) {
	investor, err = parseDecimal("rules.investor_cap_multiplier", r.InvestorCapMultiplier)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	networker, err = parseDecimal("rules.networker_cap_multiplier", r.NetworkerCapMultiplier)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if !investor.IsPositive() || !networker.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("cap multipliers must be greater than zero")
	}
	return investor, networker, nil
}

// Validate reports the first setting that would stop the service from
// starting.
func (c *Config) Validate() error {
	if _, err := c.Rules.Settings(); err != nil {
		return err
	}
	if _, _, err := c.Rules.CapMultipliers(); err != nil {
		return err
	}
	switch c.Provider.Kind {
	case ProviderMemory, ProviderPostgres:
	default:
		return fmt.Errorf("provider.kind must be %q or %q, got %q", ProviderMemory, ProviderPostgres, c.Provider.Kind)
	}
	if c.Redis.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("ratelimit.requests and ratelimit.window must be positive when redis is enabled")
	}
	return nil
}

func parseDecimal(key, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GVL_ (GoldVest Ledger).
// Nested keys use underscore: GVL_DATABASE_HOST, GVL_RULES_MIN_WITHDRAWAL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "goldvest")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.requests", 60)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("rules.withdrawal_fee_rate", "0.10")
	v.SetDefault("rules.p2p_fee_rate", "0.05")
	v.SetDefault("rules.min_withdrawal", "10")
	v.SetDefault("rules.required_direct_referrals", domain.DefaultRequiredDirectReferrals)
	v.SetDefault("rules.investor_cap_multiplier", "2")
	v.SetDefault("rules.networker_cap_multiplier", "3")
	v.SetDefault("provider.kind", ProviderMemory)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GVL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("GVL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
