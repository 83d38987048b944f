package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultStampsForReward   = 10
	defaultMaxStampsPerVisit = 5
	defaultLookupLimit       = 20
	defaultHistoryLimit      = 50
	defaultReportWindow      = 30 * 24 * time.Hour
	defaultReportMaxWindow   = 366 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access verifies bearer tokens issued by the auth service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Loyalty holds the program defaults used when a location has no settings row
	Loyalty *LoyaltyConfig `json:"loyalty" yaml:"loyalty"`

	// QRCode configuration for customer QR cards
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Redis backs rate limiting and the report cache; both are disabled when unset
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Report *ReportConfig `json:"report" yaml:"report"`

	// PubSub configuration for loyalty event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// LoyaltyConfig defines program-wide defaults for stamp cards
type LoyaltyConfig struct {
	DefaultStampsForReward   int     `json:"defaultStampsForReward" yaml:"defaultStampsForReward"`
	DefaultMaxStampsPerVisit int     `json:"defaultMaxStampsPerVisit" yaml:"defaultMaxStampsPerVisit"`
	DefaultRewardValue       float64 `json:"defaultRewardValue" yaml:"defaultRewardValue"`
	LookupLimit              int     `json:"lookupLimit" yaml:"lookupLimit"`
	HistoryLimit             int     `json:"historyLimit" yaml:"historyLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	TLS      bool   `json:"tls" yaml:"tls"`
}

// RateLimitConfig defines the token bucket applied to point-of-sale writes
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

// ReportConfig defines aggregate reporting behaviour
type ReportConfig struct {
	DefaultWindow time.Duration `json:"defaultWindow" yaml:"defaultWindow"`
	MaxWindow     time.Duration `json:"maxWindow" yaml:"maxWindow"`
	CacheTTL      time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider), also the queue name for rabbitmq
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP URL (for rabbitmq provider)
	AMQPURL string `json:"amqpUrl" yaml:"amqpUrl"`
}

// LoadWithEnv reads <name>.yaml from the first directory that has it, then
// overlays environment variables onto the keys the file defines.
// POSTGRES_SSLMODE lands on postgres.sslMode, not postgres.sslmode.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	shape := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, shape), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	out := new(T)
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

// locate returns the first dir/file that exists. Relative dirs resolve
// against the working directory.
func locate(file string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := append([]string{defaultPath}, dirs...)
	for _, dir := range candidates {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", file, strings.Join(candidates, ", "))
}

// New loads config.yaml, applies program defaults and checks the settings
// the service cannot start without.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	cfg.Loyalty = withLoyaltyDefaults(cfg.Loyalty)
	cfg.Report = withReportDefaults(cfg.Report)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Postgres == nil:
		return errors.New("postgres config is required")
	case strings.TrimSpace(c.SecretKey.Access) == "":
		return errors.New("secretKey.access is required to verify staff tokens")
	case c.RateLimit != nil && c.RateLimit.Enabled && c.RateLimit.Capacity <= 0:
		return errors.New("rateLimit.capacity must be positive when rate limiting is enabled")
	}

	return nil
}

// DefaultLoyaltyConfig returns the built-in program defaults.
func DefaultLoyaltyConfig() *LoyaltyConfig {
	return withLoyaltyDefaults(nil)
}

// DefaultReportConfig returns the built-in report windows with caching off.
func DefaultReportConfig() *ReportConfig {
	return withReportDefaults(nil)
}

func withLoyaltyDefaults(cfg *LoyaltyConfig) *LoyaltyConfig {
	if cfg == nil {
		cfg = &LoyaltyConfig{}
	}
	if cfg.DefaultStampsForReward <= 0 {
		cfg.DefaultStampsForReward = defaultStampsForReward
	}
	if cfg.DefaultMaxStampsPerVisit <= 0 {
		cfg.DefaultMaxStampsPerVisit = defaultMaxStampsPerVisit
	}
	if cfg.LookupLimit <= 0 {
		cfg.LookupLimit = defaultLookupLimit
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}

	return cfg
}

func withReportDefaults(cfg *ReportConfig) *ReportConfig {
	if cfg == nil {
		cfg = &ReportConfig{}
	}
	if cfg.DefaultWindow <= 0 {
		cfg.DefaultWindow = defaultReportWindow
	}
	if cfg.MaxWindow <= 0 {
		cfg.MaxWindow = defaultReportMaxWindow
	}

	return cfg
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
