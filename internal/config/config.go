package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "EVENTSYNC"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Redis    RedisConfig    `mapstructure:"redis"`
	S3       S3Config       `mapstructure:"s3"`
	Identity IdentityConfig `mapstructure:"identity"`
	Query    QueryConfig    `mapstructure:"query"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	TrustedProxyCIDRs []string      `mapstructure:"trustedproxycidrs"`
	CookieSecure      bool          `mapstructure:"cookiesecure"`
	CookieDomain      string        `mapstructure:"cookiedomain"`
	MaxPhotoSize      int64         `mapstructure:"maxphotosize"`
	StreamKeepAlive   time.Duration `mapstructure:"streamkeepalive"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"baseurl"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"accesskeyid"`
	SecretAccessKey string        `mapstructure:"secretaccesskey"`
	Region          string        `mapstructure:"region"`
	Bucket          string        `mapstructure:"bucket"`
	PublicBaseURL   string        `mapstructure:"publicbaseurl"`
	URLTTL          time.Duration `mapstructure:"urlttl"`
}

type IdentityConfig struct {
	JWKSURL              string        `mapstructure:"jwksurl"`
	Issuer               string        `mapstructure:"issuer"`
	Audience             string        `mapstructure:"audience"`
	SessionTTL           time.Duration `mapstructure:"sessionttl"`
	SessionSweepInterval time.Duration `mapstructure:"sessionsweepinterval"`
}

// QueryConfig はセッションごとのクエリクライアントの既定値です
type QueryConfig struct {
	StaleTime           time.Duration `mapstructure:"staletime"`
	Retry               int           `mapstructure:"retry"`
	RetryDelay          time.Duration `mapstructure:"retrydelay"`
	ContestPollInterval time.Duration `mapstructure:"contestpollinterval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var defaults = map[string]any{
	"server.port":                   "8080",
	"server.trustedproxycidrs":      []string{},
	"server.cookiesecure":           true,
	"server.cookiedomain":           "",
	"server.maxphotosize":           10 << 20,
	"server.streamkeepalive":        15 * time.Second,
	"backend.baseurl":               "",
	"backend.timeout":               10 * time.Second,
	"redis.host":                    "localhost",
	"redis.port":                    6379,
	"redis.password":                "",
	"redis.db":                      0,
	"s3.endpoint":                   "",
	"s3.accesskeyid":                "",
	"s3.secretaccesskey":            "",
	"s3.region":                     "us-east-1",
	"s3.bucket":                     "",
	"s3.publicbaseurl":              "",
	"s3.urlttl":                     24 * time.Hour,
	"identity.jwksurl":              "",
	"identity.issuer":               "",
	"identity.audience":             "",
	"identity.sessionttl":           24 * time.Hour,
	"identity.sessionsweepinterval": time.Minute,
	"query.staletime":               5 * time.Minute,
	"query.retry":                   1,
	"query.retrydelay":              time.Second,
	"query.contestpollinterval":     5 * time.Second,
	"log.level":                     "info",
}

// Load はカレントディレクトリのconfig.yamlとEVENTSYNC_*環境変数から設定を読み込みます。
// 設定ファイルは省略できます
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Backend.BaseURL == "" {
		errs = append(errs, errors.New("backend.baseurl is required"))
	}
	if c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3.bucket is required"))
	}
	if c.Identity.JWKSURL == "" {
		errs = append(errs, errors.New("identity.jwksurl is required"))
	}
	if c.Identity.Issuer == "" {
		errs = append(errs, errors.New("identity.issuer is required"))
	}
	if c.Identity.Audience == "" {
		errs = append(errs, errors.New("identity.audience is required"))
	}
	if c.Query.Retry < -1 {
		errs = append(errs, fmt.Errorf("query.retry must be -1 or greater: %d", c.Query.Retry))
	}
	if c.Identity.SessionSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("identity.sessionsweepinterval must be positive: %s", c.Identity.SessionSweepInterval))
	}
	if c.Query.ContestPollInterval <= 0 {
		errs = append(errs, fmt.Errorf("query.contestpollinterval must be positive: %s", c.Query.ContestPollInterval))
	}
	return errors.Join(errs...)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, Region: %s, Bucket: %s, PublicBaseURL: %s, URLTTL: %s}",
		c.Endpoint, c.AccessKeyID, c.Region, c.Bucket, c.PublicBaseURL, c.URLTTL)
}
