package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config はRedis接続の設定です
type Config struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Pinger は接続確認とクローズだけを持つ接続です
type Pinger interface {
	Ping(ctx context.Context) error
	Close() error
}

// ClientFactory はredis.Optionsから接続を作ります。テストで差し替えます
type ClientFactory func(opt *redis.Options) Pinger

type clientAdapter struct {
	client *redis.Client
}

func (a *clientAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *clientAdapter) Close() error {
	return a.client.Close()
}

func DefaultClientFactory(opt *redis.Options) Pinger {
	return &clientAdapter{client: redis.NewClient(opt)}
}

func options(cfg Config) *redis.Options {
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	return &redis.Options{
		Addr:        cfg.addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}
}

// ConnectWithFactory は接続を作り、Pingが通ることを確認します
func ConnectWithFactory(ctx context.Context, cfg Config, factory ClientFactory) (Pinger, error) {
	if factory == nil {
		factory = DefaultClientFactory
	}
	conn := factory(options(cfg))
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("redis接続に失敗しました(%s): %w", cfg.addr(), err)
	}
	return conn, nil
}

// Connect は本番用の*redis.Clientを返します
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	conn, err := ConnectWithFactory(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	adapter, ok := conn.(*clientAdapter)
	if !ok {
		return nil, errors.New("unexpected redis connection type")
	}
	return adapter.client, nil
}

// Client はセッション保存とJSONキャッシュの操作を提供します
type Client struct {
	client     *redis.Client
	serializer UserInfoSerializer
}

func NewClient(client *redis.Client) *Client {
	return &Client{
		client:     client,
		serializer: NewUserInfoSerializer(),
	}
}

func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}
