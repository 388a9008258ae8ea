package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultStaleTime  = 5 * time.Minute
	DefaultRetry      = 1
	DefaultRetryDelay = time.Second
)

// Client はCache、重複排除、リトライ、ポーリングをまとめたクエリ実行エンジンです
type Client struct {
	cache      *Cache
	poller     *Poller
	flight     singleflight.Group
	staleTime  time.Duration
	retry      int
	retryDelay time.Duration
	logger     *slog.Logger
	metrics    *Metrics
}

type Option func(*Client)

// WithStaleTime はクエリの既定の鮮度です。0以下を渡すと常に古いものとして扱います
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) {
		c.staleTime = max(d, 0)
	}
}

// WithRetry はクエリの既定の再試行回数です。負の値は再試行なしとして扱います
func WithRetry(n int) Option {
	return func(c *Client) {
		c.retry = max(n, 0)
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		cache:      NewCache(),
		staleTime:  DefaultStaleTime,
		retry:      DefaultRetry,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.poller = NewPoller(c.logger, c.metrics)
	return c
}

func (c *Client) Cache() *Cache {
	return c.cache
}

func (c *Client) Poller() *Poller {
	return c.poller
}

// Invalidate は指定した名前のエントリをすべて古い状態にし、無効化した件数を返します
func (c *Client) Invalidate(names ...Name) int {
	total := 0
	for _, name := range names {
		keys := c.cache.InvalidateName(name)
		c.metrics.observeInvalidation(name, len(keys))
		total += len(keys)
	}
	return total
}

// InvalidateKey は完全一致するエントリだけを無効化します。エントリがなければfalseです
func (c *Client) InvalidateKey(key Key) bool {
	ok := c.cache.InvalidateKey(key)
	if ok {
		c.metrics.observeInvalidation(key.Name(), 1)
	}
	return ok
}

// Clear はキャッシュを空にします。ポーリングの購読は各Observerが閉じるまで残ります
func (c *Client) Clear() {
	c.cache.Clear()
	c.logger.Info("query cache cleared")
}

func (c *Client) staleTimeFor(d time.Duration) time.Duration {
	switch {
	case d == AlwaysStale:
		return 0
	case d > 0:
		return d
	default:
		return c.staleTime
	}
}

func (c *Client) retriesFor(n int) int {
	switch {
	case n == NoRetry:
		return 0
	case n > 0:
		return n
	default:
		return c.retry
	}
}

const (
	// AlwaysStale を指定したクエリは読み出しのたびにフェッチします
	AlwaysStale time.Duration = -1
	// NoRetry を指定したクエリは失敗時に再試行しません
	NoRetry = -1
)

// Query は1つの読み出しの定義です。Enabledがfalseの間は一切フェッチしません
type Query[T any] struct {
	Key     Key
	Enabled bool
	// Active はフェッチの直前に毎回評価されます。falseを返した時点でそのクエリは無効として扱われ、
	// キャッシュにも触れません。nilなら常に有効です
	Active       func() bool
	Fn           func(ctx context.Context) (T, error)
	StaleTime    time.Duration
	Retry        int
	PollInterval time.Duration
}

func (q Query[T]) runnable() bool {
	return q.Enabled && (q.Active == nil || q.Active())
}

// Result はクエリを観測した時点の状態です
type Result[T any] struct {
	Data      T
	HasData   bool
	Status    Status
	IsFetched bool
	IsLoading bool
	IsStale   bool
	UpdatedAt time.Time
	Err       error
}

// Fetch はキャッシュが新鮮ならその値を返し、そうでなければリモートから取得します。
// 同じKeyへの同時呼び出しは1回のフェッチにまとめられます
func Fetch[T any](ctx context.Context, c *Client, q Query[T]) Result[T] {
	if !q.runnable() {
		return Result[T]{Status: StatusIdle}
	}
	if v, ok := c.cache.lookup(ctx, q.Key); ok && v.fresh {
		c.metrics.observeHit(q.Key.Name())
		return resultOf[T](v)
	}
	return execute(ctx, c, q, false)
}

// Refetch は新鮮さに関係なくリモートから取得します
func Refetch[T any](ctx context.Context, c *Client, q Query[T]) Result[T] {
	if !q.runnable() {
		return Result[T]{Status: StatusIdle}
	}
	return execute(ctx, c, q, true)
}

// Peek はフェッチせずに現在のキャッシュ状態を返します
func Peek[T any](ctx context.Context, c *Client, key Key) Result[T] {
	v, ok := c.cache.lookup(ctx, key)
	if !ok {
		return Result[T]{Status: StatusIdle}
	}
	return resultOf[T](v)
}

func execute[T any](ctx context.Context, c *Client, q Query[T], force bool) Result[T] {
	t := c.cache.ticket(q.Key)
	flightKey := strconv.FormatUint(t.generation, 10) + ":" + strconv.FormatUint(t.epoch, 10) + ":" + q.Key.String()

	// 呼び出し元がキャンセルしてもフェッチは完了させ、結果を他の待機者とキャッシュに残す
	fctx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(flightKey, func() (any, error) {
		if !force {
			if v, ok := c.cache.lookup(fctx, q.Key); ok && v.fresh {
				return nil, nil
			}
		}
		if !q.runnable() {
			return nil, ErrQueryDisabled
		}
		if err := c.cache.beginFetch(q.Key, t); err != nil {
			return nil, err
		}

		data, err := fetchWithRetry(fctx, c, q)
		if err != nil {
			if werr := c.cache.fail(q.Key, t, err); werr != nil && !errors.Is(werr, errSuperseded) {
				return nil, werr
			}
			return nil, err
		}
		if werr := c.cache.complete(fctx, q.Key, t, data, c.staleTimeFor(q.StaleTime)); werr != nil {
			if errors.Is(werr, errSuperseded) {
				c.logger.Debug("discarded superseded fetch result", "query", string(q.Key.Name()))
				return nil, nil
			}
			return nil, werr
		}
		return nil, nil
	})

	select {
	case <-ctx.Done():
		r := Peek[T](fctx, c, q.Key)
		r.Err = ctx.Err()
		return r
	case res := <-ch:
		if errors.Is(res.Err, ErrQueryDisabled) {
			return Result[T]{Status: StatusIdle}
		}
		r := Peek[T](fctx, c, q.Key)
		if res.Err != nil {
			r.Err = res.Err
		}
		return r
	}
}

func fetchWithRetry[T any](ctx context.Context, c *Client, q Query[T]) (T, error) {
	retries := c.retriesFor(q.Retry)

	var (
		data T
		err  error
	)
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 && c.retryDelay > 0 {
			timer := time.NewTimer(c.retryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return data, ctx.Err()
			case <-timer.C:
			}
		}

		start := time.Now()
		data, err = q.Fn(ctx)
		c.metrics.observeFetch(q.Key.Name(), err, time.Since(start))
		if err == nil {
			return data, nil
		}
		c.logger.WarnContext(ctx, "query fetch failed",
			"query", string(q.Key.Name()),
			"attempt", attempt+1,
			"error", err,
		)
	}
	return data, err
}

func resultOf[T any](v entryView) Result[T] {
	e := v.entry
	r := Result[T]{
		HasData:   e.hasData,
		Status:    e.status,
		IsFetched: e.fetched,
		IsLoading: e.status == StatusFetching && !e.hasData,
		IsStale:   !v.fresh,
		UpdatedAt: e.updatedAt,
		Err:       e.err,
	}
	if r.Status == (Status{}) {
		r.Status = StatusIdle
	}
	if !e.hasData || e.data == nil {
		return r
	}
	data, ok := e.data.(T)
	if !ok {
		r.HasData = false
		r.Err = fmt.Errorf("%w: %s は %T を保持しています", ErrTypeMismatch, e.key.String(), e.data)
		return r
	}
	r.Data = data
	return r
}
