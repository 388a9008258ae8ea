package query

import (
	"context"
	"sync"
)

// Observer はマウントされたビューに相当する1つのクエリの購読です。
// 無効化されると再取得し、PollIntervalが設定されていればポーリングに参加します
type Observer[T any] struct {
	client *Client
	query  Query[T]
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	latest  Result[T]
	updates chan Result[T]

	unsubscribe func()
	poll        *Subscription
	stopAfter   func() bool
}

// Observe はクエリの監視を開始します。ctxが終了するかCloseを呼ぶまで購読が続きます
func Observe[T any](ctx context.Context, c *Client, q Query[T]) *Observer[T] {
	octx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	o := &Observer[T]{
		client:  c,
		query:   q,
		ctx:     octx,
		cancel:  cancel,
		latest:  Result[T]{Status: StatusIdle},
		updates: make(chan Result[T], 1),
	}
	o.unsubscribe = c.cache.subscribe(q.Key, o.handle)

	if q.Enabled {
		o.spawn(func(ctx context.Context) {
			o.publish(Fetch(ctx, c, q))
		})
		if q.PollInterval > 0 {
			o.poll = c.poller.Subscribe(q.Key, q.PollInterval, func(ctx context.Context) {
				Refetch(ctx, c, q)
			})
		}
	} else {
		o.publish(Result[T]{Status: StatusIdle})
	}

	stop := context.AfterFunc(ctx, o.Close)
	o.mu.Lock()
	o.stopAfter = stop
	o.mu.Unlock()
	return o
}

func (o *Observer[T]) Key() Key {
	return o.query.Key
}

// Updates は状態が変わるたびに最新のResultを受け取るチャネルです。
// 読み出しが追いつかない場合は最新の値だけが残ります。Close後に閉じられます
func (o *Observer[T]) Updates() <-chan Result[T] {
	return o.updates
}

func (o *Observer[T]) Current() Result[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest
}

func (o *Observer[T]) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	close(o.updates)
	stop := o.stopAfter
	o.mu.Unlock()

	o.unsubscribe()
	if o.poll != nil {
		o.poll.Close()
	}
	if stop != nil {
		stop()
	}
	o.cancel()
}

func (o *Observer[T]) handle(ev Event) {
	switch ev.Type {
	case EventUpdated:
		o.publish(Peek[T](o.ctx, o.client, o.query.Key))
	case EventInvalidated:
		if !o.query.runnable() {
			return
		}
		o.spawn(func(ctx context.Context) {
			o.publish(Fetch(ctx, o.client, o.query))
		})
	case EventCleared:
		o.publish(Result[T]{Status: StatusIdle})
	}
}

func (o *Observer[T]) spawn(fn func(ctx context.Context)) {
	o.mu.Lock()
	closed := o.closed
	o.mu.Unlock()
	if closed {
		return
	}
	go fn(o.ctx)
}

func (o *Observer[T]) publish(r Result[T]) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.latest = r
	select {
	case <-o.updates:
	default:
	}
	o.updates <- r
}
