package query

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PollFunc はポーリングの1回分の処理です。ctxは最後の購読者が離れた時点でキャンセルされます
type PollFunc func(ctx context.Context)

type poll struct {
	key      Key
	interval time.Duration
	subs     map[uint64]PollFunc
	cancel   context.CancelFunc
}

// Poller はKeyごとに1つだけタイマーを動かします。
// 同じKeyを複数の購読者が監視していても、1回のtickで行うフェッチは1回です
type Poller struct {
	mu      sync.Mutex
	polls   map[string]*poll
	nextID  uint64
	logger  *slog.Logger
	metrics *Metrics
}

func NewPoller(logger *slog.Logger, metrics *Metrics) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		polls:   make(map[string]*poll),
		logger:  logger,
		metrics: metrics,
	}
}

// Subscribe はKeyのポーリングに参加します。
// 最初の購読者の間隔でタイマーが開始され、後から参加した購読者は同じタイマーを共有します
func (p *Poller) Subscribe(key Key, interval time.Duration, fn PollFunc) *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := key.String()
	pl, ok := p.polls[h]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		pl = &poll{
			key:      key,
			interval: interval,
			subs:     make(map[uint64]PollFunc),
			cancel:   cancel,
		}
		p.polls[h] = pl
		go p.run(ctx, pl)
		p.metrics.pollStarted(key.Name())
		p.logger.Debug("poll started", "query", string(key.Name()), "interval", interval.String())
	}

	p.nextID++
	id := p.nextID
	pl.subs[id] = fn

	return &Subscription{poller: p, hash: h, id: id}
}

func (p *Poller) run(ctx context.Context, pl *poll) {
	ticker := time.NewTicker(pl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn := p.pick(pl)
			if fn == nil {
				continue
			}
			fn(ctx)
		}
	}
}

// pick は最も古い購読者の関数を返します
func (p *Poller) pick(pl *poll) PollFunc {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		selected PollFunc
		minID    uint64
	)
	for id, fn := range pl.subs {
		if selected == nil || id < minID {
			selected = fn
			minID = id
		}
	}
	return selected
}

func (p *Poller) unsubscribe(h string, id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pl, ok := p.polls[h]
	if !ok {
		return
	}
	if _, ok := pl.subs[id]; !ok {
		return
	}
	delete(pl.subs, id)
	if len(pl.subs) > 0 {
		return
	}

	pl.cancel()
	delete(p.polls, h)
	p.metrics.pollStopped(pl.key.Name())
	p.logger.Debug("poll stopped", "query", string(pl.key.Name()))
}

// Active はKeyのタイマーが動いているかどうかを返します
func (p *Poller) Active(key Key) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.polls[key.String()]
	return ok
}

func (p *Poller) Subscribers(key Key) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	pl, ok := p.polls[key.String()]
	if !ok {
		return 0
	}
	return len(pl.subs)
}

// Stop はすべてのタイマーを止めます
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for h, pl := range p.polls {
		pl.cancel()
		delete(p.polls, h)
		p.metrics.pollStopped(pl.key.Name())
	}
}

type Subscription struct {
	poller *Poller
	hash   string
	id     uint64
	once   sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.poller.unsubscribe(s.hash, s.id)
	})
}
