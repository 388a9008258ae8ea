package query

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// errSuperseded は同じキーに対してより新しいフェッチの結果が既に書き込まれていることを表します
var errSuperseded = errors.New("fetch superseded by newer result")

type EventType int

const (
	EventUpdated EventType = iota + 1
	EventInvalidated
	EventCleared
)

type Event struct {
	Type EventType
	Key  Key
}

type Listener func(Event)

// Entry は1つのKeyに対応するキャッシュエントリです。
// 値は成功したフェッチでのみ置き換えられ、その場で書き換えられることはありません
type Entry struct {
	key         Key
	data        any
	hasData     bool
	fetched     bool
	status      Status
	err         error
	updatedAt   time.Time
	ttl         time.Duration
	invalidated bool
	// epoch は無効化のたびに進みます。dataEpoch は現在の値を取得したフェッチの開始時点のepochです
	epoch     uint64
	dataEpoch uint64
}

func (e *Entry) isFresh(now time.Time) bool {
	if e.invalidated || !e.hasData || e.updatedAt.IsZero() {
		return false
	}
	return now.Sub(e.updatedAt) < e.ttl
}

// EntrySnapshot はテストや診断用のエントリの写しです
type EntrySnapshot struct {
	Key         string
	Data        any
	HasData     bool
	Status      string
	Err         string
	UpdatedAt   time.Time
	TTL         time.Duration
	Invalidated bool
}

type entryView struct {
	entry Entry
	fresh bool
}

// fetchTicket はフェッチ開始時点の世代を記録し、古い結果の書き込みを防ぎます
type fetchTicket struct {
	generation uint64
	epoch      uint64
}

type listenerSet struct {
	key Key
	fns map[uint64]Listener
}

// Cache はプロセス内で共有されるクエリキャッシュです。
// 書き込むのはクエリ実行（フェッチ完了）とミューテーション（無効化）だけです
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*Entry
	listeners  map[string]*listenerSet
	nextID     uint64
	generation uint64
}

func NewCache() *Cache {
	return &Cache{
		entries:   make(map[string]*Entry),
		listeners: make(map[string]*listenerSet),
	}
}

func (c *Cache) lookup(ctx context.Context, key Key) (entryView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return entryView{}, false
	}
	return entryView{entry: *e, fresh: e.isFresh(ctxtime.Now(ctx))}, true
}

func (c *Cache) ticket(key Key) fetchTicket {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := fetchTicket{generation: c.generation}
	if e, ok := c.entries[key.String()]; ok {
		t.epoch = e.epoch
	}
	return t
}

func (c *Cache) beginFetch(key Key, t fetchTicket) error {
	c.mu.Lock()
	if t.generation != c.generation {
		c.mu.Unlock()
		return ErrSessionCleared
	}
	h := key.String()
	e, ok := c.entries[h]
	if !ok {
		e = &Entry{key: key, epoch: t.epoch}
		c.entries[h] = e
	}
	e.status = StatusFetching
	listeners := c.listenersLocked(h)
	c.mu.Unlock()

	notify(listeners, Event{Type: EventUpdated, Key: key})
	return nil
}

// complete は取得した値を書き込みます。
// フェッチ中に無効化されていた場合、値は書き込みますが古い状態のまま残します
func (c *Cache) complete(ctx context.Context, key Key, t fetchTicket, data any, ttl time.Duration) error {
	c.mu.Lock()
	h := key.String()
	e, err := c.entryForTicketLocked(h, t)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	e.data = data
	e.hasData = true
	e.fetched = true
	e.status = StatusSuccess
	e.err = nil
	e.updatedAt = ctxtime.Now(ctx)
	e.ttl = ttl
	e.dataEpoch = t.epoch
	e.invalidated = e.epoch != t.epoch
	listeners := c.listenersLocked(h)
	c.mu.Unlock()

	notify(listeners, Event{Type: EventUpdated, Key: key})
	return nil
}

// fail はエラー状態を記録します。以前に取得した値は消しません
func (c *Cache) fail(key Key, t fetchTicket, fetchErr error) error {
	c.mu.Lock()
	h := key.String()
	e, err := c.entryForTicketLocked(h, t)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	e.fetched = true
	e.status = StatusError
	e.err = fetchErr
	listeners := c.listenersLocked(h)
	c.mu.Unlock()

	notify(listeners, Event{Type: EventUpdated, Key: key})
	return nil
}

func (c *Cache) entryForTicketLocked(h string, t fetchTicket) (*Entry, error) {
	if t.generation != c.generation {
		return nil, ErrSessionCleared
	}
	e, ok := c.entries[h]
	if !ok {
		return nil, ErrSessionCleared
	}
	if e.hasData && t.epoch < e.dataEpoch {
		return nil, errSuperseded
	}
	return e, nil
}

// InvalidateName は名前が一致するすべてのエントリを古い状態にします。パラメータは問いません
func (c *Cache) InvalidateName(name Name) []Key {
	c.mu.Lock()
	var (
		keys   []Key
		events []pendingEvent
	)
	for h, e := range c.entries {
		if !e.key.Matches(name) {
			continue
		}
		invalidateLocked(e)
		keys = append(keys, e.key)
		events = append(events, pendingEvent{
			listeners: c.listenersLocked(h),
			event:     Event{Type: EventInvalidated, Key: e.key},
		})
	}
	c.mu.Unlock()

	for _, pe := range events {
		notify(pe.listeners, pe.event)
	}
	return keys
}

// InvalidateKey は完全一致するエントリだけを古い状態にします
func (c *Cache) InvalidateKey(key Key) bool {
	c.mu.Lock()
	h := key.String()
	e, ok := c.entries[h]
	if !ok {
		c.mu.Unlock()
		return false
	}
	invalidateLocked(e)
	listeners := c.listenersLocked(h)
	c.mu.Unlock()

	notify(listeners, Event{Type: EventInvalidated, Key: key})
	return true
}

func invalidateLocked(e *Entry) {
	e.invalidated = true
	e.epoch++
}

// Clear はすべてのエントリを破棄します。実行中のフェッチの結果も書き込まれなくなります
func (c *Cache) Clear() {
	c.mu.Lock()
	c.generation++
	c.entries = make(map[string]*Entry)
	events := make([]pendingEvent, 0, len(c.listeners))
	for _, set := range c.listeners {
		events = append(events, pendingEvent{
			listeners: copyListeners(set),
			event:     Event{Type: EventCleared, Key: set.key},
		})
	}
	c.mu.Unlock()

	for _, pe := range events {
		notify(pe.listeners, pe.event)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) Get(ctx context.Context, key Key) (EntrySnapshot, bool) {
	v, ok := c.lookup(ctx, key)
	if !ok {
		return EntrySnapshot{}, false
	}
	return snapshotOf(&v.entry), true
}

// Snapshot はキー順に並べたすべてのエントリの写しを返します
func (c *Cache) Snapshot() []EntrySnapshot {
	c.mu.Lock()
	snaps := make([]EntrySnapshot, 0, len(c.entries))
	for _, e := range c.entries {
		snaps = append(snaps, snapshotOf(e))
	}
	c.mu.Unlock()

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Key < snaps[j].Key
	})
	return snaps
}

// subscribe はKeyに対するイベントの購読を登録し、解除関数を返します
func (c *Cache) subscribe(key Key, l Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := key.String()
	c.nextID++
	id := c.nextID
	set, ok := c.listeners[h]
	if !ok {
		set = &listenerSet{key: key, fns: make(map[uint64]Listener)}
		c.listeners[h] = set
	}
	set.fns[id] = l

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		set, ok := c.listeners[h]
		if !ok {
			return
		}
		delete(set.fns, id)
		if len(set.fns) == 0 {
			delete(c.listeners, h)
		}
	}
}

func (c *Cache) listenersLocked(h string) []Listener {
	return copyListeners(c.listeners[h])
}

type pendingEvent struct {
	listeners []Listener
	event     Event
}

func copyListeners(set *listenerSet) []Listener {
	if set == nil || len(set.fns) == 0 {
		return nil
	}
	ls := make([]Listener, 0, len(set.fns))
	for _, l := range set.fns {
		ls = append(ls, l)
	}
	return ls
}

func notify(listeners []Listener, ev Event) {
	for _, l := range listeners {
		l(ev)
	}
}

func snapshotOf(e *Entry) EntrySnapshot {
	s := EntrySnapshot{
		Key:         e.key.String(),
		Data:        e.data,
		HasData:     e.hasData,
		Status:      e.status.String(),
		UpdatedAt:   e.updatedAt,
		TTL:         e.ttl,
		Invalidated: e.invalidated,
	}
	if e.err != nil {
		s.Err = e.err.Error()
	}
	return s
}
