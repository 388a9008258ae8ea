package identity

import (
	"sync"

	"github.com/na2na-p/eventsync/internal/domain"
)

// Change は識別情報が変わったときに通知される内容です
type Change struct {
	Previous domain.Principal
	Current  domain.Principal
	Status   LoginStatus
}

// SessionEnded はログアウト、または別のPrincipalへの切り替えを表します
func (c Change) SessionEnded() bool {
	if c.Previous.IsZero() {
		return false
	}
	return !c.Previous.Equal(c.Current)
}

// Context は現在の呼び出し元とログイン状態を保持します
type Context struct {
	mu        sync.Mutex
	principal domain.Principal
	status    LoginStatus
	listeners map[uint64]func(Change)
	nextID    uint64
}

func NewContext() *Context {
	return &Context{
		status:    LoginStatusIdle,
		listeners: make(map[uint64]func(Change)),
	}
}

// Identity は認証済みの場合だけPrincipalを返します
func (c *Context) Identity() (domain.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.principal.IsZero() {
		return domain.Principal{}, false
	}
	return c.principal, true
}

func (c *Context) Status() LoginStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Context) BeginLogin() {
	c.mu.Lock()
	c.status = LoginStatusLoggingIn
	c.mu.Unlock()
}

// CompleteLogin は認証済み状態に遷移します。異なるPrincipalへの切り替えも受け付けます
func (c *Context) CompleteLogin(p domain.Principal) error {
	if p.IsZero() {
		return domain.ErrEmptyPrincipal
	}
	c.mu.Lock()
	prev := c.principal
	c.principal = p
	c.status = LoginStatusAuthenticated
	ch := Change{Previous: prev, Current: p, Status: c.status}
	listeners := c.listenersLocked()
	c.mu.Unlock()

	if !prev.Equal(p) {
		notify(listeners, ch)
	}
	return nil
}

// FailLogin はログイン中の状態を取り消します
func (c *Context) FailLogin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != LoginStatusLoggingIn {
		return ErrNotLoggingIn
	}
	if c.principal.IsZero() {
		c.status = LoginStatusIdle
	} else {
		c.status = LoginStatusAuthenticated
	}
	return nil
}

func (c *Context) Logout() {
	c.mu.Lock()
	prev := c.principal
	c.principal = domain.Principal{}
	c.status = LoginStatusIdle
	ch := Change{Previous: prev, Status: c.status}
	listeners := c.listenersLocked()
	c.mu.Unlock()

	if !prev.IsZero() {
		notify(listeners, ch)
	}
}

// OnChange はPrincipalの変化を購読します。戻り値で購読を解除します
func (c *Context) OnChange(fn func(Change)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Context) listenersLocked() []func(Change) {
	ls := make([]func(Change), 0, len(c.listeners))
	for _, l := range c.listeners {
		ls = append(ls, l)
	}
	return ls
}

func notify(listeners []func(Change), ch Change) {
	for _, l := range listeners {
		l(ch)
	}
}
