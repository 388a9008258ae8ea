package usecase

import (
	"log/slog"
	"sync"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/identity"
	"github.com/na2na-p/eventsync/internal/query"
)

// Session は1人の利用者の識別情報、クエリキャッシュ、バインディングをまとめたものです。
// ログアウトまたは別のPrincipalへの切り替えでキャッシュは空になります
type Session struct {
	id                  string
	identity            *identity.Context
	client              *query.Client
	logger              *slog.Logger
	contestPollInterval time.Duration

	mu      sync.RWMutex
	binding RemoteBinding
	user    *domain.UserInfo

	unsubscribe func()
	done        chan struct{}
	closeOnce   sync.Once
}

type SessionOption func(*Session)

func WithContestPollInterval(d time.Duration) SessionOption {
	return func(s *Session) {
		s.contestPollInterval = d
	}
}

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

func NewSession(id string, ident *identity.Context, client *query.Client, opts ...SessionOption) *Session {
	s := &Session{
		id:                  id,
		identity:            ident,
		client:              client,
		logger:              slog.Default(),
		contestPollInterval: DefaultContestPollInterval,
		done:                make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unsubscribe = ident.OnChange(s.onIdentityChange)
	return s
}

func (s *Session) onIdentityChange(ch identity.Change) {
	if !ch.SessionEnded() {
		return
	}
	s.client.Poller().Stop()
	s.client.Clear()
	s.logger.Info("session cache cleared",
		"session_id", s.id,
		"status", ch.Status.String(),
	)
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Identity() *identity.Context {
	return s.identity
}

func (s *Session) Client() *query.Client {
	return s.client
}

func (s *Session) Principal() (domain.Principal, bool) {
	return s.identity.Identity()
}

func (s *Session) User() (*domain.UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user != nil
}

// Binding はバインディングが確立されている場合だけ返します
func (s *Session) Binding() (RemoteBinding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.binding, s.binding != nil
}

// Attach はバインディングを差し替えます。nilを渡すと未確立の状態に戻ります
func (s *Session) Attach(b RemoteBinding) {
	s.mu.Lock()
	s.binding = b
	s.mu.Unlock()
}

// Login はバインディングを付け替えてから認証済みにします。
// 直前と異なるPrincipalであれば、その時点でキャッシュは空になります
func (s *Session) Login(user *domain.UserInfo, b RemoteBinding) error {
	s.identity.BeginLogin()
	s.mu.Lock()
	s.binding = b
	s.user = user
	s.mu.Unlock()

	if err := s.identity.CompleteLogin(user.Principal()); err != nil {
		s.mu.Lock()
		s.binding = nil
		s.user = nil
		s.mu.Unlock()
		_ = s.identity.FailLogin()
		return err
	}
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.binding = nil
	s.user = nil
	s.mu.Unlock()
	s.identity.Logout()
}

// Done はCloseされると閉じるチャネルです。ストリームなど長く続く購読はこれで終了します
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close はポーリングを止め、キャッシュを破棄します。2回目以降の呼び出しは何もしません
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		s.Logout()
		s.client.Poller().Stop()
		s.client.Clear()
		close(s.done)
	})
}
