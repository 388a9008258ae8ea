package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/identity"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/newmo-oss/ctxtime"
)

// SessionRegistry はセッションIDごとのSessionをプロセス内で保持します。
// キャッシュはセッションごとに独立しており、利用者間で共有されることはありません
type SessionRegistry struct {
	mu             sync.Mutex
	sessions       map[string]*Session
	factory        BindingFactory
	clientOptions  []query.Option
	sessionOptions []SessionOption
	logger         *slog.Logger
}

func NewSessionRegistry(factory BindingFactory, logger *slog.Logger, clientOptions []query.Option, sessionOptions ...SessionOption) *SessionRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionRegistry{
		sessions:       make(map[string]*Session),
		factory:        factory,
		clientOptions:  clientOptions,
		sessionOptions: append([]SessionOption{WithSessionLogger(logger)}, sessionOptions...),
		logger:         logger,
	}
}

// Open はセッションを作成してログイン状態にします。既に存在する場合はそれを返します。
// バインディングを作れなかった場合もセッションは作られ、クエリは無効のままになります
func (r *SessionRegistry) Open(sessionID string, user *domain.UserInfo) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}

	s := NewSession(sessionID, identity.NewContext(), query.NewClient(r.clientOptions...), r.sessionOptions...)

	binding, err := r.factory.Bind(user)
	if err != nil {
		r.logger.Warn("remote binding unavailable", "session_id", sessionID, "error", err)
		binding = nil
	}
	if err := s.Login(user, binding); err != nil {
		s.Close()
		return nil, err
	}

	r.sessions[sessionID] = s
	return s, nil
}

func (r *SessionRegistry) Get(sessionID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	return s, ok
}

// Close はセッションを取り除き、そのキャッシュを破棄します
func (r *SessionRegistry) Close(sessionID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if !ok {
		return false
	}
	s.Close()
	return true
}

func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep はトークンの有効期限が切れたセッションを閉じ、閉じた件数を返します。
// Cookieを捨てて戻ってこない利用者のキャッシュもここで解放されます
func (r *SessionRegistry) Sweep(ctx context.Context) int {
	now := ctxtime.Now(ctx)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if user, ok := s.User(); ok && !user.IsExpired(now) {
			continue
		}
		expired = append(expired, s)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		r.logger.Info("expired sessions evicted", "count", len(expired))
	}
	return len(expired)
}

// RunSweeper はctxが終了するまでintervalごとにSweepを実行します
func (r *SessionRegistry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}
