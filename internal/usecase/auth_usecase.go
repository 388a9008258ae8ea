package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// AuthUseCase はIDトークンによるログイン、セッションの復元、ログアウトを扱います
type AuthUseCase struct {
	verifier     TokenVerifier
	sessionStore SessionStoreInterface
	registry     *SessionRegistry
	sessionTTL   time.Duration
	logger       *slog.Logger
}

func NewAuthUseCase(
	verifier TokenVerifier,
	sessionStore SessionStoreInterface,
	registry *SessionRegistry,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	if sessionTTL <= 0 {
		sessionTTL = SessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthUseCase{
		verifier:     verifier,
		sessionStore: sessionStore,
		registry:     registry,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Login はIDトークンを検証し、新しいセッションを作成します
func (uc *AuthUseCase) Login(ctx context.Context, idToken string) (string, *Session, error) {
	userInfo, err := uc.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	ttl := uc.sessionTTL
	if exp := userInfo.ExpiresAt(); !exp.IsZero() {
		if remaining := exp.Sub(ctxtime.Now(ctx)); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return "", nil, fmt.Errorf("%w: token already expired", ErrAuthenticationFailed)
	}

	sessionID, err := uc.sessionStore.CreateSession(ctx, userInfo, ttl)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	sess, err := uc.registry.Open(sessionID, userInfo)
	if err != nil {
		if delErr := uc.sessionStore.DeleteSession(ctx, sessionID); delErr != nil {
			uc.logger.WarnContext(ctx, "failed to delete session", "session_id", sessionID, "error", delErr)
		}
		return "", nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	uc.logger.InfoContext(ctx, "login succeeded", "session_id", sessionID, "principal", userInfo.Principal().String())
	return sessionID, sess, nil
}

// Resolve はセッションIDに対応するSessionを返します。プロセス内に無ければストアから復元します
func (uc *AuthUseCase) Resolve(ctx context.Context, sessionID string) (*Session, error) {
	if sess, ok := uc.registry.Get(sessionID); ok {
		if user, ok := sess.User(); ok && !user.IsExpired(ctxtime.Now(ctx)) {
			return sess, nil
		}
		uc.registry.Close(sessionID)
		return nil, fmt.Errorf("%w: expired", ErrSessionNotFound)
	}

	userInfo, err := uc.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	if userInfo.IsExpired(ctxtime.Now(ctx)) {
		return nil, fmt.Errorf("%w: expired", ErrSessionNotFound)
	}

	sess, err := uc.registry.Open(sessionID, userInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	return sess, nil
}

// Logout はセッションを破棄します。キャッシュはこの時点で空になります
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	uc.registry.Close(sessionID)
	if err := uc.sessionStore.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("セッションの削除に失敗しました: %w", err)
	}
	return nil
}
