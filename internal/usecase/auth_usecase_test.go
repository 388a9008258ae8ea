package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

type authMockFields struct {
	verifier *mock_usecase.MockTokenVerifier
	store    *mock_usecase.MockSessionStoreInterface
	factory  *mock_usecase.MockBindingFactory
}

func newAuthMocks(ctrl *gomock.Controller) authMockFields {
	return authMockFields{
		verifier: mock_usecase.NewMockTokenVerifier(ctrl),
		store:    mock_usecase.NewMockSessionStoreInterface(ctrl),
		factory:  mock_usecase.NewMockBindingFactory(ctrl),
	}
}

func newAuthUseCase(t *testing.T, m authMockFields) (*usecase.AuthUseCase, *usecase.SessionRegistry) {
	t.Helper()
	registry := usecase.NewSessionRegistry(m.factory, nil, nil)
	t.Cleanup(registry.CloseAll)
	return usecase.NewAuthUseCase(m.verifier, m.store, registry, 0, nil), registry
}

func TestAuthUseCase_Login(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(t *testing.T, m authMockFields)
		wantErr     error
		wantBound   bool
		wantSession string
	}{
		{
			name: "正常系: トークンの有効期限でセッションTTLが切り詰められる",
			setupMocks: func(t *testing.T, m authMockFields) {
				user := newUserInfo(t, "alice-principal")
				m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(user, nil)
				m.store.EXPECT().CreateSession(gomock.Any(), user, time.Hour).Return("session-1", nil)
				m.factory.EXPECT().Bind(user).Return(mock_usecase.NewMockRemoteBinding(gomock.NewController(t)), nil)
			},
			wantBound:   true,
			wantSession: "session-1",
		},
		{
			name: "正常系: バインディングを作れなくてもセッションは作られる",
			setupMocks: func(t *testing.T, m authMockFields) {
				user := newUserInfo(t, "alice-principal")
				m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(user, nil)
				m.store.EXPECT().CreateSession(gomock.Any(), user, time.Hour).Return("session-2", nil)
				m.factory.EXPECT().Bind(user).Return(nil, errBackend)
			},
			wantBound:   false,
			wantSession: "session-2",
		},
		{
			name: "異常系: トークンの検証に失敗した場合",
			setupMocks: func(t *testing.T, m authMockFields) {
				m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(nil, errors.New("invalid signature"))
			},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name: "異常系: 期限切れのトークンではセッションを作らない",
			setupMocks: func(t *testing.T, m authMockFields) {
				user, err := domain.NewUserInfo(mustPrincipal(t, "alice-principal"), "", "", "token", fixedNow.Add(-time.Minute))
				if err != nil {
					t.Fatal(err)
				}
				m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(user, nil)
			},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name: "異常系: セッションストアへの保存に失敗した場合",
			setupMocks: func(t *testing.T, m authMockFields) {
				user := newUserInfo(t, "alice-principal")
				m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(user, nil)
				m.store.EXPECT().CreateSession(gomock.Any(), user, gomock.Any()).Return("", errors.New("redis down"))
			},
			wantErr: usecase.ErrSessionCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctrl := gomock.NewController(t)
			m := newAuthMocks(ctrl)
			tt.setupMocks(t, m)
			uc, registry := newAuthUseCase(t, m)

			sessionID, sess, err := uc.Login(ctx, "id-token")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				if registry.Len() != 0 {
					t.Errorf("registry has %d sessions after failed login", registry.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sessionID != tt.wantSession || sess.ID() != tt.wantSession {
				t.Errorf("session id = %q/%q, want %q", sessionID, sess.ID(), tt.wantSession)
			}
			if _, ok := sess.Binding(); ok != tt.wantBound {
				t.Errorf("Binding() ok = %v, want %v", ok, tt.wantBound)
			}
			if p, ok := sess.Principal(); !ok || p.String() != "alice-principal" {
				t.Errorf("Principal() = %v, %v", p, ok)
			}
		})
	}
}

func TestAuthUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(t *testing.T, m authMockFields)
		wantErr    error
	}{
		{
			name: "正常系: ストアのセッションからSessionを復元する",
			setupMocks: func(t *testing.T, m authMockFields) {
				user := newUserInfo(t, "alice-principal")
				m.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(user, nil).Times(1)
				m.factory.EXPECT().Bind(user).Return(mock_usecase.NewMockRemoteBinding(gomock.NewController(t)), nil).Times(1)
			},
		},
		{
			name: "異常系: ストアに存在しない場合",
			setupMocks: func(t *testing.T, m authMockFields) {
				m.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(nil, domain.ErrNotFound)
			},
			wantErr: usecase.ErrSessionNotFound,
		},
		{
			name: "異常系: 期限切れのセッション",
			setupMocks: func(t *testing.T, m authMockFields) {
				user, err := domain.NewUserInfo(mustPrincipal(t, "alice-principal"), "", "", "token", fixedNow.Add(-time.Second))
				if err != nil {
					t.Fatal(err)
				}
				m.store.EXPECT().GetSession(gomock.Any(), "session-1").Return(user, nil)
			},
			wantErr: usecase.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctrl := gomock.NewController(t)
			m := newAuthMocks(ctrl)
			tt.setupMocks(t, m)
			uc, _ := newAuthUseCase(t, m)

			sess, err := uc.Resolve(ctx, "session-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// 2回目はプロセス内のSessionを返し、ストアを参照しない
			again, err := uc.Resolve(ctx, "session-1")
			if err != nil {
				t.Fatalf("second Resolve() error = %v", err)
			}
			if again != sess {
				t.Error("second Resolve() returned a different session")
			}
		})
	}
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	m := newAuthMocks(ctrl)

	user := newUserInfo(t, "alice-principal")
	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{1}, nil)
	m.verifier.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(user, nil)
	m.store.EXPECT().CreateSession(gomock.Any(), user, gomock.Any()).Return("session-1", nil)
	m.factory.EXPECT().Bind(user).Return(b, nil)
	m.store.EXPECT().DeleteSession(gomock.Any(), "session-1").Return(nil)

	uc, registry := newAuthUseCase(t, m)
	_, sess, err := uc.Login(ctx, "id-token")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	usecase.NewFavoriteUseCase(sess).Favorites(ctx)

	if err := uc.Logout(ctx, "session-1"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if registry.Len() != 0 {
		t.Errorf("registry has %d sessions after logout", registry.Len())
	}
	if n := sess.Client().Cache().Len(); n != 0 {
		t.Errorf("cache has %d entries after logout, want 0", n)
	}
	if _, ok := sess.Principal(); ok {
		t.Error("principal remains after logout")
	}
}
