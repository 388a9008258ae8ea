package usecase_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func TestProfileUseCase_NeedsProfileSetup(t *testing.T) {
	tests := []struct {
		name  string
		login bool
		setup func(b *mock_usecase.MockRemoteBinding)
		want  bool
	}{
		{
			name:  "正常系: プロフィール未登録なら設定が必要",
			login: true,
			setup: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, nil)
			},
			want: true,
		},
		{
			name:  "正常系: プロフィール登録済みなら不要",
			login: true,
			setup: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(&domain.UserProfile{Name: "Ana", Email: "ana@example.com", Role: domain.UserRoleUser}, nil)
			},
			want: false,
		},
		{
			name:  "異常系: 取得失敗は再試行せず、設定要否は判断しない",
			login: true,
			setup: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, errBackend).Times(1)
			},
			want: false,
		},
		{
			name:  "正常系: 未ログインなら判断しない",
			login: false,
			setup: func(b *mock_usecase.MockRemoteBinding) {},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctrl := gomock.NewController(t)
			b := mock_usecase.NewMockRemoteBinding(ctrl)
			tt.setup(b)

			var s *usecase.Session
			if tt.login {
				s = newLoggedInSession(t, "alice-principal", b)
			} else {
				s = newUnboundSession(t)
				s.Attach(b)
			}

			if got := usecase.NewProfileUseCase(s).NeedsProfileSetup(ctx); got != tt.want {
				t.Errorf("NeedsProfileSetup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfileUseCase_SaveCallerProfile(t *testing.T) {
	valid := domain.UserProfile{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         domain.UserRoleUser,
		Interests:    []string{"música"},
		PortfolioURL: strPtr("https://portfolio.example.com/ana"),
	}

	tests := []struct {
		name    string
		profile domain.UserProfile
		setup   func(b *mock_usecase.MockRemoteBinding)
		wantErr error
	}{
		{
			name:    "正常系: 保存に成功するとプロフィールが再取得される",
			profile: valid,
			setup: func(b *mock_usecase.MockRemoteBinding) {
				gomock.InOrder(
					b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, nil),
					b.EXPECT().SaveCallerUserProfile(gomock.Any(), valid).Return(nil),
					b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(&valid, nil),
				)
			},
		},
		{
			name: "正常系: 役割に合わない項目は落としてから送信する",
			profile: domain.UserProfile{
				Name:         "Ana",
				Email:        "ana@example.com",
				Role:         domain.UserRoleUser,
				Interests:    []string{"música"},
				PortfolioURL: strPtr("https://portfolio.example.com/ana"),
				CnpjCpf:      strPtr("12.345.678/0001-90"),
				Empresa:      strPtr("Coletivo"),
			},
			setup: func(b *mock_usecase.MockRemoteBinding) {
				gomock.InOrder(
					b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, nil),
					b.EXPECT().SaveCallerUserProfile(gomock.Any(), valid).Return(nil),
					b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(&valid, nil),
				)
			},
		},
		{
			name:    "異常系: 名前が空のプロフィールは送信前に拒否する",
			profile: domain.UserProfile{Email: "ana@example.com", Role: domain.UserRoleUser},
			setup: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, nil)
			},
			wantErr: domain.ErrInvalidProfile,
		},
		{
			name:    "異常系: バックエンドが失敗した場合はエラーを返す",
			profile: valid,
			setup: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().GetCallerUserProfile(gomock.Any()).Return(nil, nil)
				b.EXPECT().SaveCallerUserProfile(gomock.Any(), valid).Return(errBackend).Times(1)
			},
			wantErr: errBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctrl := gomock.NewController(t)
			b := mock_usecase.NewMockRemoteBinding(ctrl)
			tt.setup(b)

			s := newLoggedInSession(t, "alice-principal", b)
			uc := usecase.NewProfileUseCase(s)
			uc.CallerProfile(ctx)

			err := uc.SaveCallerProfile(ctx, tt.profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				if r := uc.CallerProfile(ctx); r.Data != nil {
					t.Errorf("profile = %+v after failed save, want nil", r.Data)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r := uc.CallerProfile(ctx)
			if r.Data == nil || r.Data.Name != "Ana" {
				t.Errorf("profile after save = %+v, want Ana", r.Data)
			}
		})
	}
}

func TestProfileUseCase_AssignRole(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	bob := mustPrincipal(t, "bob-principal")

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	gomock.InOrder(
		b.EXPECT().IsCallerAdmin(gomock.Any()).Return(false, nil),
		b.EXPECT().AssignCallerUserRole(gomock.Any(), bob, domain.UserRoleAdmin).Return(nil),
		b.EXPECT().IsCallerAdmin(gomock.Any()).Return(true, nil),
	)
	b.EXPECT().GetCallerUserRole(gomock.Any()).Return(domain.UserRoleUser, nil).Times(1)

	s := newLoggedInSession(t, "alice-principal", b)
	uc := usecase.NewProfileUseCase(s)

	if r := uc.IsCallerAdmin(ctx); r.Data {
		t.Fatal("IsCallerAdmin() = true before assignment")
	}
	if r := uc.CallerRole(ctx); r.Data != domain.UserRoleUser {
		t.Fatalf("CallerRole() = %v, want user", r.Data)
	}

	if err := uc.AssignRole(ctx, usecase.RoleAssignment{User: bob}); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Errorf("AssignRole() without role error = %v, want %v", err, usecase.ErrInvalidInput)
	}
	if err := uc.AssignRole(ctx, usecase.RoleAssignment{User: bob, Role: domain.UserRoleAdmin}); err != nil {
		t.Fatalf("AssignRole() error = %v", err)
	}

	if r := uc.IsCallerAdmin(ctx); !r.Data {
		t.Error("IsCallerAdmin() = false after assignment")
	}
	want := map[string]bool{
		`["callerUserRole"]`: true,
		`["isCallerAdmin"]`:  false,
	}
	if diff := cmp.Diff(want, invalidatedFlags(s.Client())); diff != "" {
		t.Errorf("invalidated flags mismatch (-want +got):\n%s", diff)
	}
}
