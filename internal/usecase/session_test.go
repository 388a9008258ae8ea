package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func TestSession_LogoutDoesNotLeakToNextUser(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	alice := mustPrincipal(t, "alice-principal")
	bob := mustPrincipal(t, "bob-principal")

	aliceBinding := mock_usecase.NewMockRemoteBinding(ctrl)
	aliceBinding.EXPECT().GetBalance(gomock.Any(), alice).Return(int64(1500), nil).Times(1)
	aliceBinding.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{1, 2}, nil).Times(1)

	bobBinding := mock_usecase.NewMockRemoteBinding(ctrl)
	bobBinding.EXPECT().GetBalance(gomock.Any(), bob).Return(int64(20), nil).Times(1)
	bobBinding.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{}, nil).Times(1)

	s := newLoggedInSession(t, "alice-principal", aliceBinding)
	wallet := usecase.NewWalletUseCase(s)
	favorites := usecase.NewFavoriteUseCase(s)

	if r := wallet.Balance(ctx); r.Data != 1500 {
		t.Fatalf("alice balance = %d, want 1500", r.Data)
	}
	if r := favorites.Favorites(ctx); len(r.Data) != 2 {
		t.Fatalf("alice favorites = %v, want 2 items", r.Data)
	}

	s.Logout()

	if n := s.Client().Cache().Len(); n != 0 {
		t.Fatalf("cache has %d entries after logout, want 0", n)
	}
	if r := wallet.Balance(ctx); r.HasData || r.Status != query.StatusIdle {
		t.Errorf("balance after logout = %+v, want idle without data", r)
	}
	if r := favorites.Favorites(ctx); r.HasData {
		t.Errorf("favorites after logout = %v, want no data", r.Data)
	}

	if err := s.Login(newUserInfo(t, "bob-principal"), bobBinding); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if r := wallet.Balance(ctx); r.Data != 20 {
		t.Errorf("bob balance = %d, want 20", r.Data)
	}
	if r := favorites.Favorites(ctx); len(r.Data) != 0 {
		t.Errorf("bob favorites = %v, want empty", r.Data)
	}
}

func TestSession_SwitchPrincipalClearsCache(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetAnnouncements(gomock.Any()).Return([]domain.Announcement{{ID: 1, Title: "Abertura"}}, nil).Times(2)

	s := newLoggedInSession(t, "alice-principal", b)
	uc := usecase.NewAnnouncementUseCase(s)
	uc.Announcements(ctx)

	// 同じPrincipalでの再ログインではキャッシュを保持する
	if err := s.Login(newUserInfo(t, "alice-principal"), b); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if n := s.Client().Cache().Len(); n != 1 {
		t.Fatalf("cache has %d entries after re-login, want 1", n)
	}

	if err := s.Login(newUserInfo(t, "bob-principal"), b); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if n := s.Client().Cache().Len(); n != 0 {
		t.Fatalf("cache has %d entries after switching principal, want 0", n)
	}
	uc.Announcements(ctx)
}

func TestSession_IdentityScopedKeys(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	alice := mustPrincipal(t, "alice-principal")

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetTransactions(gomock.Any(), alice).Return([]domain.WalletTransaction{{ID: 1, User: alice, Amount: -300}}, nil)

	s := newLoggedInSession(t, "alice-principal", b)
	usecase.NewWalletUseCase(s).Transactions(ctx)

	if _, ok := s.Client().Cache().Get(ctx, usecase.TransactionsKey(alice)); !ok {
		t.Errorf("entry %s not found", usecase.TransactionsKey(alice))
	}
	if _, ok := s.Client().Cache().Get(ctx, query.NewKey(usecase.QueryTransactions)); ok {
		t.Error("transactions cached under an unscoped key")
	}
}

func TestSession_LogoutStopsMountedPolling(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)

	var calls atomic.Int32
	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetContestEntries(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.ContestEntry, error) {
		calls.Add(1)
		return []domain.ContestEntry{{ID: 1, Votes: 3}}, nil
	}).AnyTimes()

	s := newLoggedInSession(t, "alice-principal", b, usecase.WithContestPollInterval(10*time.Millisecond))
	o := usecase.NewContestUseCase(s).WatchContestEntries(ctx)
	t.Cleanup(o.Close)
	key := query.NewKey(usecase.QueryContestEntries)

	waitUntil(t, func() bool { return calls.Load() >= 3 })

	s.Logout()

	before := calls.Load()
	time.Sleep(80 * time.Millisecond)
	// ログアウト時点で呼び出し中だった1回までは許容する
	if after := calls.Load(); after > before+1 {
		t.Errorf("binding called after logout: %d -> %d", before, after)
	}
	if s.Client().Poller().Active(key) {
		t.Error("poll still active after logout")
	}
	if n := s.Client().Cache().Len(); n != 0 {
		t.Errorf("cache has %d entries after logout, want 0", n)
	}
	if r := o.Current(); r.HasData {
		t.Errorf("observer exposes %v after logout", r.Data)
	}
}

func TestSession_MountedObserverUsesCurrentBinding(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)

	aliceBinding := mock_usecase.NewMockRemoteBinding(ctrl)
	aliceBinding.EXPECT().GetContestEntries(gomock.Any()).Return([]domain.ContestEntry{{ID: 1, Votes: 1}}, nil).Times(1)

	var bobCalls atomic.Int32
	bobBinding := mock_usecase.NewMockRemoteBinding(ctrl)
	bobBinding.EXPECT().GetContestEntries(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.ContestEntry, error) {
		bobCalls.Add(1)
		return []domain.ContestEntry{{ID: 1, Votes: 2}}, nil
	}).AnyTimes()
	bobBinding.EXPECT().VoteContestEntry(gomock.Any(), domain.ID(1)).Return(nil).Times(1)

	s := newLoggedInSession(t, "alice-principal", aliceBinding, usecase.WithContestPollInterval(time.Hour))
	uc := usecase.NewContestUseCase(s)
	o := uc.WatchContestEntries(ctx)
	t.Cleanup(o.Close)

	waitResult(t, o, func(r query.Result[[]domain.ContestEntry]) bool {
		return r.Status == query.StatusSuccess
	})

	s.Logout()
	if err := s.Login(newUserInfo(t, "bob-principal"), bobBinding); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if r := uc.ContestEntries(ctx); r.Err != nil {
		t.Fatalf("ContestEntries() error = %v", r.Err)
	}
	if err := uc.Vote(ctx, 1); err != nil {
		t.Fatalf("Vote() error = %v", err)
	}

	// 無効化による再取得はbobの資格情報で行われる
	waitUntil(t, func() bool { return bobCalls.Load() >= 2 })
}

func TestSession_CloseEndsDone(t *testing.T) {
	s := newUnboundSession(t)

	select {
	case <-s.Done():
		t.Fatal("Done() closed before Close")
	default:
	}

	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done() not closed after Close")
	}
}
