package usecase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func TestFavoriteUseCase_AddInvalidatesOnlyFavorites(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	alice := mustPrincipal(t, "alice-principal")

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	gomock.InOrder(
		b.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{}, nil),
		b.EXPECT().AddFavorite(gomock.Any(), domain.ID(9)).Return(nil),
		b.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{9}, nil),
	)
	b.EXPECT().GetUserTickets(gomock.Any(), alice).Return([]domain.Ticket{}, nil)
	b.EXPECT().GetAnnouncements(gomock.Any()).Return([]domain.Announcement{}, nil)

	s := newLoggedInSession(t, "alice-principal", b)
	uc := usecase.NewFavoriteUseCase(s)

	if uc.IsFavorite(ctx, 9) {
		t.Fatal("IsFavorite(9) = true before adding")
	}
	usecase.NewTicketUseCase(s).UserTickets(ctx)
	usecase.NewAnnouncementUseCase(s).Announcements(ctx)

	if err := uc.AddFavorite(ctx, 9); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	want := map[string]bool{
		`["announcements"]`:                 false,
		`["favorites"]`:                     true,
		`["userTickets","alice-principal"]`: false,
	}
	if diff := cmp.Diff(want, invalidatedFlags(s.Client())); diff != "" {
		t.Errorf("invalidated flags mismatch (-want +got):\n%s", diff)
	}

	if !uc.IsFavorite(ctx, 9) {
		t.Error("IsFavorite(9) = false after adding")
	}
}

func TestFavoriteUseCase_RemoveFailureKeepsFavorites(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetFavorites(gomock.Any()).Return([]domain.ID{4}, nil).Times(1)
	b.EXPECT().RemoveFavorite(gomock.Any(), domain.ID(4)).Return(errBackend).Times(1)

	s := newLoggedInSession(t, "alice-principal", b)
	uc := usecase.NewFavoriteUseCase(s)
	uc.Favorites(ctx)

	if err := uc.RemoveFavorite(ctx, 4); err == nil {
		t.Fatal("RemoveFavorite() error = nil")
	}
	if !uc.IsFavorite(ctx, 4) {
		t.Error("favorite lost after failed removal")
	}
}
