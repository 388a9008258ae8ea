package usecase

import (
	"context"
	"slices"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type FavoriteUseCase struct {
	session *Session
}

func NewFavoriteUseCase(s *Session) *FavoriteUseCase {
	return &FavoriteUseCase{session: s}
}

func (uc *FavoriteUseCase) Favorites(ctx context.Context) query.Result[[]domain.ID] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryFavorites), func(ctx context.Context, b RemoteBinding) ([]domain.ID, error) {
		return b.GetFavorites(ctx)
	}))
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, itemID domain.ID) bool {
	r := uc.Favorites(ctx)
	return r.HasData && slices.Contains(r.Data, itemID)
}

func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, itemID domain.ID) error {
	_, err := mutate(ctx, uc.session, OperationAddFavorite, itemID, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.AddFavorite(ctx, id)
	})
	return err
}

func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, itemID domain.ID) error {
	_, err := mutate(ctx, uc.session, OperationRemoveFavorite, itemID, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.RemoveFavorite(ctx, id)
	})
	return err
}
