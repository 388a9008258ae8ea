package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type ContestUseCase struct {
	session *Session
}

func NewContestUseCase(s *Session) *ContestUseCase {
	return &ContestUseCase{session: s}
}

// contestEntriesQuery は常に古い扱いで、監視中はポーリングで更新されます
func (uc *ContestUseCase) contestEntriesQuery() query.Query[[]domain.ContestEntry] {
	q := bindingQuery(uc.session, query.NewKey(QueryContestEntries), func(ctx context.Context, b RemoteBinding) ([]domain.ContestEntry, error) {
		return b.GetContestEntries(ctx)
	})
	q.StaleTime = query.AlwaysStale
	q.PollInterval = uc.session.contestPollInterval
	return q
}

func (uc *ContestUseCase) ContestEntries(ctx context.Context) query.Result[[]domain.ContestEntry] {
	return query.Fetch(ctx, uc.session.Client(), uc.contestEntriesQuery())
}

// WatchContestEntries は投稿一覧を監視します。同じセッション内の監視はタイマーを共有します
func (uc *ContestUseCase) WatchContestEntries(ctx context.Context) *query.Observer[[]domain.ContestEntry] {
	return query.Observe(ctx, uc.session.Client(), uc.contestEntriesQuery())
}

func (uc *ContestUseCase) Vote(ctx context.Context, entryID domain.ID) error {
	_, err := mutate(ctx, uc.session, OperationVoteContestEntry, entryID, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.VoteContestEntry(ctx, id)
	})
	return err
}

func (uc *ContestUseCase) CreateEntry(ctx context.Context, entry domain.ContestEntry) error {
	if entry.ImageURL == "" || entry.Artist.IsZero() {
		return fmt.Errorf("%w: image url and artist are required", ErrInvalidInput)
	}
	_, err := mutate(ctx, uc.session, OperationCreateContestEntry, entry, func(ctx context.Context, b RemoteBinding, e domain.ContestEntry) (struct{}, error) {
		return struct{}{}, b.CreateContestEntry(ctx, e)
	})
	return err
}
