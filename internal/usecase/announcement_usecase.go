package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type AnnouncementUseCase struct {
	session *Session
}

func NewAnnouncementUseCase(s *Session) *AnnouncementUseCase {
	return &AnnouncementUseCase{session: s}
}

func (uc *AnnouncementUseCase) Announcements(ctx context.Context) query.Result[[]domain.Announcement] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryAnnouncements), func(ctx context.Context, b RemoteBinding) ([]domain.Announcement, error) {
		return b.GetAnnouncements(ctx)
	}))
}

type AnnouncementInput struct {
	Title    string
	Message  string
	Priority domain.AnnouncementPriority
}

func (uc *AnnouncementUseCase) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (domain.ID, error) {
	if strings.TrimSpace(in.Title) == "" || in.Priority.IsZero() {
		return 0, fmt.Errorf("%w: title and priority are required", ErrInvalidInput)
	}
	return mutate(ctx, uc.session, OperationCreateAnnouncement, in, func(ctx context.Context, b RemoteBinding, in AnnouncementInput) (domain.ID, error) {
		return b.CreateAnnouncement(ctx, in.Title, in.Message, in.Priority)
	})
}

func (uc *AnnouncementUseCase) DeleteAnnouncement(ctx context.Context, id domain.ID) error {
	_, err := mutate(ctx, uc.session, OperationDeleteAnnouncement, id, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.DeleteAnnouncement(ctx, id)
	})
	return err
}
