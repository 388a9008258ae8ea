package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type QuoteUseCase struct {
	session *Session
}

func NewQuoteUseCase(s *Session) *QuoteUseCase {
	return &QuoteUseCase{session: s}
}

func (uc *QuoteUseCase) QuoteRequests(ctx context.Context) query.Result[[]domain.QuoteRequest] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryQuoteRequests), func(ctx context.Context, b RemoteBinding) ([]domain.QuoteRequest, error) {
		return b.GetQuoteRequestsForUser(ctx)
	}))
}

type QuoteInput struct {
	To      domain.Principal
	Message string
}

func (uc *QuoteUseCase) SendQuoteRequest(ctx context.Context, in QuoteInput) (domain.ID, error) {
	if in.To.IsZero() || strings.TrimSpace(in.Message) == "" {
		return 0, fmt.Errorf("%w: recipient and message are required", ErrInvalidInput)
	}
	return mutate(ctx, uc.session, OperationSendQuoteRequest, in, func(ctx context.Context, b RemoteBinding, in QuoteInput) (domain.ID, error) {
		return b.SendQuoteRequest(ctx, in.To, in.Message)
	})
}
