package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type TicketUseCase struct {
	session *Session
}

func NewTicketUseCase(s *Session) *TicketUseCase {
	return &TicketUseCase{session: s}
}

func (uc *TicketUseCase) userTicketsQuery() query.Query[[]domain.Ticket] {
	return identityQuery(uc.session, QueryUserTickets, func(ctx context.Context, b RemoteBinding, p domain.Principal) ([]domain.Ticket, error) {
		return b.GetUserTickets(ctx, p)
	})
}

// UserTickets はログイン中の利用者が所有するチケットを返します
func (uc *TicketUseCase) UserTickets(ctx context.Context) query.Result[[]domain.Ticket] {
	return query.Fetch(ctx, uc.session.Client(), uc.userTicketsQuery())
}

// WatchUserTickets はチケット一覧を監視します。検証や払い戻しが成功すると再取得されます
func (uc *TicketUseCase) WatchUserTickets(ctx context.Context) *query.Observer[[]domain.Ticket] {
	return query.Observe(ctx, uc.session.Client(), uc.userTicketsQuery())
}

func (uc *TicketUseCase) Ticket(ctx context.Context, id domain.ID) query.Result[*domain.Ticket] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, TicketKey(id), func(ctx context.Context, b RemoteBinding) (*domain.Ticket, error) {
		return b.GetTicket(ctx, id)
	}))
}

// ticketKeys は検証や払い戻しの対象になったチケットのキーだけを返します。ほかのチケットは再取得しません
func ticketKeys(id domain.ID) []query.Key {
	return []query.Key{TicketKey(id)}
}

// ValidateTicket は入場時のチケット検証です。状態遷移の可否はバックエンドが判断します
func (uc *TicketUseCase) ValidateTicket(ctx context.Context, id domain.ID) (bool, error) {
	return mutateKeys(ctx, uc.session, OperationValidateTicket, id, ticketKeys, func(ctx context.Context, b RemoteBinding, id domain.ID) (bool, error) {
		return b.ValidateTicket(ctx, id)
	})
}

func (uc *TicketUseCase) RefundTicket(ctx context.Context, id domain.ID) error {
	_, err := mutateKeys(ctx, uc.session, OperationRefundTicket, id, ticketKeys, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.RefundTicket(ctx, id)
	})
	return err
}

func (uc *TicketUseCase) CreateTicket(ctx context.Context, ticket domain.Ticket) error {
	if ticket.Status.IsZero() || ticket.Owner.IsZero() {
		return fmt.Errorf("%w: ticket status and owner are required", ErrInvalidInput)
	}
	_, err := mutate(ctx, uc.session, OperationCreateTicket, ticket, func(ctx context.Context, b RemoteBinding, t domain.Ticket) (struct{}, error) {
		return struct{}{}, b.CreateTicket(ctx, t)
	})
	return err
}
