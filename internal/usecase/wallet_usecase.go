package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type WalletUseCase struct {
	session *Session
}

func NewWalletUseCase(s *Session) *WalletUseCase {
	return &WalletUseCase{session: s}
}

func (uc *WalletUseCase) Balance(ctx context.Context) query.Result[int64] {
	return query.Fetch(ctx, uc.session.Client(), identityQuery(uc.session, QueryBalance, func(ctx context.Context, b RemoteBinding, p domain.Principal) (int64, error) {
		return b.GetBalance(ctx, p)
	}))
}

func (uc *WalletUseCase) Transactions(ctx context.Context) query.Result[[]domain.WalletTransaction] {
	return query.Fetch(ctx, uc.session.Client(), identityQuery(uc.session, QueryTransactions, func(ctx context.Context, b RemoteBinding, p domain.Principal) ([]domain.WalletTransaction, error) {
		return b.GetTransactions(ctx, p)
	}))
}

type TransactionInput struct {
	Amount      int64
	Description string
}

// RecordTransaction はログイン中の利用者の取引を記録します
func (uc *WalletUseCase) RecordTransaction(ctx context.Context, in TransactionInput) (domain.ID, error) {
	p, ok := uc.session.Principal()
	if !ok {
		return 0, ErrIdentityUnavailable
	}
	if in.Amount == 0 {
		return 0, fmt.Errorf("%w: amount must not be zero", ErrInvalidInput)
	}
	return mutate(ctx, uc.session, OperationRecordTransaction, in, func(ctx context.Context, b RemoteBinding, in TransactionInput) (domain.ID, error) {
		return b.RecordTransaction(ctx, p, in.Amount, in.Description)
	})
}

type BalanceUpdate struct {
	User   domain.Principal
	Amount int64
}

func (uc *WalletUseCase) UpdateBalance(ctx context.Context, in BalanceUpdate) error {
	if in.User.IsZero() {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	_, err := mutate(ctx, uc.session, OperationUpdateBalance, in, func(ctx context.Context, b RemoteBinding, in BalanceUpdate) (struct{}, error) {
		return struct{}{}, b.UpdateBalance(ctx, in.User, in.Amount)
	})
	return err
}
