package usecase_test

import (
	"errors"
	"testing"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_SendQuoteRequest(t *testing.T) {
	ctx := newTestContext(t)
	ctrl := gomock.NewController(t)
	alice := mustPrincipal(t, "alice-principal")
	bob := mustPrincipal(t, "bob-principal")

	b := mock_usecase.NewMockRemoteBinding(ctrl)
	gomock.InOrder(
		b.EXPECT().GetQuoteRequestsForUser(gomock.Any()).Return([]domain.QuoteRequest{}, nil),
		b.EXPECT().SendQuoteRequest(gomock.Any(), bob, "Orçamento para palco").Return(domain.ID(31), nil),
		b.EXPECT().GetQuoteRequestsForUser(gomock.Any()).Return([]domain.QuoteRequest{{ID: 31, From: alice, To: bob, Message: "Orçamento para palco"}}, nil),
	)

	s := newLoggedInSession(t, "alice-principal", b)
	uc := usecase.NewQuoteUseCase(s)
	uc.QuoteRequests(ctx)

	if _, err := uc.SendQuoteRequest(ctx, usecase.QuoteInput{To: bob}); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("SendQuoteRequest() without message error = %v, want %v", err, usecase.ErrInvalidInput)
	}

	id, err := uc.SendQuoteRequest(ctx, usecase.QuoteInput{To: bob, Message: "Orçamento para palco"})
	if err != nil {
		t.Fatalf("SendQuoteRequest() error = %v", err)
	}
	if id != 31 {
		t.Errorf("SendQuoteRequest() = %d, want 31", id)
	}
	if r := uc.QuoteRequests(ctx); len(r.Data) != 1 {
		t.Errorf("QuoteRequests() = %v, want 1 item", r.Data)
	}
}
