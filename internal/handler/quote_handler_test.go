package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func TestPostQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().SendQuoteRequest(gomock.Any(), mustPrincipal(t, "bob"), "stage lights").Return(domain.ID(3), nil)
	sess := newSession(t, "alice", b)

	c, rec := newEchoContext(t, sess, http.MethodPost, "/v1/quotes", strings.NewReader(`{"to":"bob","message":"stage lights"}`))
	serve(c, handler.PostQuoteHandler)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if got := trimBody(rec); got != `{"id":3}` {
		t.Errorf("body = %s", got)
	}
}
