package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler"
	"github.com/na2na-p/eventsync/internal/usecase/mock_usecase"
	"go.uber.org/mock/gomock"
)

func TestPostTransactionHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(b *mock_usecase.MockRemoteBinding)
		wantStatus int
		wantBody   string
	}{
		{
			name: "正常系: ログイン中の利用者の取引として記録する",
			body: `{"amount":-250,"description":"drinks"}`,
			setupMock: func(b *mock_usecase.MockRemoteBinding) {
				b.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), int64(-250), "drinks").Return(domain.ID(11), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":11}`,
		},
		{
			name:       "異常系: 壊れたJSONは400",
			body:       `{"amount":`,
			setupMock:  func(b *mock_usecase.MockRemoteBinding) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"リクエストボディが不正です"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := mock_usecase.NewMockRemoteBinding(ctrl)
			tt.setupMock(b)
			sess := newSession(t, "alice", b)

			c, rec := newEchoContext(t, sess, http.MethodPost, "/v1/wallet/transactions", strings.NewReader(tt.body))
			serve(c, handler.PostTransactionHandler)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if diff := cmp.Diff(tt.wantBody, trimBody(rec)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mock_usecase.NewMockRemoteBinding(ctrl)
	b.EXPECT().GetBalance(gomock.Any(), mustPrincipal(t, "alice")).Return(int64(1500), nil)
	sess := newSession(t, "alice", b)

	c, rec := newEchoContext(t, sess, http.MethodGet, "/v1/wallet/balance", nil)
	serve(c, handler.GetBalanceHandler)

	want := `{"data":1500,"status":"success","isStale":false,"updatedAt":"2025-03-01T12:00:00Z"}`
	if diff := cmp.Diff(want, trimBody(rec)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}
