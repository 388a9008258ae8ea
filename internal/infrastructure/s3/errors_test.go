package s3

import (
	"errors"
	"testing"

	"github.com/aws/smithy-go"
)

func TestNewStorageError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  string
		wantMsg   string
		wantFault bool
	}{
		{
			name:      "正常系: APIエラーのコードを保持する",
			err:       &mockAPIError{code: "NoSuchBucket", fault: smithy.FaultClient},
			wantCode:  "NoSuchBucket",
			wantMsg:   "storage put error (NoSuchBucket): NoSuchBucket",
			wantFault: true,
		},
		{
			name:    "正常系: APIエラー以外はコードなし",
			err:     errors.New("connection reset"),
			wantMsg: "storage put error: connection reset",
		},
		{
			name:     "正常系: サーバー側の失敗はクライアント起因にならない",
			err:      &mockAPIError{code: "InternalError", fault: smithy.FaultServer},
			wantCode: "InternalError",
			wantMsg:  "storage put error (InternalError): InternalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newStorageError(OperationPut, tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("StorageError does not unwrap to the cause")
			}
			if IsClientFault(got) != tt.wantFault {
				t.Errorf("IsClientFault() = %v, want %v", IsClientFault(got), tt.wantFault)
			}
		})
	}
}
