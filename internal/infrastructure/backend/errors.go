package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingToken   = errors.New("identity token is required")
	ErrInvalidBaseURL = errors.New("invalid backend base url")
	ErrDecodeResponse = errors.New("failed to decode backend response")
)

// RemoteError はバックエンドが呼び出しを拒否、または失敗した場合のエラーです
type RemoteError struct {
	Method     string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s failed: status=%d: %s", e.Method, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %s failed: status=%d", e.Method, e.StatusCode)
}

// Temporary は再試行で回復しうる失敗かどうかを返します
func (e *RemoteError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}
