package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
)

const (
	DefaultTimeout = 10 * time.Second
	// maxResponseSize はレスポンス本文の読み取り上限です
	maxResponseSize = 8 << 20
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Factory はログイン中の利用者のトークンでバックエンドクライアントを作ります
type Factory struct {
	httpClient *http.Client
	baseURL    string
}

var _ usecase.BindingFactory = (*Factory)(nil)

func NewFactory(cfg Config, httpClient *http.Client) (*Factory, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Factory{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

func (f *Factory) Bind(user *domain.UserInfo) (usecase.RemoteBinding, error) {
	if user == nil || user.Token() == "" {
		return nil, ErrMissingToken
	}
	return &Client{
		httpClient: f.httpClient,
		baseURL:    f.baseURL,
		token:      user.Token(),
	}, nil
}

// Client はバックエンドのRPCをHTTP経由で呼び出します
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// call は POST {base}/rpc/{method} に引数を送り、結果を out にデコードします
func (c *Client) call(ctx context.Context, method string, args, out any) error {
	if args == nil {
		args = struct{}{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("リクエストのエンコードに失敗しました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rpc/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("レスポンスの読み取りに失敗しました: %w", err)
	}

	var decoded rpcResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil && resp.StatusCode == http.StatusOK {
			return fmt.Errorf("%w: %s: %w", ErrDecodeResponse, method, err)
		}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("backend %s: %w", method, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK || decoded.Error != "":
		return &RemoteError{Method: method, StatusCode: resp.StatusCode, Message: decoded.Error}
	}

	// 結果がnullの場合 out はそのまま残る
	if out == nil || len(decoded.Result) == 0 || string(decoded.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(decoded.Result, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeResponse, method, err)
	}
	return nil
}

// callList は空の結果を空のスライスとして扱います
func callList[T any](ctx context.Context, c *Client, method string, args any) ([]T, error) {
	var out []T
	if err := c.call(ctx, method, args, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
