package serpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL はSerpAPIのデフォルトエンドポイント
	DefaultBaseURL = "https://serpapi.com/search"

	// DefaultEngine はデフォルトで使用する検索エンジン
	DefaultEngine = "google"

	// DefaultTimeout はAPI呼び出しのデフォルトタイムアウト
	DefaultTimeout = 60 * time.Second
)

var (
	// ErrAPIKeyNotSet はAPIキーが設定されていない場合のエラー
	ErrAPIKeyNotSet = errors.New("SerpAPI key not set: please set SERPAPI_API_KEY environment variable")
)

// Client はSerpAPIを使用したWeb検索クライアント
// レスポンスのJSONバイト列をそのまま返し、解釈は呼び出し側に任せる
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engine     string
}

// Option は Client のオプション設定
type Option func(*Client)

// WithBaseURL はエンドポイントを上書きする（テスト・プロキシ用）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithEngine は検索エンジンを上書きする
func WithEngine(engine string) Option {
	return func(c *Client) {
		c.engine = engine
	}
}

// WithTimeout はAPIコールのタイムアウトを設定する
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient は新しい Client を作成する
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyNotSet
	}

	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		engine:     DefaultEngine,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Search はクエリ文字列でWeb検索を実行し、レスポンスボディをそのまま返す
func (c *Client) Search(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", c.engine)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	return body, nil
}
