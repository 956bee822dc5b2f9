package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	// DefaultModel はデフォルトで使用するモデル
	DefaultModel = "gemma3:4b"

	// DefaultTimeout はAPI呼び出しのデフォルトタイムアウト
	DefaultTimeout = 60 * time.Second
)

// Client はOpenAI互換APIを使用したLLMクライアント実装
// ベースURLを差し替えることでローカルランタイム（Ollama等）も利用できる
type Client struct {
	client  openai.Client
	model   string
	timeout time.Duration
	tokens  *TokenCounter
	logger  *slog.Logger
}

// ClientOption は Client のオプション設定
type ClientOption func(*clientOptions)

type clientOptions struct {
	model   string
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// WithModel はモデル名を上書きする
func WithModel(model string) ClientOption {
	return func(o *clientOptions) {
		o.model = model
	}
}

// WithBaseURL はOpenAI互換エンドポイントを上書きする
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout はAPIコールのタイムアウトを設定する
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithClientLogger は Client にロガーを設定する
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient は新しい Client を作成する
// ローカルランタイムはAPIキーを検証しないため、キーが空でもエラーにしない
func NewClient(apiKey string, opts ...ClientOption) *Client {
	options := clientOptions{
		model:   DefaultModel,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if options.baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(options.baseURL))
	}

	client := &Client{
		client:  openai.NewClient(requestOpts...),
		model:   options.model,
		timeout: options.timeout,
		logger:  options.logger,
	}

	// トークンカウンタはログ用の付加情報なので、初期化失敗は致命的にしない
	tokens, err := NewTokenCounter()
	if err != nil {
		client.logger.Warn("token counter unavailable", "error", err)
	} else {
		client.tokens = tokens
	}

	return client
}

// ModelName はモデル名を返す
func (c *Client) ModelName() string {
	return c.model
}

// GenerateCompletion はプロンプトからテキストを生成する
// リトライはしない：1回の失敗はその企業のスキップとして扱われる
func (c *Client) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("LLM API call failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	content := completion.Choices[0].Message.Content

	if c.tokens != nil {
		usage := c.tokens.CountPromptAndResponse(prompt, content)
		c.logger.Debug("completion generated",
			"model", c.model,
			"promptTokens", usage.PromptTokens,
			"responseTokens", usage.ResponseTokens,
		)
	}

	return content, nil
}
