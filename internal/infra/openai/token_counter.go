package openai

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter はトークン数をカウントする機能を提供する
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter は新しいTokenCounterを作成する
// cl100k_baseエンコーディングを使用する
func NewTokenCounter() (*TokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to get tiktoken encoding: %w", err)
	}

	return &TokenCounter{
		encoding: encoding,
	}, nil
}

// CountTokens はテキストのトークン数をカウントする
func (tc *TokenCounter) CountTokens(text string) int {
	if tc.encoding == nil {
		return 0
	}
	tokens := tc.encoding.Encode(text, nil, nil)
	return len(tokens)
}

// CountPromptAndResponse はプロンプトとレスポンスのトークン数を返す
func (tc *TokenCounter) CountPromptAndResponse(prompt, response string) TokenUsage {
	promptTokens := tc.CountTokens(prompt)
	responseTokens := tc.CountTokens(response)

	return TokenUsage{
		PromptTokens:   promptTokens,
		ResponseTokens: responseTokens,
		TotalTokens:    promptTokens + responseTokens,
	}
}

// TokenUsage はトークン使用量を表す
type TokenUsage struct {
	// PromptTokens はプロンプトで使用されたトークン数
	PromptTokens int

	// ResponseTokens はレスポンスで使用されたトークン数
	ResponseTokens int

	// TotalTokens は合計トークン数
	TotalTokens int
}
