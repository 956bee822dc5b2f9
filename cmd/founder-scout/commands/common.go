package commands

import (
	"fmt"
	"log/slog"

	"github.com/jinford/founder-scout/internal/infra/openai"
	"github.com/jinford/founder-scout/internal/infra/serpapi"
	"github.com/jinford/founder-scout/internal/infra/storage"
	"github.com/jinford/founder-scout/internal/platform/config"
	"github.com/jinford/founder-scout/internal/platform/logger"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
type AppContext struct {
	Config   *config.Config
	Logger   *slog.Logger
	Searcher *serpapi.Client
	LLM      *openai.Client
	Store    *storage.Store
}

// NewAppContext は設定ファイルを読み込み、各境界のクライアントを組み立てて
// AppContext を作成する
func NewAppContext(envFile string) (*AppContext, error) {
	// 設定の読み込み
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	// ロガーの初期化
	appLogger := logger.New(logger.DefaultConfig())

	// 検索クライアントの初期化
	searcher, err := serpapi.NewClient(
		cfg.Search.APIKey,
		serpapi.WithBaseURL(cfg.Search.BaseURL),
		serpapi.WithEngine(cfg.Search.Engine),
		serpapi.WithTimeout(cfg.Search.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("検索クライアントの初期化に失敗: %w", err)
	}

	// LLMクライアントの初期化
	llm := openai.NewClient(
		cfg.LLM.APIKey,
		openai.WithBaseURL(cfg.LLM.BaseURL),
		openai.WithModel(cfg.LLM.Model),
		openai.WithTimeout(cfg.LLM.Timeout),
		openai.WithClientLogger(appLogger),
	)

	return &AppContext{
		Config:   cfg,
		Logger:   appLogger,
		Searcher: searcher,
		LLM:      llm,
		Store:    storage.NewStore(cfg.InfoDir, cfg.FoundersFile),
	}, nil
}
