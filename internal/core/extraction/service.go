package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Searcher はWeb検索境界のインターフェース
// 検索レスポンスのJSONバイト列をそのまま返す
type Searcher interface {
	Search(ctx context.Context, query string) ([]byte, error)
}

// LLMClient はLLM推論境界のインターフェース
type LLMClient interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

// ArtifactStore は検索レスポンスの保存境界のインターフェース
// 保存先のパスを返す（再実行時の調査用アーティファクト）
type ArtifactStore interface {
	SaveSearchArtifact(company string, data []byte) (string, error)
}

// Service は企業ごとの創業者抽出パイプラインを実行する
// 検索 → 保存 → スニペット抽出 → 推論 → パース → 記録、を企業単位で
// 完結させ、1社の失敗が他の企業に波及しないよう隔離する
type Service struct {
	searcher  Searcher
	llm       LLMClient
	artifacts ArtifactStore
	logger    *slog.Logger
}

// ServiceOption は Service のオプション設定
type ServiceOption func(*Service)

// WithLogger は Service にロガーを設定する
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService は新しいServiceを作成する
func NewService(searcher Searcher, llm LLMClient, artifacts ArtifactStore, opts ...ServiceOption) *Service {
	svc := &Service{
		searcher:  searcher,
		llm:       llm,
		artifacts: artifacts,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Run は全企業を入力順に逐次処理し、成功した企業の創業者マップと集計を返す
// 失敗・スキップした企業はマップに含まれない（空リストでも登録しない）
func (s *Service) Run(ctx context.Context, entries []CompanyEntry) (FounderMap, RunSummary) {
	store := NewResultStore()
	summary := RunSummary{}

	for _, entry := range entries {
		summary.Processed++

		result := s.processCompany(ctx, entry)
		switch result.Status {
		case StatusRecorded:
			store.Record(result.Company, result.Founders)
			summary.Recorded++
			s.logger.Info("founders recorded",
				"company", result.Company,
				"founders", len(result.Founders),
			)
		case StatusSkipped:
			summary.Skipped++
			s.logger.Info("company skipped: no evidence",
				"company", result.Company,
			)
		case StatusFailed:
			summary.Failed++
			s.logger.Error("company failed",
				"company", result.Company,
				"error", result.Err,
			)
		}
	}

	return store.Snapshot(), summary
}

// processCompany は1社分のパイプラインを実行する
// エラーは戻り値のCompanyResultに畳み込み、呼び出し側へは伝播させない
func (s *Service) processCompany(ctx context.Context, entry CompanyEntry) CompanyResult {
	query := BuildSearchQuery(entry)

	raw, err := s.searcher.Search(ctx, query)
	if err != nil {
		return CompanyResult{
			Company: entry.Name,
			Status:  StatusFailed,
			Err:     NewPipelineError("search", entry.Name, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)),
		}
	}

	// アーティファクトの保存失敗は調査性を損なうだけなので処理は続行する
	if path, err := s.artifacts.SaveSearchArtifact(entry.Name, raw); err != nil {
		s.logger.Warn("failed to persist search artifact",
			"company", entry.Name,
			"error", err,
		)
	} else {
		s.logger.Debug("search artifact persisted",
			"company", entry.Name,
			"path", path,
		)
	}

	snippets, err := ExtractSnippets(raw)
	if err != nil {
		// 結果リストが無いのは「証拠なし」と同義で、スキップ扱いにする
		if errors.Is(err, ErrMissingResults) {
			return CompanyResult{Company: entry.Name, Status: StatusSkipped}
		}
		return CompanyResult{
			Company: entry.Name,
			Status:  StatusFailed,
			Err:     NewPipelineError("extract", entry.Name, err),
		}
	}

	if snippets == "" {
		return CompanyResult{Company: entry.Name, Status: StatusSkipped}
	}

	prompt := BuildFounderPrompt(entry, snippets)
	answer, err := s.llm.GenerateCompletion(ctx, prompt)
	if err != nil {
		return CompanyResult{
			Company: entry.Name,
			Status:  StatusFailed,
			Err:     NewPipelineError("infer", entry.Name, err),
		}
	}

	founders := ParseFounderList(answer)
	if len(founders) == 0 {
		return CompanyResult{
			Company: entry.Name,
			Status:  StatusFailed,
			Err:     NewPipelineError("parse", entry.Name, ErrEmptyInference),
		}
	}

	return CompanyResult{
		Company:  entry.Name,
		Status:   StatusRecorded,
		Founders: founders,
	}
}
