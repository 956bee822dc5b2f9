package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jinford/founder-scout/internal/core/evaluation"
	"github.com/jinford/founder-scout/internal/core/extraction"
	"github.com/jinford/founder-scout/internal/infra/storage"
	"github.com/urfave/cli/v3"
)

// FindRunAction は企業リストを処理して創業者を抽出するコマンドのアクション
func FindRunAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	inputFile := cmd.String("input")
	skipEval := cmd.Bool("skip-eval")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}

	// 企業リストの読み込み（ここでの失敗だけが実行全体を中断する）
	file, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("企業リストの読み込みに失敗: %w", err)
	}
	defer file.Close()

	entries, malformed, err := extraction.ParseRoster(file, appCtx.Logger)
	if err != nil {
		return fmt.Errorf("企業リストのパースに失敗: %w", err)
	}
	if malformed > 0 {
		appCtx.Logger.Warn("malformed lines skipped", "count", malformed)
	}

	// パイプラインの実行
	service := extraction.NewService(
		appCtx.Searcher,
		appCtx.LLM,
		appCtx.Store,
		extraction.WithLogger(appCtx.Logger),
	)
	founders, summary := service.Run(ctx, entries)

	// 集約結果の書き出し（失敗しても評価とサマリー表示は続行する）
	if err := appCtx.Store.WriteFounders(founders); err != nil {
		appCtx.Logger.Error("failed to write founders file", "error", err)
	} else {
		fmt.Printf("✓ 抽出結果を %s に書き出しました\n", appCtx.Config.FoundersFile)
	}

	fmt.Printf("処理: %d社 / 記録: %d / スキップ: %d / 失敗: %d\n",
		summary.Processed, summary.Recorded, summary.Skipped, summary.Failed)

	// 精度評価（正解データが読めない場合は評価だけをスキップ）
	if skipEval {
		return nil
	}
	truth, err := storage.LoadGroundTruth(appCtx.Config.GroundTruthFile)
	if err != nil {
		appCtx.Logger.Info("accuracy evaluation disabled",
			"path", appCtx.Config.GroundTruthFile,
			"reason", err,
		)
		return nil
	}

	records := evaluation.Evaluate(founders, truth)
	evaluation.RenderReport(os.Stdout, records)

	return nil
}
