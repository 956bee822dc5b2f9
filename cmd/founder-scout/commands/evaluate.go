package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jinford/founder-scout/internal/core/evaluation"
	"github.com/jinford/founder-scout/internal/infra/storage"
	"github.com/jinford/founder-scout/internal/platform/config"
	"github.com/jinford/founder-scout/internal/platform/logger"
	"github.com/urfave/cli/v3"
)

// EvaluateAction は保存済みの抽出結果を正解データと比較するコマンドのアクション
// 検索・LLMクライアントは不要なので、設定とロガーだけを初期化する
func EvaluateAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	foundersFile := cmd.String("founders")
	truthFile := cmd.String("truth")
	exportFile := cmd.String("export")

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗: %w", err)
	}
	logger.New(logger.DefaultConfig())

	if foundersFile == "" {
		foundersFile = cfg.FoundersFile
	}
	if truthFile == "" {
		truthFile = cfg.GroundTruthFile
	}

	founders, err := storage.LoadFounders(foundersFile)
	if err != nil {
		return fmt.Errorf("抽出結果の読み込みに失敗: %w", err)
	}

	truth, err := storage.LoadGroundTruth(truthFile)
	if err != nil {
		return fmt.Errorf("正解データの読み込みに失敗: %w", err)
	}

	records := evaluation.Evaluate(founders, truth)

	// JSON形式でエクスポート
	if exportFile != "" {
		return exportRecordsToJSON(records, exportFile)
	}

	evaluation.RenderReport(os.Stdout, records)

	return nil
}

// exportRecordsToJSON は評価レコードをJSON形式でエクスポートします
func exportRecordsToJSON(records []evaluation.Record, filename string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("JSONエンコードに失敗: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("ファイル書き込みに失敗: %w", err)
	}

	fmt.Printf("✓ 評価レコードを %s にエクスポートしました\n", filename)
	return nil
}
