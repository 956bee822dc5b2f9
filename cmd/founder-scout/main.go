package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinford/founder-scout/cmd/founder-scout/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "founder-scout",
		Usage: "Web検索とLLM推論による企業創業者の抽出・精度評価システム",
		Commands: []*cli.Command{
			{
				Name:  "find",
				Usage: "創業者抽出コマンド",
				Commands: []*cli.Command{
					{
						Name:  "run",
						Usage: "企業リストを処理して founders.json を生成",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:     "input",
								Usage:    "企業リストファイル（1行1社: <企業名> (<URL>)）",
								Required: true,
							},
							&cli.BoolFlag{
								Name:  "skip-eval",
								Usage: "正解データがあっても精度評価をスキップ",
							},
						},
						Action: commands.FindRunAction,
					},
				},
			},
			{
				Name:  "evaluate",
				Usage: "保存済みの抽出結果を正解データと比較してレポートを表示",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "環境変数ファイルパス",
						Value: ".env",
					},
					&cli.StringFlag{
						Name:  "founders",
						Usage: "抽出結果ファイルパス（省略時は設定値）",
					},
					&cli.StringFlag{
						Name:  "truth",
						Usage: "正解データファイルパス（省略時は設定値）",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "評価レコードをJSON形式でエクスポート（ファイルパス）",
					},
				},
				Action: commands.EvaluateAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
