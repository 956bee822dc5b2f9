package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// 検索API設定
	Search SearchConfig

	// 推論用LLM設定
	LLM LLMConfig

	// 検索レスポンスの保存先ディレクトリ
	InfoDir string

	// 集約結果の出力ファイル
	FoundersFile string

	// 正解データファイル（存在しない場合は精度評価をスキップ）
	GroundTruthFile string
}

// SearchConfig はWeb検索API設定
type SearchConfig struct {
	APIKey  string
	BaseURL string
	Engine  string
	Timeout time.Duration
}

// LLMConfig は推論用LLM設定
type LLMConfig struct {
	APIKey  string
	BaseURL string // ローカルランタイム（Ollama等）のOpenAI互換エンドポイント
	Model   string
	Timeout time.Duration
}

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		Search: SearchConfig{
			APIKey:  getEnv("SERPAPI_API_KEY", ""),
			BaseURL: getEnv("SERPAPI_BASE_URL", "https://serpapi.com/search"),
			Engine:  getEnv("SERPAPI_ENGINE", "google"),
			Timeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		LLM: LLMConfig{
			APIKey:  getEnv("LLM_API_KEY", "ollama"),
			BaseURL: getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
			Model:   getEnv("LLM_MODEL", "gemma3:4b"),
			Timeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		InfoDir:         getEnv("INFO_DIR", "info"),
		FoundersFile:    getEnv("FOUNDERS_FILE", "founders.json"),
		GroundTruthFile: getEnv("GROUND_TRUTH_FILE", "correct_founders.json"),
	}

	return cfg, nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得します
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
