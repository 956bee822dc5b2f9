package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinford/founder-scout/internal/core/evaluation"
	"github.com/jinford/founder-scout/internal/core/extraction"
)

// Store は検索アーティファクトと集約結果のファイル保存を担当する
type Store struct {
	infoDir      string
	foundersPath string
}

// NewStore は新しい Store を作成する
func NewStore(infoDir, foundersPath string) *Store {
	return &Store{
		infoDir:      infoDir,
		foundersPath: foundersPath,
	}
}

// SanitizeCompanyName は企業名をファイル名に使える形に変換する
// 英数字・空白・ハイフン・アンダースコアのみ残し、空白はハイフンに置換する
// この規則は再実行時にパスが再現できるよう固定されている
func SanitizeCompanyName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		case r == '-', r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SaveSearchArtifact は検索レスポンスを info/info-<企業名>.json に保存する
func (s *Store) SaveSearchArtifact(company string, data []byte) (string, error) {
	if err := os.MkdirAll(s.infoDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	path := filepath.Join(s.infoDir, fmt.Sprintf("info-%s.json", SanitizeCompanyName(company)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write search artifact: %w", err)
	}

	return path, nil
}

// WriteFounders は集約結果を founders.json に書き出す
func (s *Store) WriteFounders(founders extraction.FounderMap) error {
	data, err := json.MarshalIndent(founders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode founders: %w", err)
	}

	if err := os.WriteFile(s.foundersPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write founders file: %w", err)
	}

	return nil
}

// LoadFounders は保存済みの集約結果を読み込む
func LoadFounders(path string) (extraction.FounderMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read founders file: %w", err)
	}

	var founders extraction.FounderMap
	if err := json.Unmarshal(data, &founders); err != nil {
		return nil, fmt.Errorf("failed to decode founders file: %w", err)
	}

	return founders, nil
}

// LoadGroundTruth は正解データを読み込む
// 呼び出し側はエラー時に精度評価をスキップする（実行自体は失敗させない）
func LoadGroundTruth(path string) (evaluation.GroundTruth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth file: %w", err)
	}

	var truth evaluation.GroundTruth
	if err := json.Unmarshal(data, &truth); err != nil {
		return nil, fmt.Errorf("failed to decode ground truth file: %w", err)
	}

	return truth, nil
}
