package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// searchDocument は検索APIレスポンスのうち抽出に必要な部分
type searchDocument struct {
	OrganicResults []organicResult `json:"organic_results"`
}

// organicResult は検索結果1件分
// snippetフィールドは省略されることがある
type organicResult struct {
	Snippet string `json:"snippet"`
}

// ExtractSnippets は検索レスポンスからsnippetフィールドを抽出し、
// ドキュメント順に改行で連結して返す
// 結果リストが無い・空の場合は空文字列とErrMissingResultsを返す
// （呼び出し側は「証拠なし」として扱えるよう、回復可能なエラーとしている）
func ExtractSnippets(data []byte) (string, error) {
	var doc searchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if len(doc.OrganicResults) == 0 {
		return "", ErrMissingResults
	}

	var snippets []string
	for _, result := range doc.OrganicResults {
		if result.Snippet != "" {
			snippets = append(snippets, result.Snippet)
		}
	}

	return strings.Join(snippets, "\n"), nil
}

// ExtractSnippetsFromFile は保存済みの検索レスポンスファイルからスニペットを抽出する
func ExtractSnippetsFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return ExtractSnippets(data)
}
