package extraction

import (
	"fmt"
	"strings"
)

// BuildSearchQuery は検索APIに渡すクエリ文字列を構築する
func BuildSearchQuery(entry CompanyEntry) string {
	return fmt.Sprintf("founders of %s %s", entry.Name, entry.ReferenceURL)
}

// BuildFounderPrompt は創業者名の抽出を依頼するプロンプトを構築する
// カンマ区切り・姓名のみ・「Van」「De」等の前置詞は残し、Ph.D.等の敬称は
// 除く、という出力規約はこのプロンプトでLLM側に課す契約であり、
// パース側（ParseFounderList）では検証しない
func BuildFounderPrompt(entry CompanyEntry, snippets string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Write a comma-separated list of the founders of %s (%s). ", entry.Name, entry.ReferenceURL))
	sb.WriteString("Only include the first and last names of the founders, ")
	sb.WriteString("with particles like 'Van' or 'De' but without suffixes like Ph.D. ")
	sb.WriteString("and without additional context: ")
	sb.WriteString(snippets)

	return sb.String()
}
