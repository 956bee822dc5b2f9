package extraction

import "strings"

// ParseFounderList はLLMの自由記述回答をカンマ区切りの創業者名リストとしてパースする
// 各要素は前後の空白を除去し、空になった要素は捨てる
// 回答の形式は信用しない（余分な空白・末尾カンマを許容し、重複はそのまま残す）
func ParseFounderList(answer string) []string {
	var founders []string
	for _, segment := range strings.Split(answer, ",") {
		name := strings.TrimSpace(segment)
		if name == "" {
			continue
		}
		founders = append(founders, name)
	}
	return founders
}
