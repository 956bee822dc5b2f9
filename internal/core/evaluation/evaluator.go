package evaluation

import (
	"sort"
	"strings"

	"github.com/jinford/founder-scout/internal/core/extraction"
)

// Evaluate は抽出結果を正解データと比較し、企業ごとの評価レコードを返す
// イテレーションは正解データ側のキーが駆動する：正解データにあって抽出
// 結果に無い企業もレコードに含める（found = 空集合として評価）
// Goのマップは順序を持たないため、レコードは企業名の昇順で返す
func Evaluate(found extraction.FounderMap, truth GroundTruth) []Record {
	companies := make([]string, 0, len(truth))
	for company := range truth {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	records := make([]Record, 0, len(companies))
	for _, company := range companies {
		expected := truth[company]
		foundList := found[company]

		expectedSet := toSet(expected)
		foundSet := toSet(foundList)

		records = append(records, Record{
			Company:           company,
			AllCorrect:        isSubset(expectedSet, foundSet),
			AtLeastOneCorrect: intersects(expectedSet, foundSet),
			NoIncorrect:       isSubset(foundSet, expectedSet),
			Found:             foundList,
			Expected:          expected,
		})
	}

	return records
}

// Summarize はレコード群から件数と割合を集計する
func Summarize(records []Record) Summary {
	summary := Summary{Total: len(records)}
	if summary.Total == 0 {
		return summary
	}

	for _, record := range records {
		if record.AllCorrect {
			summary.AllCorrectCount++
		}
		if record.AtLeastOneCorrect {
			summary.AtLeastOneCount++
		}
		if record.NoIncorrect {
			summary.NoIncorrectCount++
		}
	}

	total := float64(summary.Total)
	summary.AllCorrectPct = float64(summary.AllCorrectCount) / total * 100
	summary.AtLeastOnePct = float64(summary.AtLeastOneCount) / total * 100
	summary.NoIncorrectPct = float64(summary.NoIncorrectCount) / total * 100

	return summary
}

// toSet は名前リストを集合に変換する
// 比較は前後の空白を除去した完全一致（大文字小文字の正規化はしない）
func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		set[trimmed] = struct{}{}
	}
	return set
}

// isSubset は a ⊆ b を判定する
func isSubset(a, b map[string]struct{}) bool {
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

// intersects は a ∩ b が空でないかを判定する
func intersects(a, b map[string]struct{}) bool {
	for name := range a {
		if _, ok := b[name]; ok {
			return true
		}
	}
	return false
}
