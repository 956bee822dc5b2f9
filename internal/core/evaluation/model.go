package evaluation

// GroundTruth は企業名から期待される創業者名リストへのマッピング
// 事前に人手で作成された正解データで、このパイプラインからは読み取り専用
type GroundTruth map[string][]string

// Record は1社分の精度評価結果
type Record struct {
	// Company は企業名
	Company string `json:"company"`

	// AllCorrect は期待される創業者が全員抽出されたか（expected ⊆ found）
	AllCorrect bool `json:"all_correct"`

	// AtLeastOneCorrect は期待される創業者が1人以上抽出されたか
	AtLeastOneCorrect bool `json:"at_least_one_correct"`

	// NoIncorrect は抽出結果に誤りが無いか（found ⊆ expected）
	// 抽出結果が空の場合も真になる（空集合は任意の集合の部分集合）
	NoIncorrect bool `json:"no_incorrect"`

	// Found は抽出された創業者名（順序・重複は抽出時のまま）
	Found []string `json:"found"`

	// Expected は正解データの創業者名
	Expected []string `json:"expected"`
}

// Summary は評価全体の集計
type Summary struct {
	Total            int     `json:"total"`
	AllCorrectPct    float64 `json:"all_correct_pct"`
	AtLeastOnePct    float64 `json:"at_least_one_correct_pct"`
	NoIncorrectPct   float64 `json:"no_incorrect_pct"`
	AllCorrectCount  int     `json:"all_correct_count"`
	AtLeastOneCount  int     `json:"at_least_one_correct_count"`
	NoIncorrectCount int     `json:"no_incorrect_count"`
}
