package extraction

// CompanyEntry は入力リストの1行から得られる企業エントリ
type CompanyEntry struct {
	// Name は企業名
	Name string

	// ReferenceURL は参照URL（創業者情報の確認先）
	ReferenceURL string
}

// FounderMap は企業名から創業者名リストへのマッピング
// パイプラインが失敗した企業はキー自体が存在しません（空リストでは登録しない）
type FounderMap map[string][]string

// Status は企業ごとの処理結果の種別
type Status int

const (
	// StatusRecorded は創業者リストが記録されたことを表す
	StatusRecorded Status = iota + 1

	// StatusSkipped は証拠となるスニペットが無く記録を見送ったことを表す
	StatusSkipped

	// StatusFailed は処理中のエラーにより記録できなかったことを表す
	StatusFailed
)

// String はStatusの文字列表現を返す
func (s Status) String() string {
	switch s {
	case StatusRecorded:
		return "recorded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CompanyResult は1社分のパイプライン実行結果
type CompanyResult struct {
	Company  string
	Status   Status
	Founders []string
	Err      error
}

// RunSummary はバッチ実行全体の集計
type RunSummary struct {
	Processed int
	Recorded  int
	Skipped   int
	Failed    int
}
