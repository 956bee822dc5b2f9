package evaluation

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderReport は評価レコードをテーブル形式で書き出し、末尾に集計を付ける
// レコードが空の場合はテーブルの代わりに「データなし」の1行を出力する
func RenderReport(w io.Writer, records []Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "評価対象のデータがありません")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("企業名", "All Correct", "≥1 Correct", "No Incorrect")

	for _, record := range records {
		table.Append(
			record.Company,
			yesNo(record.AllCorrect),
			yesNo(record.AtLeastOneCorrect),
			yesNo(record.NoIncorrect),
		)
	}

	table.Render()

	summary := Summarize(records)
	fmt.Fprintf(w, "\n対象企業数: %d\n", summary.Total)
	fmt.Fprintf(w, "All Correct:  %.1f%% (%d/%d)\n", summary.AllCorrectPct, summary.AllCorrectCount, summary.Total)
	fmt.Fprintf(w, "≥1 Correct:   %.1f%% (%d/%d)\n", summary.AtLeastOnePct, summary.AtLeastOneCount, summary.Total)
	fmt.Fprintf(w, "No Incorrect: %.1f%% (%d/%d)\n", summary.NoIncorrectPct, summary.NoIncorrectCount, summary.Total)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
