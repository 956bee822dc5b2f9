package evaluation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	records := []Record{
		{Company: "Acme Corp", AllCorrect: true, AtLeastOneCorrect: true, NoIncorrect: true},
		{Company: "Broken Inc", AllCorrect: false, AtLeastOneCorrect: false, NoIncorrect: true},
	}

	var buf bytes.Buffer
	RenderReport(&buf, records)

	out := buf.String()
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Broken Inc")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
	assert.Contains(t, out, "対象企業数: 2")
	assert.Contains(t, out, "All Correct:  50.0% (1/2)")
	assert.Contains(t, out, "≥1 Correct:   50.0% (1/2)")
	assert.Contains(t, out, "No Incorrect: 100.0% (2/2)")
}

func TestRenderReport_NoData(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, nil)

	assert.Contains(t, buf.String(), "評価対象のデータがありません")
}
