package evaluation

import (
	"testing"

	"github.com/jinford/founder-scout/internal/core/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_PartialMatch(t *testing.T) {
	truth := GroundTruth{"A": {"X", "Y"}}
	found := extraction.FounderMap{"A": {"X"}}

	records := Evaluate(found, truth)
	require.Len(t, records, 1)

	assert.False(t, records[0].AllCorrect)
	assert.True(t, records[0].AtLeastOneCorrect)
	assert.True(t, records[0].NoIncorrect)
}

func TestEvaluate_CompanyAbsentFromFound(t *testing.T) {
	truth := GroundTruth{"B": {"X"}}
	found := extraction.FounderMap{}

	records := Evaluate(found, truth)
	require.Len(t, records, 1)

	// an absent company still gets a record: found is the empty set,
	// so NoIncorrect is vacuously true
	assert.Equal(t, "B", records[0].Company)
	assert.False(t, records[0].AllCorrect)
	assert.False(t, records[0].AtLeastOneCorrect)
	assert.True(t, records[0].NoIncorrect)
}

func TestEvaluate_ExtraFounderFound(t *testing.T) {
	truth := GroundTruth{"C": {"X"}}
	found := extraction.FounderMap{"C": {"X", "Z"}}

	records := Evaluate(found, truth)
	require.Len(t, records, 1)

	assert.True(t, records[0].AllCorrect)
	assert.True(t, records[0].AtLeastOneCorrect)
	assert.False(t, records[0].NoIncorrect)
}

func TestEvaluate_ComparisonIsExactAndCaseSensitive(t *testing.T) {
	truth := GroundTruth{"D": {"Jane Doe"}}
	found := extraction.FounderMap{"D": {"jane doe"}}

	records := Evaluate(found, truth)
	require.Len(t, records, 1)

	assert.False(t, records[0].AllCorrect)
	assert.False(t, records[0].AtLeastOneCorrect)
	assert.False(t, records[0].NoIncorrect)
}

func TestEvaluate_TrimsBeforeComparing(t *testing.T) {
	truth := GroundTruth{"E": {" Jane Doe "}}
	found := extraction.FounderMap{"E": {"Jane Doe"}}

	records := Evaluate(found, truth)
	require.Len(t, records, 1)
	assert.True(t, records[0].AllCorrect)
	assert.True(t, records[0].NoIncorrect)
}

func TestEvaluate_GroundTruthDrivesCoverage(t *testing.T) {
	truth := GroundTruth{"B": {"X"}, "A": {"Y"}}
	found := extraction.FounderMap{
		"A": {"Y"},
		// "Extra" has no ground truth and must not appear in records
		"Extra": {"Z"},
	}

	records := Evaluate(found, truth)
	require.Len(t, records, 2)

	// deterministic order: sorted by company name
	assert.Equal(t, "A", records[0].Company)
	assert.Equal(t, "B", records[1].Company)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{AllCorrect: true, AtLeastOneCorrect: true, NoIncorrect: true},
		{AllCorrect: false, AtLeastOneCorrect: true, NoIncorrect: false},
		{AllCorrect: false, AtLeastOneCorrect: false, NoIncorrect: true},
		{AllCorrect: true, AtLeastOneCorrect: true, NoIncorrect: true},
	}

	summary := Summarize(records)
	assert.Equal(t, 4, summary.Total)
	assert.InDelta(t, 50.0, summary.AllCorrectPct, 0.001)
	assert.InDelta(t, 75.0, summary.AtLeastOnePct, 0.001)
	assert.InDelta(t, 75.0, summary.NoIncorrectPct, 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.AllCorrectPct)
}
