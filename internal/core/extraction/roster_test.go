package extraction

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseRosterLine(t *testing.T) {
	entry, err := ParseRosterLine("Acme Corp (https://acme.com)")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", entry.Name)
	assert.Equal(t, "https://acme.com", entry.ReferenceURL)
}

func TestParseRosterLine_LastParenthesisWins(t *testing.T) {
	entry, err := ParseRosterLine("Shop (Japan) K.K. (https://shop.example.jp)")
	require.NoError(t, err)
	assert.Equal(t, "Shop (Japan) K.K.", entry.Name)
	assert.Equal(t, "https://shop.example.jp", entry.ReferenceURL)
}

func TestParseRosterLine_Malformed(t *testing.T) {
	cases := []string{
		"Bad Line No Parens",
		"Missing Close (https://x.com",
		"(https://only-url.com)",
		"Name Only ()",
	}
	for _, line := range cases {
		_, err := ParseRosterLine(line)
		assert.ErrorIs(t, err, ErrMalformedLine, "line=%q", line)
	}
}

func TestParseRoster_SkipsBlankAndMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"Acme Corp (https://acme.com)",
		"",
		"Bad Line No Parens",
		"   ",
		"Approval AI (https://www.getapproval.ai/founders)",
	}, "\n")

	entries, malformed, err := ParseRoster(strings.NewReader(input), discardLogger())
	require.NoError(t, err)

	// valid lines survive in input order, blank lines are not counted as malformed
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Name)
	assert.Equal(t, "Approval AI", entries[1].Name)
	assert.Equal(t, 1, malformed)
}
