package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFounderList(t *testing.T) {
	founders := ParseFounderList("Jane Doe, , John Van Smith, ")
	assert.Equal(t, []string{"Jane Doe", "John Van Smith"}, founders)
}

func TestParseFounderList_KeepsDuplicatesAndOrder(t *testing.T) {
	founders := ParseFounderList("B, A, B")
	assert.Equal(t, []string{"B", "A", "B"}, founders)
}

func TestParseFounderList_Empty(t *testing.T) {
	assert.Empty(t, ParseFounderList(""))
	assert.Empty(t, ParseFounderList(" , ,, "))
}

func TestBuildFounderPrompt(t *testing.T) {
	entry := CompanyEntry{Name: "Acme Corp", ReferenceURL: "https://acme.com"}

	prompt := BuildFounderPrompt(entry, "snippet text")
	assert.Contains(t, prompt, "founders of Acme Corp (https://acme.com)")
	assert.Contains(t, prompt, "comma-separated")
	assert.Contains(t, prompt, "snippet text")
}

func TestBuildSearchQuery(t *testing.T) {
	entry := CompanyEntry{Name: "Acme Corp", ReferenceURL: "https://acme.com"}
	assert.Equal(t, "founders of Acme Corp https://acme.com", BuildSearchQuery(entry))
}
