package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates_FencedReply(t *testing.T) {
	raw := "Here are three paths for you:\n```json\n" +
		`{"career_paths": [{"role": "Data Scientist", "roadmap": [{"module_title": "Stats", "topics": [{"title": "Bayes"}]}]}]}` +
		"\n```\nGood luck!"

	paths, err := ParseCandidates([]byte(raw), FormatText)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "Data Scientist", paths[0].Role)
	assert.Equal(t, "Stats", paths[0].ModuleList()[0].ModuleTitle)
}

func TestParseCandidates_BareListInProse(t *testing.T) {
	raw := `Sure! [{"role": "Analyst", "modules": []}, {"role": "SRE", "modules": []}] Let me know.`

	paths, err := ParseCandidates([]byte(raw), FormatText)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "SRE", paths[1].Role)
}

func TestParseCandidates_NoJSON(t *testing.T) {
	_, err := ParseCandidates([]byte("I could not think of any career paths."), FormatText)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean object", `{"a":1}`, `{"a":1}`},
		{"nested", `x {"a":{"b":[1,2]}} y`, `{"a":{"b":[1,2]}}`},
		{"brace in string", `{"a":"}{"}`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"say \"hi\" }"}`, `{"a":"say \"hi\" }"}`},
		{"line comment", "{\"a\":1 // one\n}", "{\"a\":1 \n}"},
		{"block comment", `{"a":/* x */1}`, `{"a":1}`},
		{"url kept", `{"u":"https://example.com"}`, `{"u":"https://example.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := extractJSON(`{"a": [1, 2}`)
	assert.ErrorIs(t, err, ErrNoJSON)
}
