package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urls(t *testing.T, data string) []string {
	t.Helper()
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	out := make([]string, len(doc))
	for i, r := range doc {
		out[i] = r.URL()
	}
	return out
}

func TestParse_KeepsOnlySalesURLInOrder(t *testing.T) {
	input := `[
		{"name": "Ann", "title": "CTO", "sales_url": "https://www.linkedin.com/sales/lead/1"},
		{"sales_url": "https://www.linkedin.com/sales/lead/2", "extra": {"nested": [1, 2]}},
		{"title": "VP", "sales_url": "https://www.linkedin.com/sales/lead/3"}
	]`

	doc, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, doc, 3)

	assert.Equal(t, []string{
		"https://www.linkedin.com/sales/lead/1",
		"https://www.linkedin.com/sales/lead/2",
		"https://www.linkedin.com/sales/lead/3",
	}, urls(t, input))
	assert.JSONEq(t, `"https://www.linkedin.com/sales/lead/2"`, string(doc[1].SalesURL))
}

func TestParse_EmptyArray(t *testing.T) {
	doc, err := Parse([]byte(" [ ] "))
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestParse_PreservesValueByValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"escaped string", `[{"sales_url": "http://a/é?x=1&y=2"}]`, `"http://a/é?x=1&y=2"`},
		{"null", `[{"sales_url": null}]`, `null`},
		{"number", `[{"sales_url": 42}]`, `42`},
		{"object compacted", `[{"sales_url": { "a" : [1, 2] }}]`, `{"a":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, doc, 1)
			assert.Equal(t, tt.want, string(doc[0].SalesURL))
		})
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"repeated", `[{"sales_url": "http://first", "sales_url": "http://last"}]`, "http://last"},
		{"separated by other keys", `[{"sales_url": "http://first", "name": "n", "sales_url": "http://last"}]`, "http://last"},
		{"escaped key", `[{"sales_url": "http://first", "sales\u005furl": "http://last"}]`, "http://last"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, urls(t, tt.input))
		})
	}
}

func TestParse_MissingFieldAbortsWholeRun(t *testing.T) {
	input := `[{"sales_url": "http://a"}, {"name": "no url"}, {"sales_url": "http://c"}]`

	doc, err := Parse([]byte(input))
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrParse))

	var ce *Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Index)
	assert.Equal(t, "sales_url", ce.Field)
	assert.Contains(t, err.Error(), "MISSING_FIELD")
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
	}{
		{"empty input", ``, -1},
		{"truncated", `[{"sales_url": "http://a"}`, -1},
		{"trailing garbage", `[] x`, -1},
		{"root object", `{"sales_url": "http://a"}`, -1},
		{"root string", `"http://a"`, -1},
		{"element not object", `[{"sales_url": "http://a"}, "http://b"]`, 1},
		{"element null", `[null]`, 0},
		{"invalid utf-8", "[{\"sales_url\": \"http://a/\xff\"}]", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, ErrCodeParse, Code(err))

			var ce *Error
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.index, ce.Index)
		})
	}
}
