package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      string
		wantErrMsg string
	}{
		"object":             {input: `{"a": 1}`},
		"object with spaces": {input: "\n  {\"a\": [1, 2]}  \n"},
		"empty":              {input: "", wantErrMsg: "file is empty"},
		"whitespace only":    {input: "  \n", wantErrMsg: "file is empty"},
		"string":             {input: `"hi"`, wantErrMsg: "top-level value is a string"},
		"null":               {input: `null`, wantErrMsg: "top-level value is null"},
		"number":             {input: `3`, wantErrMsg: "top-level value is a number"},
		"two objects":        {input: `{}{}`, wantErrMsg: "unexpected data"},
		"truncated":          {input: `{"a":`, wantErrMsg: "unexpected EOF"},
		"invalid UTF-8":      {input: "{\"a\": \"a\xffb\"}", wantErrMsg: "not valid UTF-8"},
		"multibyte text":     {input: `{"a": "héllo ✓"}`},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc, err := decodeDocument([]byte(tt.input))
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, doc)
		})
	}
}

func TestDecodeDocument_KeepsNumbers(t *testing.T) {
	t.Parallel()

	doc, err := decodeDocument([]byte(`{"n": 9007199254740993, "f": 1.50}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), doc["n"])
	assert.Equal(t, json.Number("1.50"), doc["f"])

	out, err := encodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"f\": 1.50,\n  \"n\": 9007199254740993\n}\n", string(out))
}

func TestReadDocument_Missing(t *testing.T) {
	t.Parallel()

	doc, exists, err := readDocument(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, doc)
}

func TestWriteDocument_CreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "settings.json")
	require.NoError(t, writeDocument(path, document{"k": "v/w"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v/w\"\n}\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWithout(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		entries []any
		indices []int
		want    []any
	}{
		"nothing removed": {entries: []any{"a", "b"}, want: []any{"a", "b"}},
		"first and last":  {entries: []any{"a", "b", "c"}, indices: []int{0, 2}, want: []any{"b"}},
		"everything":      {entries: []any{"a"}, indices: []int{0}, want: []any{}},
		"empty input":     {entries: []any{}, want: []any{}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, without(tt.entries, tt.indices))
		})
	}
}

func TestJSONTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "an object", jsonTypeName(map[string]any{}))
	assert.Equal(t, "an array", jsonTypeName([]any{}))
	assert.Equal(t, "a boolean", jsonTypeName(true))
	assert.Equal(t, "a number", jsonTypeName(json.Number("1")))
	assert.Equal(t, "null", jsonTypeName(nil))
}
