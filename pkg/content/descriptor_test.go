package content_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/arthur-debert/pkghooks/pkg/content"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, doc string) content.Descriptor {
	t.Helper()
	var d content.Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(doc), &d))
	return d
}

func TestFromNode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want content.Descriptor
	}{
		{"string", `"foo/bar"`, content.Text("foo/bar")},
		{"json list", `["a:", "  b: 1"]`, content.Lines("a:", "  b: 1")},
		{"yaml list", "- one\n- two\n", content.Lines("one", "two")},
		{"empty list", `[]`, content.Unsupported("list")},
		{"base64", `{"base64": "YmFyL2Zvbw=="}`, content.Base64("YmFyL2Zvbw==")},
		{"unknown key", `{"gzip": "xx"}`, content.Unsupported("gzip")},
		{"nested list", `[["a"]]`, content.Unsupported("list")},
		{"base64 first key wins", `{"foo": "x", "base64": "eA=="}`, content.Unsupported("foo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.doc))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("text unchanged", func(t *testing.T) {
		got, err := content.Resolve("string.yaml", content.Text("foo/bar"))
		require.NoError(t, err)
		assert.Equal(t, "foo/bar", got)
	})

	t.Run("lines joined with platform separator", func(t *testing.T) {
		lines := []string{"# Read the documentation:", "foo:", "  bar:", "    - 'hello'"}
		got, err := content.Resolve("array.yaml", content.Lines(lines...))
		require.NoError(t, err)
		assert.Equal(t, strings.Join(lines, content.EOL), got)
	})

	t.Run("base64 decoded", func(t *testing.T) {
		for _, raw := range []string{"bar/foo", "", "multi\nline\x00binary"} {
			encoded := base64.StdEncoding.EncodeToString([]byte(raw))
			got, err := content.Resolve("base64.yaml", content.Base64(encoded))
			require.NoError(t, err)

			direct, _ := base64.StdEncoding.DecodeString(encoded)
			assert.Equal(t, string(direct), got)
		}
	})

	t.Run("base64 unpadded", func(t *testing.T) {
		got, err := content.Resolve("hello.txt", content.Base64("aGVsbG8"))
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("base64 wrapped", func(t *testing.T) {
		got, err := content.Resolve("wrapped.txt", content.Base64("YmFy\nL2Zv\r\n bw=="))
		require.NoError(t, err)
		assert.Equal(t, "bar/foo", got)
	})

	t.Run("empty list is unsupported", func(t *testing.T) {
		_, err := content.Resolve("empty.yaml", decode(t, `[]`))
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentUnsupported))
		assert.Contains(t, err.Error(), "content type list for empty.yaml is not supported")
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := content.Resolve("bad.yaml", content.Base64("***"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentDecode))
	})

	t.Run("unsupported names key and file", func(t *testing.T) {
		_, err := content.Resolve("foo.yaml", content.Unsupported("gzip"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentUnsupported))
		assert.Contains(t, err.Error(), "content type gzip for foo.yaml is not supported")
		assert.Equal(t, "foo.yaml", errors.GetErrorDetails(err)["file"])
	})

	t.Run("zero descriptor is unsupported", func(t *testing.T) {
		_, err := content.Resolve("zero", content.Descriptor{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentUnsupported))
	})
}
