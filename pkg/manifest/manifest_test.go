package manifest_test

import (
	"testing"

	"github.com/arthur-debert/pkghooks/pkg/content"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalKeepsOrder(t *testing.T) {
	doc := `{
		"zeta.yaml": "z",
		"alpha.yaml": ["a", "b"],
		"mid.yaml": {"base64": "bWlk"}
	}`

	var m manifest.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))

	assert.Equal(t, []string{"zeta.yaml", "alpha.yaml", "mid.yaml"}, m.Names())
	assert.Equal(t, content.Text("z"), m.Entries()[0].Content)
	assert.Equal(t, content.Lines("a", "b"), m.Entries()[1].Content)
	assert.Equal(t, content.Base64("bWlk"), m.Entries()[2].Content)
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"list instead of map", `["a.yaml"]`},
		{"scalar", `"a.yaml"`},
		{"duplicate key", "a.yaml: one\na.yaml: two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node yaml.Node
			if err := yaml.Unmarshal([]byte(tt.doc), &node); err != nil {
				// yaml.v3 may reject duplicate keys itself
				return
			}
			_, err := manifest.FromNode(&node)
			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid), "got %v", err)
		})
	}
}

func TestFromNodeNull(t *testing.T) {
	m, err := manifest.FromNode(nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("null"), &node))
	m, err = manifest.FromNode(&node)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

func TestNew(t *testing.T) {
	m, err := manifest.New(
		manifest.Entry{Name: "b.txt", Content: content.Text("b")},
		manifest.Entry{Name: "a.txt", Content: content.Text("a")},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "a.txt"}, m.Names())
	assert.True(t, m.Has("a.txt"))

	_, err = manifest.New(manifest.Entry{Name: ""})
	assert.Error(t, err)
}
