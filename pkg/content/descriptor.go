package content

import (
	"encoding/base64"
	"runtime"
	"strings"

	"github.com/arthur-debert/pkghooks/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a Descriptor
type Kind int

const (
	KindUnsupported Kind = iota
	KindText
	KindLines
	KindBase64
)

// Base64Key is the only structured key accepted in a descriptor mapping
const Base64Key = "base64"

// EOL is the line separator used to join line lists
var EOL = defaultEOL()

func defaultEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Descriptor describes the content of one file.
type Descriptor struct {
	Kind Kind

	Text   string
	Lines  []string
	Base64 string

	// Key is the offending key for unsupported descriptors
	Key string
}

// Text returns a plain text descriptor
func Text(s string) Descriptor { return Descriptor{Kind: KindText, Text: s} }

// Lines returns a line list descriptor
func Lines(lines ...string) Descriptor { return Descriptor{Kind: KindLines, Lines: lines} }

// Base64 returns a base64 envelope descriptor
func Base64(encoded string) Descriptor { return Descriptor{Kind: KindBase64, Base64: encoded} }

// Unsupported returns a descriptor that fails to resolve, naming key
func Unsupported(key string) Descriptor { return Descriptor{Kind: KindUnsupported, Key: key} }

// UnmarshalYAML decodes a descriptor from a YAML (or JSON) node
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	*d = FromNode(node)
	return nil
}

// FromNode maps a YAML node onto a descriptor. It never fails: shapes it does
// not understand become Unsupported.
func FromNode(node *yaml.Node) Descriptor {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return Text(node.Value)

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return Unsupported("list")
		}
		lines := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return Unsupported("list")
			}
			lines = append(lines, item.Value)
		}
		return Lines(lines...)

	case yaml.MappingNode:
		if len(node.Content) < 2 {
			return Unsupported("map")
		}
		key, value := node.Content[0], node.Content[1]
		if key.Value == Base64Key && value.Kind == yaml.ScalarNode {
			return Base64(value.Value)
		}
		return Unsupported(key.Value)
	}

	return Unsupported("unknown")
}

// Resolve turns the descriptor of fileName into its final payload
func Resolve(fileName string, d Descriptor) (string, error) {
	switch d.Kind {
	case KindText:
		return d.Text, nil

	case KindLines:
		return strings.Join(d.Lines, EOL), nil

	case KindBase64:
		decoded, err := decodeBase64(d.Base64)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrContentDecode,
				"invalid base64 content for %s", fileName).
				WithDetail("file", fileName)
		}
		return string(decoded), nil
	}

	return "", errors.Newf(errors.ErrContentUnsupported,
		"content type %s for %s is not supported", d.Key, fileName).
		WithDetail("file", fileName).
		WithDetail("key", d.Key)
}

// decodeBase64 accepts wrapped or unpadded input
func decodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
