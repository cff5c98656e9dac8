package bundles

import (
	"fmt"
	"sort"
)

// Codec reads and writes the registry file in one format
type Codec interface {
	// Format is the name used in configuration (php, yaml, ...)
	Format() string

	// Ext is the file extension, dot included
	Ext() string

	Encode(r *Registry) ([]byte, error)
	Decode(data []byte) (*Registry, error)
}

// FormatPHP is the default registry format
const FormatPHP = "php"

var codecs = map[string]Codec{
	FormatPHP: phpCodec{},
	"yaml":    yamlCodec{},
	"toml":    tomlCodec{},
	"xml":     xmlCodec{},
}

// CodecFor returns the codec for format. The empty string selects php.
func CodecFor(format string) (Codec, error) {
	if format == "" {
		format = FormatPHP
	}
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("unknown registry format %q (expected one of %v)", format, Formats())
	}
	return c, nil
}

// Formats lists the supported registry formats
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName returns the registry file name for a codec
func FileName(c Codec) string {
	return "bundles" + c.Ext()
}
