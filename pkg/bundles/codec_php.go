package bundles

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/arthur-debert/pkghooks/pkg/errors"
)

// phpCodec writes the registry as a PHP file returning an array, the layout
// expected by Symfony kernels:
//
//	<?php
//
//	return [
//	    Foo\Bar::class => ['all' => true],
//	];
type phpCodec struct{}

var (
	phpClassName = regexp.MustCompile(`^\\?[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)
	phpEntry     = regexp.MustCompile(`^\s*(?:\\?([A-Za-z_][A-Za-z0-9_\\]*)::class|'((?:[^'\\]|\\.)*)')\s*=>\s*\[(.*)\]\s*,?\s*$`)
	phpFlag      = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'\s*=>\s*(true|false)`)
	phpQuote     = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	phpUnquote   = strings.NewReplacer(`\\`, `\`, `\'`, `'`)
)

func (phpCodec) Format() string { return FormatPHP }
func (phpCodec) Ext() string    { return ".php" }

func (phpCodec) Encode(r *Registry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<?php\n\nreturn [\n")
	for _, b := range r.Bundles() {
		buf.WriteString("    ")
		if phpClassName.MatchString(b.ID) {
			buf.WriteString(strings.TrimPrefix(b.ID, `\`) + "::class")
		} else {
			buf.WriteString("'" + phpQuote.Replace(b.ID) + "'")
		}
		buf.WriteString(" => [")
		for i, f := range b.Envs {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString("'" + phpQuote.Replace(f.Env) + "' => ")
			if f.Enabled {
				buf.WriteString("true")
			} else {
				buf.WriteString("false")
			}
		}
		buf.WriteString("],\n")
	}
	buf.WriteString("];\n")
	return buf.Bytes(), nil
}

// Decode parses files in the layout produced by Encode. Comments are ignored
// and an entry may span several lines as long as its brackets balance.
func (phpCodec) Decode(data []byte) (*Registry, error) {
	r := &Registry{}
	scanner := bufio.NewScanner(strings.NewReader(stripPHPComments(data)))

	var pending []string
	var opened bool
	lineNo, entryLine, depth := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(pending) == 0 {
			if skipPHPLine(line) {
				continue
			}
			entryLine = lineNo
		}
		if line == "" {
			continue
		}

		pending = append(pending, line)
		d, o := phpBrackets(line)
		depth += d
		opened = opened || o
		if depth > 0 || (!opened && !strings.HasSuffix(line, ",") && !strings.HasSuffix(line, ";")) {
			continue
		}

		entry := strings.Join(pending, " ")
		pending, depth, opened = pending[:0], 0, false
		if err := decodePHPEntry(r, entry, entryLine); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryParse, "cannot read registry")
	}
	if len(pending) > 0 {
		return nil, errors.Newf(errors.ErrRegistryParse, "unterminated entry at line %d", entryLine).
			WithDetail("line", entryLine)
	}
	return r, nil
}

func decodePHPEntry(r *Registry, entry string, lineNo int) error {
	m := phpEntry.FindStringSubmatch(entry)
	if m == nil {
		return errors.Newf(errors.ErrRegistryParse, "unexpected content at line %d: %s", lineNo, entry).
			WithDetail("line", lineNo)
	}

	id := m[1]
	if id == "" {
		id = phpUnquote.Replace(m[2])
	}

	b := Bundle{ID: id, Envs: []Flag{}}
	flags := phpFlag.FindAllStringSubmatch(m[3], -1)
	if len(flags) != strings.Count(m[3], "=>") {
		return errors.Newf(errors.ErrRegistryParse,
			"environments of %s must map names to true or false (line %d)", id, lineNo).
			WithDetail("line", lineNo).
			WithDetail("bundle", id)
	}
	for _, f := range flags {
		b.setEnv(phpUnquote.Replace(f[1]), f[2] == "true")
	}
	r.Set(b)
	return nil
}

func skipPHPLine(line string) bool {
	switch {
	case line == "", line == "<?php", line == "return [", line == "];":
		return true
	case strings.HasPrefix(line, "declare("):
		return true
	}
	return false
}

// stripPHPComments removes //, # and /* */ comments outside string literals.
// Newlines inside block comments are kept so line numbers stay accurate.
func stripPHPComments(data []byte) string {
	var out strings.Builder
	out.Grow(len(data))

	var quote byte
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case quote != 0:
			out.WriteByte(c)
			if c == '\\' && i+1 < len(data) {
				i++
				out.WriteByte(data[i])
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			out.WriteByte(c)
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for ; i < len(data); i++ {
				if data[i] == '*' && i+1 < len(data) && data[i+1] == '/' {
					i++
					break
				}
				if data[i] == '\n' {
					out.WriteByte('\n')
				}
			}
		case c == '#' || (c == '/' && i+1 < len(data) && data[i+1] == '/'):
			for i+1 < len(data) && data[i+1] != '\n' {
				i++
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// phpBrackets returns the number of [ minus ] outside string literals and
// whether any [ was seen.
func phpBrackets(line string) (depth int, opened bool) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			depth++
			opened = true
		case c == ']':
			depth--
		}
	}
	return depth, opened
}
