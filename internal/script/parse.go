package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/coord"
)

type token struct {
	text   string
	quoted bool
}

// tokenize splits a command line on blanks. Quoted strings form a single
// token holding their unquoted value.
func tokenize(line string) ([]token, error) {
	var toks []token
	for {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			return toks, nil
		}
		if line[0] == '"' || line[0] == '`' {
			q, err := strconv.QuotedPrefix(line)
			if err != nil {
				return nil, fmt.Errorf("%w: unterminated string %s", ErrSyntax, line)
			}
			s, err := strconv.Unquote(q)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			toks = append(toks, token{text: s, quoted: true})
			line = line[len(q):]
			continue
		}
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			end = len(line)
		}
		toks = append(toks, token{text: line[:end]})
		line = line[end:]
	}
}

func parseInt(t token) (int, error) {
	if t.quoted {
		return 0, fmt.Errorf("%w: want a number, got %q", ErrSyntax, t.text)
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, fmt.Errorf("%w: want a number, got %s", ErrSyntax, t.text)
	}
	return n, nil
}

// parsePosition reads a "LINE COL" pair. The line break of a line and the
// end of the buffer are valid positions.
func parsePosition(buf *buffer.Buffer, args []token) (buffer.Iterator, error) {
	line, err := parseInt(args[0])
	if err != nil {
		return buffer.Iterator{}, err
	}
	col, err := parseInt(args[1])
	if err != nil {
		return buffer.Iterator{}, err
	}

	c := coord.Coord{Line: line, Column: col}
	if line < 0 || line >= buf.LineCount() || col < 0 || col > buf.LineLength(line) {
		return buffer.Iterator{}, fmt.Errorf("%s: %w", c, ErrPosition)
	}
	return buf.IteratorAt(c, false), nil
}

// parseValue reads an option value: a quoted string, a boolean or an
// integer.
func parseValue(t token) (any, error) {
	if t.quoted {
		return t.text, nil
	}
	switch t.text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.Atoi(t.text); err == nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: bad option value %s", ErrSyntax, t.text)
}
