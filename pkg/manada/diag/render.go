package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/randalmurphal/manada/pkg/manada"
	"github.com/randalmurphal/manada/pkg/manada/expr"
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI highlighting. Callers usually set it when the
	// writer is a terminal.
	Color bool
	// Indent prefixes every source line. Defaults to two spaces.
	Indent string
}

// Render writes err for the document called name to w.
//
// A *manada.ParseError is shown with its line and a marker under the
// culprit:
//
//	length.manada, line 2: invalid character '$' in calculation
//	  m -> dm: x * 1 0 $ 2
//	                   ^
//
// Any other error is written as a single line.
func Render(w io.Writer, name string, err error, opts Options) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	var perr *manada.ParseError
	if !errors.As(err, &perr) {
		msg := err.Error()
		if name != "" {
			msg = name + ": " + msg
		}
		_, werr := fmt.Fprintln(w, complain(msg, opts.Color))
		return werr
	}

	c := ContextOf(name, perr)
	header := fmt.Sprintf("%s, line %d: %v", name, c.Line, perr.Err)
	_, werr := fmt.Fprintf(w, "%s\n%s\n", complain(header, opts.Color), c.Show(opts.Indent, opts.Color))
	return werr
}

func complain(msg string, color bool) string {
	if !color {
		return msg
	}
	return "\033[31;1m" + msg + "\033[m"
}

// ContextOf locates the culprit of a parse error within its line.
//
// Lexical errors point at the offending character or literal, mapping the
// position in the whitespace-free expression back to the raw line. An
// expression that ended too early points just past its end. Other expression
// errors cover the whole expression, and malformed lines cover the whole
// definition.
func ContextOf(name string, perr *manada.ParseError) *Context {
	source := strings.TrimRight(perr.Text, "\r\n")
	c := &Context{Name: name, Line: perr.Line + 1, Source: source}

	content := source
	if i := strings.Index(content, "#"); i >= 0 {
		content = content[:i]
	}
	lineBegin, lineEnd := trimmedBounds(content, 0, len(content))
	c.Begin, c.End = lineBegin, lineEnd

	exprBegin, ok := expressionStart(content, lineBegin, lineEnd)
	if !ok {
		return c
	}
	exprBegin, exprEnd := trimmedBounds(content, exprBegin, lineEnd)

	var (
		charErr *expr.InvalidCharError
		numErr  *expr.InvalidNumberError
	)
	switch {
	case errors.As(perr.Err, &charErr):
		begin := mapStripped(content, exprBegin, exprEnd, charErr.Position)
		c.Begin, c.End = begin, min(begin+utf8.RuneLen(charErr.Char), exprEnd)
	case errors.As(perr.Err, &numErr):
		n := utf8.RuneCountInString(numErr.Literal)
		begin := mapStripped(content, exprBegin, exprEnd, numErr.Position)
		last := mapStripped(content, exprBegin, exprEnd, numErr.Position+n-1)
		_, size := utf8.DecodeRuneInString(content[last:])
		c.Begin, c.End = begin, min(last+size, exprEnd)
	case errors.Is(perr.Err, expr.ErrUnexpectedEOL):
		c.Begin, c.End = exprEnd, exprEnd
	case errors.Is(perr.Err, manada.ErrEmptyUnit):
		// whole definition
	default:
		c.Begin, c.End = exprBegin, exprEnd
	}
	return c
}

// expressionStart returns the offset just past the ": " that follows the
// " -> " of the definition in content[begin:end].
func expressionStart(content string, begin, end int) (int, bool) {
	def := content[begin:end]
	arrow := strings.Index(def, " -> ")
	if arrow < 0 {
		return 0, false
	}
	rest := arrow + len(" -> ")
	colon := strings.Index(def[rest:], ": ")
	if colon < 0 {
		return 0, false
	}
	return begin + rest + colon + len(": "), true
}

// trimmedBounds narrows [begin, end) of s to exclude surrounding whitespace.
func trimmedBounds(s string, begin, end int) (int, int) {
	part := s[begin:end]
	left := strings.TrimLeftFunc(part, unicode.IsSpace)
	begin += len(part) - len(left)
	end = begin + len(strings.TrimRightFunc(left, unicode.IsSpace))
	return begin, end
}

// mapStripped returns the byte offset in s of the pos-th non-space rune
// counted from begin. Positions past the last such rune map to end.
func mapStripped(s string, begin, end, pos int) int {
	n := 0
	for i, r := range s[begin:end] {
		if unicode.IsSpace(r) {
			continue
		}
		if n == pos {
			return begin + i
		}
		n++
	}
	return end
}
