// Package diag renders definition errors for humans, pointing at the part of
// the offending line that caused them.
package diag

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Context is a range of text within one line of a definition document.
type Context struct {
	// Name identifies the document, typically its path.
	Name string
	// Line is the 1-based line number.
	Line int
	// Source is the full text of the line.
	Source string
	// Begin and End are byte offsets of the culprit in Source.
	Begin int
	End   int
}

// Variables controlling the style of the culprit.
var (
	culpritBegin       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
	markerChar         = "^"
)

// Head is the text of the line before the culprit.
func (c *Context) Head() string { return c.Source[:c.Begin] }

// Culprit is the highlighted text.
func (c *Context) Culprit() string { return c.Source[c.Begin:c.End] }

// Tail is the text of the line after the culprit.
func (c *Context) Tail() string { return c.Source[c.End:] }

func (c *Context) checkPosition() error {
	if c.Begin < 0 || c.End > len(c.Source) || c.Begin > c.End {
		return fmt.Errorf("%s, line %d: invalid position %d-%d", c.Name, c.Line, c.Begin, c.End)
	}
	return nil
}

// Show returns the line with the culprit marked, each output line prefixed
// with indent. With color the culprit is underlined in place; without it a
// second line of carets is drawn below.
func (c *Context) Show(indent string, color bool) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}

	var buf bytes.Buffer
	buf.WriteString(indent)
	buf.WriteString(c.Head())

	culprit := c.Culprit()
	if color {
		if culprit == "" {
			culprit = culpritPlaceHolder
		}
		buf.WriteString(culpritBegin)
		buf.WriteString(culprit)
		buf.WriteString(culpritEnd)
		buf.WriteString(c.Tail())
		return buf.String()
	}

	buf.WriteString(culprit)
	buf.WriteString(c.Tail())
	buf.WriteByte('\n')
	buf.WriteString(indent)
	buf.WriteString(padding(c.Head()))
	buf.WriteString(strings.Repeat(markerChar, max(1, runewidth.StringWidth(culprit))))
	return buf.String()
}

// padding returns blank space as wide as s on a terminal. Tabs are kept so
// the marker stays aligned whatever the tab width.
func padding(s string) string {
	var buf strings.Builder
	for _, r := range s {
		if r == '\t' {
			buf.WriteByte('\t')
			continue
		}
		buf.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return buf.String()
}
