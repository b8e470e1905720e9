package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	titleFontSize = 15.0
	labelFontSize = 11.0
	charWidth     = 0.58
)

// columns measures text in Latin character cells; wide runes such as CJK
// take two. Ambiguous runes stay narrow whatever the locale.
var columns = &runewidth.Condition{StrictEmojiNeutral: true}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// WrapURL wraps the output of fn in a link when url is set.
func WrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`, EscapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("</a>")
	}
}

// Truncate shortens s so it fits in width at the given font size.
func Truncate(s string, width, fontSize float64) string {
	maxCols := max(3, int(width/(fontSize*charWidth)))
	if columns.StringWidth(s) <= maxCols {
		return s
	}
	return columns.Truncate(s, maxCols, "…")
}

// wrap breaks s into lines that fit width at fontSize. Words wider than a
// line are split between runes.
func wrap(s string, width, fontSize float64) []string {
	maxCols := max(8, int(width/(fontSize*charWidth)))
	var (
		lines []string
		line  strings.Builder
		cols  int
	)
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			cols = 0
		}
	}
	for _, w := range strings.Fields(s) {
		ww := columns.StringWidth(w)
		if line.Len() > 0 && cols+1+ww <= maxCols {
			line.WriteByte(' ')
			line.WriteString(w)
			cols += 1 + ww
			continue
		}
		flush()
		for _, r := range w {
			rw := columns.RuneWidth(r)
			if cols+rw > maxCols {
				flush()
			}
			line.WriteRune(r)
			cols += rw
		}
	}
	flush()
	return lines
}
