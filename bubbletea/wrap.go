package bubbletea

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wrapText word-wraps text to width cells. Newlines are hard breaks and tabs
// expand to four spaces, as lipgloss does. Lines break only at whitespace
// runs, and runs inside a line are kept as written. Words wider than width
// are split at grapheme boundaries. Lines that already fit are returned
// untouched.
func wrapText(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	paras := strings.Split(text, "\n")
	if width <= 0 {
		return paras
	}
	lines := make([]string, 0, len(paras))
	for _, p := range paras {
		lines = append(lines, wrapLine(p, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	if uniseg.StringWidth(s) <= width {
		return []string{s}
	}

	var (
		lines   []string
		line    strings.Builder
		lineW   int
		pending string // whitespace run before the next word
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for i, tok := range splitRuns(s) {
		w := uniseg.StringWidth(tok)
		if isSpaceRun(tok) {
			if i == 0 {
				// Leading indentation is kept.
				for _, part := range breakWord(tok, width) {
					if lineW > 0 {
						flush()
					}
					line.WriteString(part)
					lineW = uniseg.StringWidth(part)
				}
				continue
			}
			pending = tok
			continue
		}
		pw := uniseg.StringWidth(pending)
		if lineW > 0 && lineW+pw+w > width {
			flush()
			pending, pw = "", 0
		}
		if w > width {
			if lineW > 0 {
				flush()
			}
			parts := breakWord(tok, width)
			lines = append(lines, parts[:len(parts)-1]...)
			last := parts[len(parts)-1]
			line.WriteString(last)
			lineW = uniseg.StringWidth(last)
			pending = ""
			continue
		}
		if lineW > 0 {
			line.WriteString(pending)
			lineW += pw
		}
		pending = ""
		line.WriteString(tok)
		lineW += w
	}
	if pw := uniseg.StringWidth(pending); pending != "" && lineW+pw <= width {
		line.WriteString(pending)
	}
	flush()
	return lines
}

// splitRuns splits s into alternating runs of whitespace and non-whitespace.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i, r := range s {
		if i > start && unicode.IsSpace(r) != isSpaceRun(s[start:i]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		runs = append(runs, s[start:])
	}
	return runs
}

func isSpaceRun(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

// breakWord splits word into chunks of at most width cells. A single
// grapheme wider than width gets a chunk of its own.
func breakWord(word string, width int) []string {
	var (
		parts []string
		part  strings.Builder
		partW int
	)
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		cw := g.Width()
		if partW > 0 && partW+cw > width {
			parts = append(parts, part.String())
			part.Reset()
			partW = 0
		}
		part.WriteString(g.Str())
		partW += cw
	}
	if part.Len() > 0 {
		parts = append(parts, part.String())
	}
	return parts
}

// wrapCache remembers the last wrap result. Invalidates when width changes.
type wrapCache struct {
	width int
	lines []string
}

func (c *wrapCache) get(text string, width int) []string {
	if c.lines == nil || c.width != width {
		c.lines = wrapText(text, width)
		c.width = width
	}
	return c.lines
}
