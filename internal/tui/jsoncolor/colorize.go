// Package jsoncolor renders JSON with the active theme's colors.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/tasklist/internal/core/styles"
)

// Colorize pretty-prints data and colors keys, strings, numbers, and
// literals. Invalid JSON is returned unchanged.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	raw := buf.String()
	var out strings.Builder

	for i := 0; i < len(raw); {
		tok, style := next(raw, i)
		if style == nil {
			out.WriteString(tok)
		} else {
			out.WriteString(style.Render(tok))
		}
		i += len(tok)
	}

	return out.String()
}

// next returns the token starting at i and the style to render it with.
// A nil style means the token is written as is.
func next(raw string, i int) (string, *lipgloss.Style) {
	ch := raw[i]

	switch {
	case ch == '"':
		end := stringEnd(raw, i)
		tok := raw[i : end+1]
		if rest := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(rest, ":") {
			return tok, &styles.JSONKeyStyle
		}
		return tok, &styles.JSONStringStyle

	case ch == '-' || (ch >= '0' && ch <= '9'):
		end := i + 1
		for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
			end++
		}
		return raw[i:end], &styles.JSONNumberStyle

	case strings.HasPrefix(raw[i:], "true"):
		return "true", &styles.JSONLiteralStyle
	case strings.HasPrefix(raw[i:], "false"):
		return "false", &styles.JSONLiteralStyle
	case strings.HasPrefix(raw[i:], "null"):
		return "null", &styles.JSONLiteralStyle

	case strings.IndexByte("{}[]:,", ch) >= 0:
		return string(ch), &styles.TextMutedStyle
	}

	return string(ch), nil
}

// stringEnd returns the index of the quote closing the string that opens at
// pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}
