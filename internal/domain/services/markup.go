package services

import "strings"

const (
	boldMarker       = "**"
	italicMarker     = "*"
	boldItalicMarker = "***"
)

// RenderMarkup converts paired asterisk markers to HTML in a single scan.
// At each position the longest marker wins, so "**x**" can never be read
// as two empty italic runs:
//
//	***x*** -> <strong><em>x</em></strong>
//	**x**   -> <strong>x</strong>
//	*x*     -> <em>x</em>
//
// Markers without a closing partner, or enclosing nothing, are left as-is.
// Text is not HTML-escaped.
func RenderMarkup(s string) string {
	if !strings.Contains(s, italicMarker) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 32)

	for i := 0; i < len(s); {
		if s[i] != '*' {
			b.WriteByte(s[i])
			i++
			continue
		}

		rest := s[i:]
		if inner, n, ok := pairedRun(rest, boldItalicMarker); ok {
			b.WriteString("<strong><em>")
			b.WriteString(inner)
			b.WriteString("</em></strong>")
			i += n
			continue
		}
		if inner, n, ok := pairedRun(rest, boldMarker); ok {
			b.WriteString("<strong>")
			b.WriteString(renderItalic(inner))
			b.WriteString("</strong>")
			i += n
			continue
		}
		if inner, n, ok := pairedRun(rest, italicMarker); ok {
			b.WriteString("<em>")
			b.WriteString(inner)
			b.WriteString("</em>")
			i += n
			continue
		}

		// Unpaired: emit the whole run of asterisks literally.
		j := i
		for j < len(s) && s[j] == '*' {
			j++
		}
		b.WriteString(s[i:j])
		i = j
	}

	return b.String()
}

// renderItalic converts single-marker pairs only; used inside bold runs.
func renderItalic(s string) string {
	if !strings.Contains(s, italicMarker) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '*' {
			if inner, n, ok := pairedRun(s[i:], italicMarker); ok {
				b.WriteString("<em>")
				b.WriteString(inner)
				b.WriteString("</em>")
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// pairedRun reports whether s opens with marker followed by non-empty text
// and a closing marker. The opening marker must not be part of a longer run
// of asterisks and the enclosed text must not start or end with one, so the
// longest-marker rule holds on both sides. It returns the enclosed text and
// the number of bytes consumed.
func pairedRun(s, marker string) (string, int, bool) {
	m := len(marker)
	if !strings.HasPrefix(s, marker) || len(s) <= m || s[m] == '*' {
		return "", 0, false
	}

	for from := m; from < len(s); {
		idx := strings.Index(s[from:], marker)
		if idx < 0 {
			return "", 0, false
		}
		end := from + idx
		// The closing marker must be exactly this run of asterisks.
		after := end + m
		if s[end-1] != '*' && (after >= len(s) || s[after] != '*') {
			return s[m:end], after, true
		}
		// Skip past the whole asterisk run and keep looking.
		for after < len(s) && s[after] == '*' {
			after++
		}
		from = after
	}
	return "", 0, false
}
