package main

import "strings"

// overlayAt composites the overlay string on top of the background at visible
// position (x, y). Overlay lines that fall outside the background are dropped.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, ovLine := range strings.Split(overlay, "\n") {
		if row := y + i; row >= 0 && row < len(bgLines) {
			bgLines[row] = spliceLineAt(bgLines[row], ovLine, x)
		}
	}
	return strings.Join(bgLines, "\n")
}

// escEnd returns the index just past the ANSI escape sequence beginning at
// runes[i]. A sequence ends at the first ASCII letter after the introducer.
func escEnd(runes []rune, i int) int {
	i++
	for i < len(runes) {
		r := runes[i]
		i++
		if r != '\x1b' && r != '[' && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			break
		}
	}
	return i
}

// spliceLineAt overwrites visibleLen(overlay) columns of bgLine starting at
// visible column x. Escape sequences before the splice are kept, sequences
// inside the covered span are discarded with it, and the tail is kept verbatim.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	var out strings.Builder

	i, col := 0, 0
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			end := escEnd(runes, i)
			out.WriteString(string(runes[i:end]))
			i = end
			continue
		}
		out.WriteRune(runes[i])
		col++
		i++
	}
	for ; col < x; col++ {
		out.WriteByte(' ')
	}

	out.WriteString(overlay)

	covered := visibleLen(overlay)
	for skipped := 0; i < len(runes) && skipped < covered; {
		if runes[i] == '\x1b' {
			i = escEnd(runes, i)
			continue
		}
		skipped++
		i++
	}
	out.WriteString(string(runes[i:]))
	return out.String()
}

// visibleLen counts the columns a string occupies once escape sequences are stripped.
func visibleLen(s string) int {
	runes := []rune(s)
	n := 0
	for i := 0; i < len(runes); {
		if runes[i] == '\x1b' {
			i = escEnd(runes, i)
			continue
		}
		n++
		i++
	}
	return n
}
