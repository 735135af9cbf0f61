package viewer

import (
	"strings"
	"unicode/utf8"
)

// FormatBox frames a title and body lines in a box-drawing border for the terminal.
//
// Parameters:
//   - title: the heading line
//   - lines: the body lines
//
// Returns:
//   - string: the box, newline terminated
func FormatBox(title string, lines []string) string {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4

	var sb strings.Builder
	row := func(text string) {
		sb.WriteString("║  ")
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", width-2-utf8.RuneCountInString(text)))
		sb.WriteString("║\n")
	}

	sb.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	row(title)
	if len(lines) > 0 {
		sb.WriteString("╠" + strings.Repeat("═", width) + "╣\n")
		for _, l := range lines {
			row(l)
		}
	}
	sb.WriteString("╚" + strings.Repeat("═", width) + "╝\n")
	return sb.String()
}
