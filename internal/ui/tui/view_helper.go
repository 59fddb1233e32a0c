package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/solidlab/internal/domain"
)

const maxDescriptionLen = 60

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func bookDescription(b domain.Book) string {
	author := strings.TrimSpace(b.Author)
	if author == "" {
		author = "unknown author"
	}
	return clampString(fmt.Sprintf("%s · %d", author, b.Year), maxDescriptionLen)
}

// renderDemo styles heading lines (ending in ':') apart from start lines.
func renderDemo(th Theme, lines []string) string {
	if len(lines) == 0 {
		return "(nothing started yet)"
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch {
		case l == "":
			out = append(out, "")
		case strings.HasSuffix(l, ":"):
			out = append(out, th.Region.Render(l))
		default:
			out = append(out, th.Started.Render(l))
		}
	}
	return strings.Join(out, "\n")
}
