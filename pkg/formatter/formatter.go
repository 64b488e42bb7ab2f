package formatter

import (
	"strconv"
	"strings"
)

// Count is a labelled tally, rendered as "label 1,234".
type Count struct {
	Label string
	N     int64
}

// FormatCount renders n with commas as thousands separators: 1234567 -> "1,234,567".
func FormatCount(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatCounts joins the tallies with ", ".
func FormatCounts(counts ...Count) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, c.Label+" "+FormatCount(c.N))
	}
	return strings.Join(parts, ", ")
}

var markdownV2 = strings.NewReplacer(
	"_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`,
	"~", `\~`, "`", "\\`", ">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`,
	"=", `\=`, "|", `\|`, "{", `\{`, "}", `\}`, ".", `\.`, "!", `\!`,
	`\`, `\\`,
)

// EscapeMarkdownV2 escapes every character telegram reserves in MarkdownV2.
func EscapeMarkdownV2(s string) string {
	return markdownV2.Replace(s)
}
