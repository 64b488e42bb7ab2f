package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whispr-campus/whispr/pkg/formatter"
)

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		12345:    "12,345",
		1234567:  "1,234,567",
		-1234:    "-1,234",
		-100:     "-100",
		100000:   "100,000",
		-1000000: "-1,000,000",
	}
	for n, want := range cases {
		assert.Equal(t, want, formatter.FormatCount(n), "n=%d", n)
	}
}

func TestFormatCounts(t *testing.T) {
	got := formatter.FormatCounts(
		formatter.Count{Label: "posts", N: 1200},
		formatter.Count{Label: "comments", N: 3},
	)
	assert.Equal(t, "posts 1,200, comments 3", got)
	assert.Empty(t, formatter.FormatCounts())
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, "plain words: ok", formatter.EscapeMarkdownV2("plain words: ok"))
	assert.Equal(t, `posts 1,200\. done\!`, formatter.EscapeMarkdownV2("posts 1,200. done!"))
	assert.Equal(t, `a\_b \*c\* \[x\]\(y\)`, formatter.EscapeMarkdownV2("a_b *c* [x](y)"))
	assert.Equal(t, `\\`, formatter.EscapeMarkdownV2(`\`))
}
