package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessReview(t *testing.T) {
	tp := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Great game", "<p>Great game</p>"},
		{"emphasis", "*really* **good**", "<p><em>really</em> <strong>good</strong></p>"},
		{"strikethrough", "~~boring~~", "<p><del>boring</del></p>"},
		{"code span", "press `ctrl`", "<p>press <code>ctrl</code></p>"},
		{"raw html is escaped", "<script>alert(1)</script>", "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>"},
		{"headings are not parsed", "# title", "<p># title</p>"},
		{"links are not parsed", "[x](javascript:alert(1))", "<p>[x](javascript:alert(1))</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tp.ProcessReview(tt.input)))
		})
	}
}
