package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDeedHTMLBoldPairs(t *testing.T) {
	got := string(RenderDeedHTML("சொத்து **ராமன்** என்பவருக்கு"))
	assert.Equal(t, "சொத்து <b>ராமன்</b> என்பவருக்கு", got)
}

func TestRenderDeedHTMLMultiplePairs(t *testing.T) {
	got := string(RenderDeedHTML("**a** and **b**"))
	assert.Equal(t, "<b>a</b> and <b>b</b>", got)
}

func TestRenderDeedHTMLUnpairedMarkerStaysLiteral(t *testing.T) {
	got := string(RenderDeedHTML("**bold** then **dangling"))
	assert.Equal(t, "<b>bold</b> then **dangling", got)
}

func TestRenderDeedHTMLNewlines(t *testing.T) {
	got := string(RenderDeedHTML("first\n\nsecond"))
	assert.Equal(t, "first<br><br>second", got)
}

func TestRenderDeedHTMLEscapesMarkup(t *testing.T) {
	got := string(RenderDeedHTML("<script>alert(1)</script> **x**"))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "<b>x</b>")
}

func TestRenderDeedHTMLPlainText(t *testing.T) {
	got := string(RenderDeedHTML("no markup here"))
	assert.Equal(t, "no markup here", got)
}
