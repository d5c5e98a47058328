package utils

import (
	"html/template"
	"strings"
)

// RenderDeedHTML converts composer output to display HTML: the text is
// escaped, then paired ** markers become <b>...</b> and newlines become
// <br>. An unpaired trailing marker stays literal.
func RenderDeedHTML(text string) template.HTML {
	parts := strings.Split(template.HTMLEscapeString(text), "**")

	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			if i == len(parts)-1 && len(parts)%2 == 0 {
				// Odd number of markers: the last one has no pair.
				b.WriteString("**")
			} else if i%2 == 1 {
				b.WriteString("<b>")
			} else {
				b.WriteString("</b>")
			}
		}
		b.WriteString(part)
	}

	return template.HTML(strings.ReplaceAll(b.String(), "\n", "<br>"))
}
