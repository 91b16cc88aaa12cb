package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is dropped: goldmark renders without html.WithUnsafe.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML renders note content. Rendering failures fall back to an empty string.
func ToHTML(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return buf.String()
}
