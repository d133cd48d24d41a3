package output

import (
	"bytes"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"

	"github.com/trallarn/math-stencil/internal/grid"
)

const (
	htmlHeader = `<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>%TITLE%</title>
  </head>
  <body>
`
	htmlFooter = `
  </body>
</html>
`
)

// blackfriday needs at least three dashes per separator column, and
// operators such as '*' and '_' must not turn into emphasis.
var mdEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, `|`, `\|`)

// RenderHTML converts the markdown worksheet to a sanitized HTML document.
func RenderHTML(h Header, g grid.Grid) ([]byte, error) {
	var md bytes.Buffer
	if err := WriteMarkdownHeader(&md, Header{Title: mdEscaper.Replace(h.Title), Date: h.Date}); err != nil {
		return nil, err
	}
	if err := writeTable(&md, g, "---", mdEscaper.Replace); err != nil {
		return nil, err
	}

	body := blackfriday.Run(md.Bytes(), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	body = bluemonday.UGCPolicy().SanitizeBytes(body)

	var buf bytes.Buffer
	buf.WriteString(strings.Replace(htmlHeader, "%TITLE%", html.EscapeString(h.Title), 1))
	buf.Write(body)
	buf.WriteString(htmlFooter)
	return buf.Bytes(), nil
}

// WriteHTML writes RenderHTML's document to w.
func WriteHTML(w io.Writer, h Header, g grid.Grid) error {
	doc, err := RenderHTML(h, g)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}
