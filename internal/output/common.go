package output

import "time"

// Output format names accepted by --format.
const (
	FormatRaw      = "raw"
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// DateLayout is ISO 8601 (calendar date only).
const DateLayout = "2006-01-02"

// CellGap follows every cell in raw text output.
const CellGap = "    "

// Header is what every worksheet prints above the grid.
type Header struct {
	Title string
	Date  time.Time
}

// DateString renders the header date as YYYY-MM-DD.
func (h Header) DateString() string { return h.Date.Format(DateLayout) }
