// pkg/extract/pdf.go

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts all text from a PDF file, tagging page boundaries.
// A module with failed extraction is still usable, so callers treat an
// error as "no text" rather than failing the upload.
func PDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n", i)
		b.WriteString(text)
	}
	return b.String(), nil
}
