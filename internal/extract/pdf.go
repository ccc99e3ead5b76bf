package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts plain text from PDF documents.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

// Text concatenates the plain text of every page. Pages that fail to decode
// are skipped; a resume with at least one readable page still yields text,
// and a fully unreadable document surfaces as empty text downstream.
func (p *PDF) Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}
