package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/swapnilm/prepkit/internal/session"
)

// ErrUnavailable marks a failed PDF render. Callers degrade to the JSON
// export instead of failing the whole flow.
var ErrUnavailable = errors.New("pdf export unavailable")

// ToPDF renders answers as a paginated PDF: a numbered question line
// followed by a numbered answer line per record, with a blank separator.
// Page overflow starts a new page; content is never truncated.
func ToPDF(answers []session.AnswerRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	// Core fonts are cp1252; translate so non-ASCII answers don't come out
	// as mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, rec := range answers {
		pdf.MultiCell(0, 10, tr(fmt.Sprintf("Q%d: %s", i+1, rec.Question)), "", "", false)
		pdf.MultiCell(0, 10, tr(fmt.Sprintf("A%d: %s", i+1, rec.Answer)), "", "", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return buf.Bytes(), nil
}
