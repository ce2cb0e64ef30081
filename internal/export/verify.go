package export

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// verifyPDF parses the generated document and checks it carries the
// expected number of pages.
func verifyPDF(b []byte, wantPages int) (err error) {
	// the reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unreadable pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	if got := r.NumPage(); got != wantPages {
		return fmt.Errorf("pdf has %d pages, want %d", got, wantPages)
	}
	return nil
}
