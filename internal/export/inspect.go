package export

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// Info summarizes a rendered PDF.
type Info struct {
	Pages int
	Text  string
}

// Inspect reads a PDF back and extracts its page count and plain text.
func Inspect(data []byte) (Info, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Info{}, err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return Info{}, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Info{}, err
	}
	return Info{Pages: reader.NumPage(), Text: buf.String()}, nil
}
