package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/law-makers/salesurl/pkg/models"
)

// MarshalJSON renders the profile requests as a 2-space indented JSON array
// followed by a newline. HTML characters are not escaped, so query strings
// with '&' come out as they went in. An empty or nil document renders as [].
func MarshalJSON(doc []models.ProfileRequest) ([]byte, error) {
	if doc == nil {
		doc = []models.ProfileRequest{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveJSON overwrites filepath with the rendered document.
// Rendering happens before the file is touched, so an encoding failure leaves it as it was.
func SaveJSON(doc []models.ProfileRequest, filepath string) error {
	content, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}

// PrintJSON writes the rendered document to w.
func PrintJSON(w io.Writer, doc []models.ProfileRequest) error {
	content, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}
