// internal/submit/payload.go
package submit

import (
	"bytes"
	"mime/multipart"

	"agent-intake/internal/form"
)

// BuildPayload assembles the multipart request body for one application.
// Every text field is written as a text part in canonical order, the consent
// flag is serialized as the literal "true"/"false", and each selected
// attachment becomes a binary part under its field name. Absent attachments
// are omitted entirely, never sent as empty parts.
func BuildPayload(s *form.State) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range form.StringFields() {
		if err := w.WriteField(string(f), s.Value(f)); err != nil {
			return nil, "", err
		}
	}

	agree := "false"
	if s.AgreeTerms() {
		agree = "true"
	}
	if err := w.WriteField(string(form.FieldAgreeTerms), agree); err != nil {
		return nil, "", err
	}

	for _, f := range form.FileFields() {
		ref := s.File(f)
		if ref == nil {
			continue
		}
		part, err := w.CreateFormFile(string(f), ref.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(ref.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
