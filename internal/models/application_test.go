// internal/models/application_test.go
package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agent-intake/internal/common/errors"
	"agent-intake/internal/form"
)

const sampleDocument = `{
  "applicantRole": "FO",
  "agentId": "AG-42",
  "fullName": "Rahim Uddin",
  "email": "rahim@example.com",
  "phone": "+8801711223344",
  "agreeTerms": true,
  "applicantPhoto": {"path": "/uploads/photo.jpg"}
}`

func TestParseApplication(t *testing.T) {
	app, err := ParseApplication([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "FO", app.ApplicantRole)
	assert.Equal(t, "AG-42", app.AgentID)
	assert.Equal(t, "Rahim Uddin", app.FullName)
	assert.True(t, app.AgreeTerms)
	require.NotNil(t, app.ApplicantPhoto)
	assert.Equal(t, "/uploads/photo.jpg", app.ApplicantPhoto.Path)
	assert.Nil(t, app.NIDDocument)
}

func TestParseApplication_Malformed(t *testing.T) {
	_, err := ParseApplication([]byte("{not json"))
	require.Error(t, err)

	se, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidDocument, se.Code)
}

func TestPopulate(t *testing.T) {
	app, err := ParseApplication([]byte(sampleDocument))
	require.NoError(t, err)

	reads := map[string][]byte{
		"/uploads/photo.jpg": {0xFF, 0xD8},
	}
	readFile := func(path string) ([]byte, error) {
		data, ok := reads[path]
		if !ok {
			return nil, errors.New("no such file")
		}
		return data, nil
	}

	st := form.NewStore()
	require.NoError(t, app.Populate(st, readFile))

	s := st.State()
	assert.Equal(t, "Rahim Uddin", s.Value(form.FieldFullName))
	assert.Equal(t, "+8801711223344", s.Value(form.FieldPhone))
	assert.True(t, s.AgreeTerms())

	photo := s.File(form.FieldApplicantPhoto)
	require.NotNil(t, photo)
	assert.Equal(t, "photo.jpg", photo.Filename)
	assert.Equal(t, []byte{0xFF, 0xD8}, photo.Content)

	assert.Nil(t, s.File(form.FieldNIDDocument))
}

func TestPopulate_AttachmentReadFailure(t *testing.T) {
	app := &Application{
		FullName:    "Rahim Uddin",
		NIDDocument: &Attachment{Path: "/missing/nid.pdf"},
	}

	readFile := func(string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}

	err := app.Populate(form.NewStore(), readFile)
	require.Error(t, err)

	se, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeAttachmentRead, se.Code)
	assert.Contains(t, se.Details, "/missing/nid.pdf")
}
