// internal/form/state_test.go
package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState_StringFieldsDefaultEmpty(t *testing.T) {
	s := NewState()

	for _, f := range StringFields() {
		assert.Equal(t, "", s.Value(f))
	}
	for _, f := range FileFields() {
		assert.Nil(t, s.File(f))
	}
	assert.False(t, s.AgreeTerms())
}

func TestStore_EditClearsFieldError(t *testing.T) {
	st := NewStore()
	st.SetErrors(ErrorMap{
		FieldEmail: "Email is required",
		FieldPhone: "Phone number is required",
	})

	st.SetField(FieldEmail, "someone@example.com")

	errs := st.Errors()
	assert.NotContains(t, errs, FieldEmail)
	assert.Contains(t, errs, FieldPhone)
}

func TestStore_FileEditClearsFieldError(t *testing.T) {
	st := NewStore()
	st.SetErrors(ErrorMap{FieldApplicantPhoto: "Applicant image is required"})

	st.SetFile(FieldApplicantPhoto, &FileRef{Filename: "me.png", Content: []byte{1}})

	assert.Empty(t, st.Errors())
}

func TestStore_EditDoesNotClearGeneralError(t *testing.T) {
	st := NewStore()
	st.SetGeneralError("Agent ID already exists")

	st.SetField(FieldAgentID, "AG-2002")
	st.SetAgreeTerms(true)

	// Only per-field slots are cleared on edit; general survives until the
	// next submit attempt.
	assert.Equal(t, "Agent ID already exists", st.Errors()[FieldGeneral])
}

func TestStore_SetErrorsReplacesWholesale(t *testing.T) {
	st := NewStore()
	st.SetErrors(ErrorMap{FieldEmail: "Email is required"})

	st.SetErrors(ErrorMap{FieldPhone: "Phone number is required"})

	errs := st.Errors()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, FieldPhone)
}

func TestStore_ErrorsReturnsCopy(t *testing.T) {
	st := NewStore()
	st.SetErrors(ErrorMap{FieldEmail: "Email is required"})

	errs := st.Errors()
	delete(errs, FieldEmail)

	assert.Contains(t, st.Errors(), FieldEmail)
}

func TestStore_SetFileNilRemovesAttachment(t *testing.T) {
	st := NewStore()
	st.SetFile(FieldNIDDocument, &FileRef{Filename: "nid.pdf", Content: []byte{1}})

	st.SetFile(FieldNIDDocument, nil)

	assert.Nil(t, st.State().File(FieldNIDDocument))
}
