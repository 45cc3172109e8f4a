// internal/models/application.go
package models

import (
	"encoding/json"
	"path/filepath"

	apperrors "agent-intake/internal/common/errors"
	"agent-intake/internal/form"
)

// Attachment references a local file to upload with the application.
type Attachment struct {
	Path string `json:"path"`
}

// Application is the on-disk JSON document the CLI reads. Field names match
// the wire field names exactly; attachments are file references resolved at
// populate time.
type Application struct {
	ApplicantRole     string `json:"applicantRole"`
	AgentID           string `json:"agentId"`
	FMName            string `json:"fmName"`
	RoleCode          string `json:"roleCode"`
	DGMName           string `json:"dgmName"`
	DGMCode           string `json:"dgmCode"`
	GMName            string `json:"gmName"`
	GMCode            string `json:"gmCode"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	GuardianName      string `json:"guardianName"`
	MotherName        string `json:"motherName"`
	PresentAddress    string `json:"presentAddress"`
	PermanentAddress  string `json:"permanentAddress"`
	DOB               string `json:"dob"`
	BirthPlace        string `json:"birthPlace"`
	NIDNumber         string `json:"nidNumber"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankName          string `json:"bankName"`
	BankBranchName    string `json:"bankBranchName"`
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirmPassword"`

	ApplicantPhoto       *Attachment `json:"applicantPhoto,omitempty"`
	NIDDocument          *Attachment `json:"nidDocument,omitempty"`
	EducationCertificate *Attachment `json:"educationCertificate,omitempty"`

	AgreeTerms bool `json:"agreeTerms"`
}

// ParseApplication decodes an application document.
func ParseApplication(data []byte) (*Application, error) {
	var app Application
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, apperrors.NewInvalidDocumentError(err.Error())
	}
	return &app, nil
}

// FileReader loads attachment bytes; os.ReadFile in production, a fake in tests.
type FileReader func(path string) ([]byte, error)

// Populate copies the document into the form store, loading each referenced
// attachment through readFile. Missing attachment references stay absent.
func (a *Application) Populate(st *form.Store, readFile FileReader) error {
	st.SetField(form.FieldApplicantRole, a.ApplicantRole)
	st.SetField(form.FieldAgentID, a.AgentID)
	st.SetField(form.FieldFMName, a.FMName)
	st.SetField(form.FieldRoleCode, a.RoleCode)
	st.SetField(form.FieldDGMName, a.DGMName)
	st.SetField(form.FieldDGMCode, a.DGMCode)
	st.SetField(form.FieldGMName, a.GMName)
	st.SetField(form.FieldGMCode, a.GMCode)
	st.SetField(form.FieldFullName, a.FullName)
	st.SetField(form.FieldEmail, a.Email)
	st.SetField(form.FieldPhone, a.Phone)
	st.SetField(form.FieldAddress, a.Address)
	st.SetField(form.FieldGuardianName, a.GuardianName)
	st.SetField(form.FieldMotherName, a.MotherName)
	st.SetField(form.FieldPresentAddress, a.PresentAddress)
	st.SetField(form.FieldPermanentAddress, a.PermanentAddress)
	st.SetField(form.FieldDOB, a.DOB)
	st.SetField(form.FieldBirthPlace, a.BirthPlace)
	st.SetField(form.FieldNIDNumber, a.NIDNumber)
	st.SetField(form.FieldBankAccountNumber, a.BankAccountNumber)
	st.SetField(form.FieldBankName, a.BankName)
	st.SetField(form.FieldBankBranchName, a.BankBranchName)
	st.SetField(form.FieldPassword, a.Password)
	st.SetField(form.FieldConfirmPassword, a.ConfirmPassword)
	st.SetAgreeTerms(a.AgreeTerms)

	attachments := []struct {
		field form.Field
		ref   *Attachment
	}{
		{form.FieldApplicantPhoto, a.ApplicantPhoto},
		{form.FieldNIDDocument, a.NIDDocument},
		{form.FieldEducationCertificate, a.EducationCertificate},
	}
	for _, att := range attachments {
		if att.ref == nil {
			continue
		}
		content, err := readFile(att.ref.Path)
		if err != nil {
			return apperrors.NewAttachmentReadError(att.ref.Path, err)
		}
		st.SetFile(att.field, &form.FileRef{
			Filename: filepath.Base(att.ref.Path),
			Content:  content,
		})
	}

	return nil
}
