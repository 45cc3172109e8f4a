// internal/form/fields.go
package form

// Field identifies a single application form field. Fields are a fixed
// enumerated set; the error map and the multipart payload are keyed by Field,
// never by free-form strings.
type Field string

const (
	FieldApplicantRole     Field = "applicantRole"
	FieldAgentID           Field = "agentId"
	FieldFMName            Field = "fmName"
	FieldRoleCode          Field = "roleCode"
	FieldDGMName           Field = "dgmName"
	FieldDGMCode           Field = "dgmCode"
	FieldGMName            Field = "gmName"
	FieldGMCode            Field = "gmCode"
	FieldFullName          Field = "fullName"
	FieldEmail             Field = "email"
	FieldPhone             Field = "phone"
	FieldAddress           Field = "address"
	FieldGuardianName      Field = "guardianName"
	FieldMotherName        Field = "motherName"
	FieldPresentAddress    Field = "presentAddress"
	FieldPermanentAddress  Field = "permanentAddress"
	FieldDOB               Field = "dob"
	FieldBirthPlace        Field = "birthPlace"
	FieldNIDNumber         Field = "nidNumber"
	FieldBankAccountNumber Field = "bankAccountNumber"
	FieldBankName          Field = "bankName"
	FieldBankBranchName    Field = "bankBranchName"
	FieldPassword          Field = "password"
	FieldConfirmPassword   Field = "confirmPassword"

	FieldApplicantPhoto       Field = "applicantPhoto"
	FieldNIDDocument          Field = "nidDocument"
	FieldEducationCertificate Field = "educationCertificate"

	FieldAgreeTerms Field = "agreeTerms"

	// FieldGeneral is the reserved slot for whole-submission errors that are
	// not attributable to a single field.
	FieldGeneral Field = "general"
)

// ApplicantRole values accepted by the role selector.
const (
	RoleFO  = "FO"
	RoleFM  = "FM"
	RoleDGM = "DGM"
	RoleGM  = "GM"
)

// stringFields is the canonical ordering of the text fields, used by the
// multipart payload and the receipt.
var stringFields = []Field{
	FieldApplicantRole,
	FieldAgentID,
	FieldFMName,
	FieldRoleCode,
	FieldDGMName,
	FieldDGMCode,
	FieldGMName,
	FieldGMCode,
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldGuardianName,
	FieldMotherName,
	FieldPresentAddress,
	FieldPermanentAddress,
	FieldDOB,
	FieldBirthPlace,
	FieldNIDNumber,
	FieldBankAccountNumber,
	FieldBankName,
	FieldBankBranchName,
	FieldPassword,
	FieldConfirmPassword,
}

var fileFields = []Field{
	FieldApplicantPhoto,
	FieldNIDDocument,
	FieldEducationCertificate,
}

// StringFields returns the ordered text fields.
func StringFields() []Field {
	out := make([]Field, len(stringFields))
	copy(out, stringFields)
	return out
}

// FileFields returns the ordered attachment fields.
func FileFields() []Field {
	out := make([]Field, len(fileFields))
	copy(out, fileFields)
	return out
}

// IsStringField reports whether f is one of the text fields.
func IsStringField(f Field) bool {
	for _, sf := range stringFields {
		if sf == f {
			return true
		}
	}
	return false
}

// IsFileField reports whether f is one of the attachment fields.
func IsFileField(f Field) bool {
	for _, ff := range fileFields {
		if ff == f {
			return true
		}
	}
	return false
}
