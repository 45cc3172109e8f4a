// internal/form/validate.go
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Predefined patterns
var (
	// No whitespace on either side of the @, at least one dot in the domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Everything except digits and '+' is stripped before length checks.
	phoneStripRegex = regexp.MustCompile(`[^\d+]`)
	nonDigitRegex   = regexp.MustCompile(`\D`)

	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// requiredStringFields are the fields whose only rule is non-empty after
// trimming, with the message shown for each.
var requiredStringFields = []struct {
	field   Field
	message string
}{
	{FieldApplicantRole, "Applicant role is required"},
	{FieldAgentID, "Agent ID is required"},
	{FieldFMName, "F.M Name is required"},
	{FieldRoleCode, "Role code is required"},
	{FieldDGMName, "D.G.M Name is required"},
	{FieldDGMCode, "D.G.M Code is required"},
	{FieldGMName, "G.M Name is required"},
	{FieldGMCode, "G.M Code is required"},
	{FieldAddress, "Address is required"},
	{FieldGuardianName, "Father/Husband's name is required"},
	{FieldMotherName, "Mother's name is required"},
	{FieldPresentAddress, "Present address is required"},
	{FieldPermanentAddress, "Permanent address is required"},
	{FieldDOB, "Date of birth is required"},
	{FieldBirthPlace, "Birth place is required"},
	{FieldBankAccountNumber, "Account number is required"},
	{FieldBankName, "Bank name is required"},
	{FieldBankBranchName, "Branch name is required"},
}

var requiredFileFields = []struct {
	field   Field
	message string
}{
	{FieldApplicantPhoto, "Applicant image is required"},
	{FieldNIDDocument, "NID upload is required"},
	{FieldEducationCertificate, "Educational certificate is required"},
}

// Validate applies every field rule independently over the raw values and
// returns the resulting error map. Pure and total: no side effects, always
// returns. An empty map is the definition of "valid".
func Validate(s *State) ErrorMap {
	errs := ErrorMap{}

	for _, r := range requiredStringFields {
		if strings.TrimSpace(s.Value(r.field)) == "" {
			errs[r.field] = r.message
		}
	}

	if fullName := strings.TrimSpace(s.Value(FieldFullName)); fullName == "" {
		errs[FieldFullName] = "Full name is required"
	} else if utf8.RuneCountInString(fullName) < 3 {
		errs[FieldFullName] = "Name must be at least 3 characters"
	}

	if email := s.Value(FieldEmail); strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailRegex.MatchString(email) {
		errs[FieldEmail] = "Please enter a valid email address"
	}

	if phone := phoneStripRegex.ReplaceAllString(s.Value(FieldPhone), ""); phone == "" {
		errs[FieldPhone] = "Phone number is required"
	} else if len(phone) < 8 {
		errs[FieldPhone] = "Please enter a valid phone number (min 8 digits)"
	}

	if nid := strings.TrimSpace(s.Value(FieldNIDNumber)); nid == "" {
		errs[FieldNIDNumber] = "NID number is required"
	} else if len(nonDigitRegex.ReplaceAllString(nid, "")) < 10 {
		errs[FieldNIDNumber] = "Please enter a valid NID number"
	}

	for _, r := range requiredFileFields {
		if s.File(r.field) == nil {
			errs[r.field] = r.message
		}
	}

	password := s.Value(FieldPassword)
	switch {
	case password == "":
		errs[FieldPassword] = "Password is required"
	case len(password) < 8:
		errs[FieldPassword] = "Password must be at least 8 characters"
	case !lowerRegex.MatchString(password) ||
		!upperRegex.MatchString(password) ||
		!digitRegex.MatchString(password):
		errs[FieldPassword] = "Password must contain uppercase, lowercase, and number"
	}

	if confirm := s.Value(FieldConfirmPassword); confirm == "" {
		errs[FieldConfirmPassword] = "Please confirm your password"
	} else if confirm != password {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	if !s.AgreeTerms() {
		errs[FieldAgreeTerms] = "You must agree to the terms and conditions"
	}

	return errs
}
