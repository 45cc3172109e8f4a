// internal/receipt/lines.go
package receipt

import "agent-intake/internal/form"

// Organization header printed at the top of every receipt.
const (
	OrgName  = "Bright Life Bangladesh Ltd."
	DocTitle = "Agent Application Form"
)

// Line is one labeled entry of the receipt body.
type Line struct {
	Label string
	Value string
}

// fieldLines fixes the order and labels of the field dump. The official
// mailing address is intentionally not part of the printed receipt.
var fieldLines = []struct {
	label string
	field form.Field
}{
	{"Applicant Role:", form.FieldApplicantRole},
	{"Agent ID:", form.FieldAgentID},
	{"F.M Name:", form.FieldFMName},
	{"Role Code:", form.FieldRoleCode},
	{"D.G.M Name:", form.FieldDGMName},
	{"D.G.M Code:", form.FieldDGMCode},
	{"G.M Name:", form.FieldGMName},
	{"G.M Code:", form.FieldGMCode},
	{"Full Name:", form.FieldFullName},
	{"Email:", form.FieldEmail},
	{"Phone:", form.FieldPhone},
	{"Guardian/Father/Spouse:", form.FieldGuardianName},
	{"Mother Name:", form.FieldMotherName},
	{"Present Address:", form.FieldPresentAddress},
	{"Permanent Address:", form.FieldPermanentAddress},
	{"Date of Birth:", form.FieldDOB},
	{"Birth Place:", form.FieldBirthPlace},
	{"NID Number:", form.FieldNIDNumber},
	{"Bank Account No:", form.FieldBankAccountNumber},
	{"Bank Name:", form.FieldBankName},
	{"Branch Name:", form.FieldBankBranchName},
}

var attachmentLines = []struct {
	label string
	field form.Field
}{
	{"Applicant Photo Provided:", form.FieldApplicantPhoto},
	{"NID Upload Provided:", form.FieldNIDDocument},
	{"Educational Certificate:", form.FieldEducationCertificate},
}

// Lines assembles the receipt body in fixed order. Empty values render as
// "N/A"; attachments render Yes/No for presence only, never the file bytes.
func Lines(s *form.State) []Line {
	out := make([]Line, 0, len(fieldLines)+len(attachmentLines))

	for _, fl := range fieldLines {
		value := s.Value(fl.field)
		if value == "" {
			value = "N/A"
		}
		out = append(out, Line{Label: fl.label, Value: value})
	}

	for _, al := range attachmentLines {
		value := "No"
		if s.File(al.field) != nil {
			value = "Yes"
		}
		out = append(out, Line{Label: al.label, Value: value})
	}

	return out
}

// FileName derives the receipt file name: agent ID if present, else the full
// name, else the literal "form".
func FileName(s *form.State) string {
	token := s.Value(form.FieldAgentID)
	if token == "" {
		token = s.Value(form.FieldFullName)
	}
	if token == "" {
		token = "form"
	}
	return "agent-application-" + token + ".pdf"
}
