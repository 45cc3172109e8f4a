// Package validation checks the structural shape of application documents
// before their values enter the form store. Field-level business rules live in
// the form validator; this layer only rejects documents that don't look like
// an application at all (wrong types, unknown fields, malformed attachments).
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateApplicationDocument validates raw JSON against the application
// document schema. A schema violation is reported per offending field; an
// error return means the document was not parseable at all.
func ValidateApplicationDocument(data []byte) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(applicationSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	out := &Result{Valid: res.Valid()}
	for _, desc := range res.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}

// applicationSchema mirrors the signup form: every text field is a string,
// consent is a boolean, attachments are {path} objects. additionalProperties
// is off so a typo in a field name fails loudly instead of being dropped.
const applicationSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "applicantRole": {"type": "string", "enum": ["", "FO", "FM", "DGM", "GM"]},
    "agentId": {"type": "string"},
    "fmName": {"type": "string"},
    "roleCode": {"type": "string"},
    "dgmName": {"type": "string"},
    "dgmCode": {"type": "string"},
    "gmName": {"type": "string"},
    "gmCode": {"type": "string"},
    "fullName": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "address": {"type": "string"},
    "guardianName": {"type": "string"},
    "motherName": {"type": "string"},
    "presentAddress": {"type": "string"},
    "permanentAddress": {"type": "string"},
    "dob": {"type": "string"},
    "birthPlace": {"type": "string"},
    "nidNumber": {"type": "string"},
    "bankAccountNumber": {"type": "string"},
    "bankName": {"type": "string"},
    "bankBranchName": {"type": "string"},
    "password": {"type": "string"},
    "confirmPassword": {"type": "string"},
    "agreeTerms": {"type": "boolean"},
    "applicantPhoto": {"$ref": "#/definitions/attachment"},
    "nidDocument": {"$ref": "#/definitions/attachment"},
    "educationCertificate": {"$ref": "#/definitions/attachment"}
  },
  "definitions": {
    "attachment": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "path": {"type": "string", "minLength": 1}
      },
      "required": ["path"]
    }
  }
}`
