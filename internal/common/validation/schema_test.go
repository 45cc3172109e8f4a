// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateApplicationDocument(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{
			name:  "minimal valid document",
			doc:   `{"fullName": "Rahim Uddin", "agreeTerms": true}`,
			valid: true,
		},
		{
			name: "attachment with path",
			doc:  `{"applicantPhoto": {"path": "photo.jpg"}}`,
			valid: true,
		},
		{
			name:  "unknown field rejected",
			doc:   `{"fullNmae": "typo"}`,
			valid: false,
		},
		{
			name:  "wrong type for consent",
			doc:   `{"agreeTerms": "yes"}`,
			valid: false,
		},
		{
			name:  "invalid role",
			doc:   `{"applicantRole": "CEO"}`,
			valid: false,
		},
		{
			name:  "attachment missing path",
			doc:   `{"nidDocument": {}}`,
			valid: false,
		},
		{
			name:  "empty attachment path",
			doc:   `{"nidDocument": {"path": ""}}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateApplicationDocument([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.NotEmpty(t, res.Errors)
			}
		})
	}
}

func TestValidateApplicationDocument_Unparseable(t *testing.T) {
	_, err := ValidateApplicationDocument([]byte("{not json"))
	assert.Error(t, err)
}
