// internal/receipt/receipt_test.go
package receipt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-intake/internal/form"
)

func newSubmittedState() *form.State {
	st := form.NewStore()
	st.SetField(form.FieldApplicantRole, form.RoleFO)
	st.SetField(form.FieldAgentID, "AG-42")
	st.SetField(form.FieldFullName, "Rahim Uddin")
	st.SetField(form.FieldEmail, "rahim@example.com")
	st.SetField(form.FieldPhone, "+8801711223344")
	st.SetFile(form.FieldApplicantPhoto, &form.FileRef{Filename: "photo.jpg", Content: []byte{1}})
	return st.State()
}

func TestLines_FixedOrderAndSubstitution(t *testing.T) {
	lines := Lines(newSubmittedState())

	// 21 field lines + 3 attachment lines, in fixed order.
	require.Len(t, lines, 24)
	assert.Equal(t, Line{Label: "Applicant Role:", Value: "FO"}, lines[0])
	assert.Equal(t, Line{Label: "Agent ID:", Value: "AG-42"}, lines[1])

	byLabel := map[string]string{}
	for _, l := range lines {
		byLabel[l.Label] = l.Value
	}
	assert.Equal(t, "Rahim Uddin", byLabel["Full Name:"])

	// Empty fields render N/A, never an empty cell.
	assert.Equal(t, "N/A", byLabel["Bank Name:"])
	assert.Equal(t, "N/A", byLabel["Mother Name:"])

	// Attachments are presence flags only.
	assert.Equal(t, "Yes", byLabel["Applicant Photo Provided:"])
	assert.Equal(t, "No", byLabel["NID Upload Provided:"])
	assert.Equal(t, "No", byLabel["Educational Certificate:"])
}

func TestFileName_FallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		agentID  string
		fullName string
		want     string
	}{
		{"agent id wins", "AG-42", "Rahim Uddin", "agent-application-AG-42.pdf"},
		{"full name fallback", "", "Rahim Uddin", "agent-application-Rahim Uddin.pdf"},
		{"literal fallback", "", "", "agent-application-form.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := form.NewStore()
			st.SetField(form.FieldAgentID, tt.agentID)
			st.SetField(form.FieldFullName, tt.fullName)

			assert.Equal(t, tt.want, FileName(st.State()))
		})
	}
}

func TestWriter_WritePDF(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.Write(newSubmittedState())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "agent-application-AG-42.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWriter_WriteFailsOnBadDir(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing", "nested"))

	_, err := w.Write(newSubmittedState())
	assert.Error(t, err)
}
