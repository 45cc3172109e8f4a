// internal/content/content_test.go
package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMembers(t *testing.T) {
	members := TeamMembers()

	require.Len(t, members, 8)
	assert.Equal(t, "Lion Muhammad Main Uddin", members[0].Name)
	assert.Equal(t, "CEO & Founder", members[0].Title)

	for _, m := range members {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Title)
	}

	// Callers get a copy, not the package slice.
	members[0].Name = "mutated"
	assert.Equal(t, "Lion Muhammad Main Uddin", TeamMembers()[0].Name)
}

func TestHospitalPartners(t *testing.T) {
	partners := HospitalPartners()

	require.Len(t, partners, 25)
	assert.Equal(t, "Hospital Partner 01", partners[0].Name)
	assert.Equal(t, "Hospital Partner 25", partners[24].Name)

	// Descriptions rotate through the pool.
	assert.Equal(t, partners[0].Description, partners[4].Description)
	assert.NotEqual(t, partners[0].Description, partners[1].Description)
}
