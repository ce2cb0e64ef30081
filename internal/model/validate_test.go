package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDocument() Document {
	d := NewDocument()
	d.PersonalInfo.FullName = "Jane Doe"
	d.PersonalInfo.JobTitle = "Engineer"
	return d
}

func TestValidateCompleteDocument(t *testing.T) {
	errs, err := Validate(completeDocument())
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestValidateRequiredIdentityFields(t *testing.T) {
	errs, err := Validate(NewDocument())
	require.NoError(t, err)
	assert.Equal(t, "Full name is required", errs.Message("personalInfo.fullName"))
	assert.Equal(t, "Job title is required", errs.Message("personalInfo.jobTitle"))
	assert.Empty(t, errs.Message("personalInfo.email"), "empty email is valid")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "", valid: true},
		{email: "jane@example.com", valid: true},
		{email: "not-an-email", valid: false},
		{email: "jane@", valid: false},
		{email: "jane.doe@mail.example.co.uk", valid: true},
		{email: "Jane Doe <jane@example.com>", valid: false},
		{email: "<jane@example.com>", valid: false},
		{email: "jane@localhost", valid: false},
		{email: "jane.doe@example", valid: false},
		{email: "jane@example.", valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			d := completeDocument()
			d.PersonalInfo.Email = tc.email
			errs, err := Validate(d)
			require.NoError(t, err)
			if tc.valid {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1, "email errors stay scoped to the email field")
			assert.Equal(t, "personalInfo.email", errs[0].Field)
			assert.Equal(t, "Invalid email address", errs[0].Message)
		})
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{{Field: "personalInfo.fullName", Message: "Full name is required"}}
	assert.Contains(t, errs.Error(), "personalInfo.fullName: Full name is required")
}
