package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `json:"password" validate:"required,min=8,password-strength"`
}

func TestPasswordStrength(t *testing.T) {
	v := New()

	cases := []struct {
		password string
		valid    bool
	}{
		{"Password123", true},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
		{"Sh0rt", false},
	}

	for _, tc := range cases {
		err := v.Validate(passwordPayload{Password: tc.password})
		if tc.valid {
			assert.NoError(t, err, "password %q", tc.password)
		} else {
			assert.Error(t, err, "password %q", tc.password)
		}
	}
}

type rolePayload struct {
	UserType string `json:"userType" validate:"required,is-user-role"`
}

func TestUserRoleRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(rolePayload{UserType: "STUDENT"}))
	assert.NoError(t, v.Validate(rolePayload{UserType: "COMPANY"}))
	assert.Error(t, v.Validate(rolePayload{UserType: "ADMIN"}))
	assert.Error(t, v.Validate(rolePayload{UserType: "student?"}))
}

type statusPayload struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	// Decisions only: PENDING cannot be set through the API.
	assert.NoError(t, v.Validate(statusPayload{Status: "ACCEPTED"}))
	assert.NoError(t, v.Validate(statusPayload{Status: "REJECTED"}))
	assert.NoError(t, v.Validate(statusPayload{Status: "accepted"}))
	assert.Error(t, v.Validate(statusPayload{Status: "PENDING"}))
	assert.Error(t, v.Validate(statusPayload{Status: "MAYBE"}))
}

type sizePayload struct {
	CompanySize string `json:"companySize" validate:"required,is-company-size"`
}

func TestCompanySizeRule(t *testing.T) {
	v := New()

	for _, size := range []string{"STARTUP", "SMALL", "MEDIUM", "LARGE", "ENTERPRISE"} {
		assert.NoError(t, v.Validate(sizePayload{CompanySize: size}))
	}
	assert.Error(t, v.Validate(sizePayload{CompanySize: "HUGE"}))
}

func TestValidationError_UsesJSONFieldNames(t *testing.T) {
	v := New()

	type payload struct {
		FirstName string `json:"firstName" validate:"required"`
	}

	err := v.Validate(payload{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "firstName")
	assert.NotContains(t, vErr.Errors, "FirstName")
}
