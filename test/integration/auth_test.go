package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin_Student(t *testing.T) {
	ts := newServer(t)

	email := helpers.UniqueEmail("student")
	registerBody := map[string]interface{}{
		"email":          email,
		"password":       "Password123",
		"userType":       "STUDENT",
		"firstName":      "Aida",
		"lastName":       "Bekova",
		"university":     "Nazarbayev University",
		"major":          "Computer Science",
		"graduationYear": 2026,
	}

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBody)
	assert.Contains(t, regBody, `"success":true`)
	assert.Contains(t, regBody, `"token"`)
	// The password hash must never appear in a response.
	assert.NotContains(t, regBody, "passwordHash")
	assert.NotContains(t, regBody, "Password123")

	loginRes, loginBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "Password123",
	})
	require.Equal(t, http.StatusOK, loginRes.StatusCode, loginBody)

	var auth struct {
		User struct {
			Email    string `json:"email"`
			UserType string `json:"userType"`
		} `json:"user"`
		Profile struct {
			FirstName string `json:"firstName"`
		} `json:"profile"`
		Token string `json:"token"`
	}
	helpers.DecodeData(t, loginBody, &auth)
	assert.Equal(t, email, auth.User.Email)
	assert.Equal(t, "STUDENT", auth.User.UserType)
	assert.Equal(t, "Aida", auth.Profile.FirstName)
	require.NotEmpty(t, auth.Token)

	meRes, meBody := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, meRes.StatusCode, meBody)
	assert.Contains(t, meBody, email)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	ts := newServer(t)

	email := helpers.UniqueEmail("student")
	helpers.RegisterStudent(t, ts, email)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    strings.ToUpper(email),
		"password": "Password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	ts := newServer(t)

	email := helpers.UniqueEmail("student")
	helpers.RegisterStudent(t, ts, email)

	// Wrong password and unknown email must be indistinguishable.
	wrongRes, wrongBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "WrongPassword1",
	})
	unknownRes, unknownBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    helpers.UniqueEmail("nobody"),
		"password": "Password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Equal(t, wrongBody, unknownBody)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newServer(t)

	email := helpers.UniqueEmail("dup")
	helpers.RegisterStudent(t, ts, email)

	// Same address again, different casing: still a conflict.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":       strings.ToUpper(email),
		"password":    "Password123",
		"userType":    "COMPANY",
		"companyName": "Other Co",
		"industry":    "Retail",
		"location":    "Astana",
		"companySize": "MEDIUM",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "already exists")
}

func TestRegister_RoleSpecificFieldsRequired(t *testing.T) {
	ts := newServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    helpers.UniqueEmail("company"),
		"password": "Password123",
		"userType": "COMPANY",
		// companyName, industry, location, companySize missing
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	env := helpers.DecodeEnvelope(t, body)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Errors), "companyName")
	assert.Contains(t, string(env.Errors), "companySize")
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	ts := newServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":          helpers.UniqueEmail("weak"),
		"password":       "alllowercase",
		"userType":       "STUDENT",
		"firstName":      "A",
		"lastName":       "B",
		"university":     "U",
		"major":          "M",
		"graduationYear": 2026,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "password")
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	ts := newServer(t)

	noToken, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.StatusCode)

	badToken, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, badToken.StatusCode)
}
