package helpers

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"internhub_backend/internal/models"

	"github.com/stretchr/testify/require"
)

var emailSeq atomic.Int64

// UniqueEmail returns a fresh address for fixture users.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, emailSeq.Add(1))
}

type registeredUser struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

// RegisterStudent creates a student through the public API and returns the
// bearer token plus the new user id.
func RegisterStudent(t *testing.T, ts *TestServer, email string) (string, string) {
	t.Helper()

	body := map[string]interface{}{
		"email":          email,
		"password":       "Password123",
		"userType":       "STUDENT",
		"firstName":      "Test",
		"lastName":       "Student",
		"university":     "Test University",
		"major":          "Computer Science",
		"graduationYear": 2026,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "student registration failed: %s", bodyStr)

	var reg registeredUser
	DecodeData(t, bodyStr, &reg)
	require.NotEmpty(t, reg.Token)
	require.NotEmpty(t, reg.User.ID)

	return reg.Token, reg.User.ID
}

// RegisterCompany creates a company through the public API and returns the
// bearer token plus the new user id.
func RegisterCompany(t *testing.T, ts *TestServer, email string) (string, string) {
	t.Helper()

	body := map[string]interface{}{
		"email":       email,
		"password":    "Password123",
		"userType":    "COMPANY",
		"companyName": "Test Company Inc.",
		"industry":    "Software",
		"location":    "Berlin",
		"companySize": "SMALL",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "company registration failed: %s", bodyStr)

	var reg registeredUser
	DecodeData(t, bodyStr, &reg)
	require.NotEmpty(t, reg.Token)
	require.NotEmpty(t, reg.User.ID)

	return reg.Token, reg.User.ID
}

// CreateInternship posts a listing as the given company and returns its id.
func CreateInternship(t *testing.T, ts *TestServer, companyToken, title, location string) string {
	t.Helper()

	body := map[string]interface{}{
		"title":        title,
		"description":  "Work on real projects with our engineering team.",
		"location":     location,
		"requirements": []string{"Go", "SQL"},
		"duration":     "3 months",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/internships", companyToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "internship creation failed: %s", bodyStr)

	var internship models.Internship
	DecodeData(t, bodyStr, &internship)
	require.NotEmpty(t, internship.ID)

	return internship.ID
}

// ApplyToInternship applies the student to the internship and returns the
// application id.
func ApplyToInternship(t *testing.T, ts *TestServer, studentToken, internshipID string) string {
	t.Helper()

	body := map[string]interface{}{
		"internshipId": internshipID,
		"coverLetter":  "I would love to join.",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", studentToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "application failed: %s", bodyStr)

	var application models.Application
	DecodeData(t, bodyStr, &application)
	require.NotEmpty(t, application.ID)

	return application.ID
}
