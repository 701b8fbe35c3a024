package integration_test

import (
	"net/http"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationFlow(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))
	internshipID := helpers.CreateInternship(t, ts, companyToken, "Backend Intern", "Berlin")

	// Before applying, the status check answers hasApplied=false.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/status/"+internshipID, studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var check struct {
		HasApplied bool `json:"hasApplied"`
	}
	helpers.DecodeData(t, body, &check)
	assert.False(t, check.HasApplied)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", studentToken, map[string]interface{}{
		"internshipId": internshipID,
		"coverLetter":  "Please hire me.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Status          string `json:"status"`
		InternshipTitle string `json:"internshipTitle"`
		CompanyName     string `json:"companyName"`
	}
	helpers.DecodeData(t, body, &created)
	assert.Equal(t, "PENDING", created.Status)
	assert.Equal(t, "Backend Intern", created.InternshipTitle)
	assert.Equal(t, "Test Company Inc.", created.CompanyName)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/status/"+internshipID, studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeData(t, body, &check)
	assert.True(t, check.HasApplied)
}

func TestApply_DuplicateConflict(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))
	internshipID := helpers.CreateInternship(t, ts, companyToken, "Backend Intern", "Berlin")

	helpers.ApplyToInternship(t, ts, studentToken, internshipID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", studentToken, map[string]interface{}{
		"internshipId": internshipID,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "already applied")
}

func TestApply_InactiveOrMissingInternship(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))
	internshipID := helpers.CreateInternship(t, ts, companyToken, "Closing", "Berlin")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/internships/"+internshipID, companyToken, map[string]interface{}{
		"title":        "Closing",
		"description":  "Work on real projects with our engineering team.",
		"location":     "Berlin",
		"requirements": []string{"Go"},
		"duration":     "3 months",
		"isActive":     false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", studentToken, map[string]interface{}{
		"internshipId": internshipID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", studentToken, map[string]interface{}{
		"internshipId": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateStatus_DecisionRules(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	otherToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("other"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))
	internshipID := helpers.CreateInternship(t, ts, companyToken, "Backend Intern", "Berlin")
	applicationID := helpers.ApplyToInternship(t, ts, studentToken, internshipID)

	// A company that does not own the internship sees nothing.
	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+applicationID+"/status", otherToken, map[string]interface{}{
		"status": "ACCEPTED",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// PENDING is not a valid decision.
	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+applicationID+"/status", companyToken, map[string]interface{}{
		"status": "PENDING",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Lowercase input is normalized before storage.
	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+applicationID+"/status", companyToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated struct {
		Status string `json:"status"`
	}
	helpers.DecodeData(t, body, &updated)
	assert.Equal(t, "ACCEPTED", updated.Status)

	// Decisions are final: a second one is rejected.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+applicationID+"/status", companyToken, map[string]interface{}{
		"status": "REJECTED",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "already been reviewed")
}

func TestListApplications_BothSides(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))
	otherStudentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student2"))

	first := helpers.CreateInternship(t, ts, companyToken, "Backend Intern", "Berlin")
	second := helpers.CreateInternship(t, ts, companyToken, "Frontend Intern", "Remote")

	firstApp := helpers.ApplyToInternship(t, ts, studentToken, first)
	helpers.ApplyToInternship(t, ts, studentToken, second)
	helpers.ApplyToInternship(t, ts, otherStudentToken, first)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+firstApp+"/status", companyToken, map[string]interface{}{
		"status": "ACCEPTED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Student side: two applications, joined display fields present.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine struct {
		Applications []struct {
			Status     string `json:"status"`
			Internship struct {
				Title   string `json:"title"`
				Company struct {
					CompanyName string `json:"companyName"`
				} `json:"company"`
			} `json:"internship"`
		} `json:"applications"`
	}
	helpers.DecodeData(t, body, &mine)
	require.Len(t, mine.Applications, 2)
	assert.Equal(t, "Test Company Inc.", mine.Applications[0].Internship.Company.CompanyName)

	// Status filter, case-insensitive.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my?status=accepted", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeData(t, body, &mine)
	require.Len(t, mine.Applications, 1)
	assert.Equal(t, "ACCEPTED", mine.Applications[0].Status)

	// Company side: all three, flattened student fields.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/company", companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var forCompany struct {
		Applications []struct {
			StudentName     string `json:"studentName"`
			Email           string `json:"email"`
			University      string `json:"university"`
			InternshipTitle string `json:"internshipTitle"`
		} `json:"applications"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
		} `json:"pagination"`
	}
	helpers.DecodeData(t, body, &forCompany)
	require.Len(t, forCompany.Applications, 3)
	assert.Equal(t, int64(3), forCompany.Pagination.TotalCount)
	assert.Equal(t, "Test Student", forCompany.Applications[0].StudentName)
	assert.NotEmpty(t, forCompany.Applications[0].Email)
	assert.Equal(t, "Test University", forCompany.Applications[0].University)

	// Pending filter excludes the accepted one.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/company?status=PENDING", companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeData(t, body, &forCompany)
	assert.Len(t, forCompany.Applications, 2)

	// Bad filter value is a 400, not an empty list.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my?status=MAYBE", studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestApplications_RoleSeparation(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/company", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications", companyToken, map[string]interface{}{
		"internshipId": "whatever",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
