package integration_test

import (
	"net/http"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes is a minimal valid PNG header, enough for content sniffing.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
}

func TestUpload_CompanyLogo(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))

	res, body := ts.SendMultipart(t, "/api/v1/upload/logo", companyToken, "logo", "logo.png", pngBytes, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var data struct {
		LogoURL string `json:"logoUrl"`
	}
	helpers.DecodeData(t, body, &data)
	assert.Contains(t, data.LogoURL, "/api/v1/files/company-logo/")
	assert.Contains(t, data.LogoURL, ".png")
}

func TestUpload_StudentAvatarFieldName(t *testing.T) {
	ts := newServer(t)
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))

	res, body := ts.SendMultipart(t, "/api/v1/upload/logo", studentToken, "logo", "me.png", pngBytes,
		map[string]string{"type": "student-avatar"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var data struct {
		ProfilePictureURL string `json:"profilePictureUrl"`
	}
	helpers.DecodeData(t, body, &data)
	assert.Contains(t, data.ProfilePictureURL, "/api/v1/files/student-avatar/")
}

func TestUpload_TypeRoleMismatch(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))
	studentToken, _ := helpers.RegisterStudent(t, ts, helpers.UniqueEmail("student"))

	// Default type is company-logo, which students cannot upload.
	res, _ := ts.SendMultipart(t, "/api/v1/upload/logo", studentToken, "logo", "x.png", pngBytes, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendMultipart(t, "/api/v1/upload/logo", companyToken, "logo", "x.png", pngBytes,
		map[string]string{"type": "student-resume"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendMultipart(t, "/api/v1/upload/logo", companyToken, "logo", "x.png", pngBytes,
		map[string]string{"type": "banner"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpload_ContentTypeIsSniffed(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))

	// A text file renamed to .png is still rejected.
	res, body := ts.SendMultipart(t, "/api/v1/upload/logo", companyToken, "logo", "fake.png",
		[]byte("just some text"), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "not allowed")
}

func TestUpload_RequiresFile(t *testing.T) {
	ts := newServer(t)
	companyToken, _ := helpers.RegisterCompany(t, ts, helpers.UniqueEmail("company"))

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/upload/logo", companyToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
