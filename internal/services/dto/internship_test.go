package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementList_UnmarshalArray(t *testing.T) {
	var list RequirementList
	err := json.Unmarshal([]byte(`[" Go ", "SQL", "", "  "]`), &list)
	require.NoError(t, err)
	assert.Equal(t, RequirementList{"Go", "SQL"}, list)
}

func TestRequirementList_UnmarshalCommaString(t *testing.T) {
	var list RequirementList
	err := json.Unmarshal([]byte(`"Go, SQL ,,  React  "`), &list)
	require.NoError(t, err)
	assert.Equal(t, RequirementList{"Go", "SQL", "React"}, list)
}

func TestRequirementList_RejectsOtherShapes(t *testing.T) {
	var list RequirementList
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &list))
}

func TestClampPagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultPageSize},
		{-5, -1, 1, DefaultPageSize},
		{2, 50, 2, 50},
		{1, MaxPageSize + 1, 1, MaxPageSize},
	}

	for _, tc := range cases {
		page, limit := ClampPagination(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantLimit, limit)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 20, 41)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 20, p.Count)
	assert.Equal(t, int64(41), p.TotalCount)

	empty := NewPagination(1, 20, 0, 0)
	assert.Equal(t, 0, empty.Total)
}

func TestUploadResult_ResponseField(t *testing.T) {
	assert.Equal(t, "profilePictureUrl", UploadResult{Type: UploadTypeStudentAvatar}.ResponseField())
	assert.Equal(t, "resumeUrl", UploadResult{Type: UploadTypeStudentResume}.ResponseField())
	assert.Equal(t, "logoUrl", UploadResult{Type: UploadTypeCompanyLogo}.ResponseField())
}
