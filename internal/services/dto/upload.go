package dto

// Upload types accepted by POST /upload/logo. The type picks the storage
// folder and the response field name.
const (
	UploadTypeStudentAvatar = "student-avatar"
	UploadTypeStudentResume = "student-resume"
	UploadTypeCompanyLogo   = "company-logo"
)

type UploadResult struct {
	URL  string
	Type string
}

// ResponseField maps the upload type to its response key.
func (u UploadResult) ResponseField() string {
	switch u.Type {
	case UploadTypeStudentAvatar:
		return "profilePictureUrl"
	case UploadTypeStudentResume:
		return "resumeUrl"
	default:
		return "logoUrl"
	}
}
