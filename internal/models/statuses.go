package models

type UserRole string
type ApplicationStatus string
type CompanySize string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleCompany UserRole = "COMPANY"

	// Application statuses are stored uppercase; this is the single canonical
	// representation used on the wire as well.
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	CompanySizeStartup    CompanySize = "STARTUP"
	CompanySizeSmall      CompanySize = "SMALL"
	CompanySizeMedium     CompanySize = "MEDIUM"
	CompanySizeLarge      CompanySize = "LARGE"
	CompanySizeEnterprise CompanySize = "ENTERPRISE"
)
