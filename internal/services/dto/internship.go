package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"internhub_backend/internal/models"
)

// RequirementList accepts either a JSON array of strings or a single
// comma-separated string, and normalizes both to a trimmed list.
type RequirementList []string

func (r *RequirementList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*r = normalizeRequirements(asList)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*r = normalizeRequirements(strings.Split(asString, ","))
		return nil
	}

	return errors.New("requirements must be a list of strings or a comma-separated string")
}

func normalizeRequirements(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type CreateInternshipRequest struct {
	Title        string          `json:"title" validate:"required,max=150"`
	Description  string          `json:"description" validate:"required"`
	Location     string          `json:"location" validate:"required,max=100"`
	Requirements RequirementList `json:"requirements" validate:"required,min=1"`
	Duration     string          `json:"duration" validate:"required,max=50"`
	Stipend      *float64        `json:"stipend" validate:"omitempty,min=0"`

	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
}

// UpdateInternshipRequest re-validates the full payload; IsActive is the
// deactivation path for internships that cannot be deleted.
type UpdateInternshipRequest struct {
	CreateInternshipRequest
	IsActive *bool `json:"isActive"`
}

type ListInternshipsQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Location string `form:"location"`
	IsRemote *bool  `form:"isRemote"`
	Search   string `form:"search"`
}

// Pagination is the shared paging envelope: Total is page count, TotalCount
// the full matching-row count independent of paging.
type Pagination struct {
	Current    int   `json:"current"`
	Total      int   `json:"total"`
	Count      int   `json:"count"`
	TotalCount int64 `json:"totalCount"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ClampPagination applies the shared paging bounds: page floors at 1, limit
// defaults to DefaultPageSize and caps at MaxPageSize.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// NewPagination builds the envelope from the clamped page, the page size,
// the rows on this page and the total matching-row count.
func NewPagination(page, pageSize, count int, totalCount int64) Pagination {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Current:    page,
		Total:      totalPages,
		Count:      count,
		TotalCount: totalCount,
	}
}

type InternshipList struct {
	Internships []models.Internship `json:"internships"`
	Pagination  Pagination          `json:"pagination"`
}

// InternshipDetail joins the owning company's public fields and the
// applications count onto the record.
type InternshipDetail struct {
	models.Internship
	ApplicationsCount int64 `json:"applicationsCount"`
}
