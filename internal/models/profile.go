package models

type StudentProfile struct {
	BaseModel
	UserID         string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FirstName      string `gorm:"not null" json:"firstName"`
	LastName       string `gorm:"not null" json:"lastName"`
	University     string `gorm:"not null" json:"university"`
	Major          string `gorm:"not null" json:"major"`
	GraduationYear int    `gorm:"not null" json:"graduationYear"`
	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
	PortfolioURL   string `json:"portfolioUrl,omitempty"`
	LinkedinURL    string `json:"linkedinUrl,omitempty"`
	GithubURL      string `json:"githubUrl,omitempty"`
	ResumeURL      string `json:"resumeUrl,omitempty"`
	PictureURL     string `json:"profilePictureUrl,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type CompanyProfile struct {
	BaseModel
	UserID      string      `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName string      `gorm:"not null" json:"companyName"`
	Industry    string      `gorm:"not null" json:"industry"`
	Location    string      `gorm:"not null" json:"location"`
	CompanySize CompanySize `gorm:"type:varchar(20);not null" json:"companySize"`
	Website     string      `json:"website,omitempty"`
	Description string      `json:"description,omitempty"`
	LogoURL     string      `json:"logoUrl,omitempty"`

	User        *User        `gorm:"foreignKey:UserID" json:"-"`
	Internships []Internship `gorm:"foreignKey:CompanyID" json:"-"`
}
